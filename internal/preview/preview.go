// Package preview rasterizes the page surface and indent ruler to PNG for
// host UIs and debugging. Text is drawn with gg's built-in face, so the
// preview approximates glyph shapes while page and marker geometry stay
// exact.
package preview

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/geometry"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/indent"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/measure"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/pagination"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/style"
)

const (
	pageWidth   = 816  // 8.5in at 96dpi
	pageHeight  = 1056 // 11in at 96dpi
	pageMargin  = 96   // 1in at 96dpi
	rulerHeight = 32
	gutter      = 24
)

// Snapshot is the editor state a preview draws.
type Snapshot struct {
	Blocks     []*engine.Block
	Indents    indent.State
	TrackWidth float64
	Page       pagination.State
}

// Renderer rasterizes snapshots onto a fixed-size canvas.
type Renderer struct {
	context *gg.Context

	// Measure configures text layout; defaults match the editor's.
	Measure measure.Options
}

// NewRenderer creates a renderer with a width x height pixel canvas.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		context: gg.NewContext(width, height),
		Measure: measure.DefaultOptions(),
	}
}

// HeightFor returns the canvas height that fits pages whole pages at the
// given canvas width.
func HeightFor(width, pages int) int {
	if pages < 1 {
		pages = 1
	}
	scale := float64(width) / (pageWidth + 2*gutter)
	h := rulerHeight + gutter + float64(pages)*(pageHeight+gutter) + gutter
	return int(h * scale)
}

// Render draws the snapshot. The page column is scaled to the canvas
// width; pages beyond the canvas height are clipped.
func (r *Renderer) Render(snap Snapshot) {
	dc := r.context
	dc.SetRGB(0.92, 0.92, 0.94)
	dc.Clear()

	scale := float64(dc.Width()) / (pageWidth + 2*gutter)
	dc.Push()
	dc.Scale(scale, scale)
	dc.Translate(gutter, gutter)

	r.drawRuler(snap)
	dc.Translate(0, rulerHeight+gutter)
	r.drawPages(snap)
	r.drawBlocks(snap)

	dc.Pop()
	r.drawBadge(snap)
}

// SavePNG writes the canvas to a PNG file.
func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) drawRuler(snap Snapshot) {
	dc := r.context
	track := snap.TrackWidth
	if track <= 0 {
		track = pageWidth - 2*pageMargin
	}
	x0 := float64(pageMargin)

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(x0, 0, track, rulerHeight)
	dc.Fill()
	dc.SetRGB(0.7, 0.7, 0.7)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x0, 0, track, rulerHeight)
	dc.Stroke()

	// Eighth-inch ticks, taller at halves and full inches.
	dc.SetRGB(0.45, 0.45, 0.45)
	for px := 0.0; px <= track; px += geometry.PxPerInch / 8 {
		h := 4.0
		switch {
		case isMultiple(px, geometry.PxPerInch):
			h = 10
		case isMultiple(px, geometry.PxPerInch/2):
			h = 7
		}
		dc.DrawLine(x0+px, rulerHeight-h, x0+px, rulerHeight)
		dc.Stroke()
	}
	for px := float64(geometry.PxPerInch); px < track; px += geometry.PxPerInch {
		dc.DrawStringAnchored(fmt.Sprintf("%d", int(px/geometry.PxPerInch)), x0+px, rulerHeight-16, 0.5, 0.5)
	}

	t := indent.Track{Width: track}
	dc.SetRGB(0.15, 0.4, 0.9)
	r.markerDown(x0+t.FirstLineAbs(snap.Indents), 0)
	r.markerUp(x0+float64(snap.Indents.Left), rulerHeight)
	r.markerUp(x0+t.RightEdge(snap.Indents), rulerHeight)
}

// markerDown draws a downward triangle hanging from y.
func (r *Renderer) markerDown(x, y float64) {
	dc := r.context
	dc.MoveTo(x-6, y)
	dc.LineTo(x+6, y)
	dc.LineTo(x, y+10)
	dc.ClosePath()
	dc.Fill()
}

// markerUp draws an upward triangle rising to y.
func (r *Renderer) markerUp(x, y float64) {
	dc := r.context
	dc.MoveTo(x-6, y)
	dc.LineTo(x+6, y)
	dc.LineTo(x, y-10)
	dc.ClosePath()
	dc.Fill()
}

func (r *Renderer) drawPages(snap Snapshot) {
	dc := r.context
	pages := snap.Page.PageCount
	if pages < 1 {
		pages = 1
	}
	for i := 0; i < pages; i++ {
		top := float64(i) * (pageHeight + gutter)
		dc.SetRGB(1, 1, 1)
		dc.DrawRectangle(0, top, pageWidth, pageHeight)
		dc.Fill()
		if i+1 == snap.Page.CurrentPage {
			dc.SetRGB(0.15, 0.4, 0.9)
		} else {
			dc.SetRGB(0.75, 0.75, 0.75)
		}
		dc.SetLineWidth(1.5)
		dc.DrawRectangle(0, top, pageWidth, pageHeight)
		dc.Stroke()
	}
}

func (r *Renderer) drawBlocks(snap Snapshot) {
	dc := r.context
	o := r.Measure
	contentWidth := float64(pageWidth - 2*pageMargin)
	pageContent := float64(pageHeight - 2*pageMargin)
	gap := o.BlockGap
	if gap < 0 {
		gap = 0
	}

	page := 0
	y := 0.0
	for _, b := range snap.Blocks {
		s := style.ForBlock(b, o.Style)
		lh := measure.LineHeight(s, o)
		lines := measure.BlockLines(b, contentWidth, o)
		if len(lines) == 0 {
			lines = []string{""}
		}
		insetL, _ := measure.Insets(b.Type)

		red, green, blue, err := style.ParseHexColor(b.Color)
		if err != nil {
			red, green, blue = 0, 0, 0
		}
		dc.SetRGB(float64(red)/255.0, float64(green)/255.0, float64(blue)/255.0)

		for i, line := range lines {
			if y+lh > pageContent {
				page++
				y = 0
			}
			x := float64(pageMargin) + float64(b.Indent.Left) + insetL
			if i == 0 {
				x += float64(b.Indent.FirstLine)
			}
			top := float64(page)*(pageHeight+gutter) + pageMargin + y

			if i == 0 && b.Type == engine.ListItem {
				dc.DrawCircle(x-10, top+s.Size*0.6, 2.5)
				dc.Fill()
			}
			if b.Type == engine.Blockquote {
				dc.DrawLine(x-insetL/2, top, x-insetL/2, top+lh)
				dc.Stroke()
			}

			dc.DrawString(line, x, top+s.Size)
			y += lh
		}
		y += gap
	}
}

func (r *Renderer) drawBadge(snap Snapshot) {
	dc := r.context
	pages := snap.Page.PageCount
	if pages < 1 {
		pages = 1
	}
	cur := snap.Page.CurrentPage
	if cur < 1 {
		cur = 1
	}
	dc.SetRGB(0.25, 0.25, 0.25)
	dc.DrawStringAnchored(fmt.Sprintf("Page %d of %d", cur, pages),
		float64(dc.Width())-8, float64(dc.Height())-8, 1, 1)
}

func isMultiple(v, step float64) bool {
	if step <= 0 {
		return false
	}
	m := v / step
	return m == float64(int(m))
}
