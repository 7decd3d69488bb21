// Package export renders the block document to PDF on the same Letter
// geometry the on-screen page uses: 8.5x11in, 1in margins, content laid
// out in 96dpi pixels and scaled to points.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/geometry"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/measure"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/style"
)

const (
	marginPt = 72.0
	ptPerPx  = 72.0 / geometry.PxPerInch
)

// Renderer handles rendering the block document to PDF
type Renderer struct {
	// Measure controls the text metrics shared with pagination
	Measure measure.Options
}

// RenderOptions contains document metadata for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{
		Measure: measure.DefaultOptions(),
	}
}

// Render renders blocks to a PDF file
func (r *Renderer) Render(blocks []*engine.Block, outputPath string, options RenderOptions) error {
	pdf := r.build(blocks, options)

	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return pdf.OutputFileAndClose(outputPath)
}

// RenderTo renders blocks as PDF to a writer
func (r *Renderer) RenderTo(blocks []*engine.Block, w io.Writer, options RenderOptions) error {
	pdf := r.build(blocks, options)
	defer pdf.Close()
	return pdf.Output(w)
}

// PageCount reports how many pages blocks produce at the export geometry.
func (r *Renderer) PageCount(blocks []*engine.Block) (int, error) {
	pdf := r.build(blocks, RenderOptions{})
	defer pdf.Close()
	if err := pdf.Error(); err != nil {
		return 0, err
	}
	return pdf.PageCount(), nil
}

// build lays the blocks onto Letter pages. Positions are computed in
// pixels from the content origin and scaled to points at the draw calls.
func (r *Renderer) build(blocks []*engine.Block, options RenderOptions) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetFont("Helvetica", "", 12)
	pdf.AddPage()

	o := r.Measure
	contentWidth := geometry.InchesToPx(8.5) - 2*geometry.InchesToPx(1)
	pageContent := geometry.InchesToPx(11) - 2*geometry.InchesToPx(1)
	gap := o.BlockGap
	if gap < 0 {
		gap = 0
	}

	y := 0.0
	for _, b := range blocks {
		s := style.ForBlock(b, o.Style)
		lh := measure.LineHeight(s, o)
		lines := measure.BlockLines(b, contentWidth, o)
		if len(lines) == 0 {
			lines = []string{""}
		}

		insetL, insetR := measure.Insets(b.Type)
		red, green, blue, err := style.ParseHexColor(b.Color)
		if err != nil {
			red, green, blue = 0, 0, 0
		}
		pdf.SetTextColor(red, green, blue)

		fam, ok := measure.CoreFamily(s.Family)
		if !ok {
			fam = "Helvetica"
		}
		pdf.SetFont(fam, s.FontStyleString(), s.Size*ptPerPx)

		for i, line := range lines {
			if y+lh > pageContent {
				pdf.AddPage()
				y = 0
			}

			x := float64(b.Indent.Left) + insetL
			avail := contentWidth - float64(b.Indent.Left) - float64(b.Indent.Right) - insetL - insetR
			if i == 0 {
				x += float64(b.Indent.FirstLine)
				avail -= float64(b.Indent.FirstLine)
			}
			if avail < 0 {
				avail = 0
			}

			w := measure.TextWidth(line, s)
			startX := x
			switch b.Align {
			case engine.AlignCenter:
				if w < avail {
					startX = x + (avail-w)/2
				}
			case engine.AlignRight:
				if w < avail {
					startX = x + avail - w
				}
			}

			if i == 0 && b.Type == engine.ListItem {
				drawBullet(pdf, s, x, y, red, green, blue)
			}
			if b.Type == engine.Blockquote {
				drawQuoteRule(pdf, b, insetL, y, lh)
			}

			baseline := y + s.Size
			pdf.Text(marginPt+startX*ptPerPx, marginPt+baseline*ptPerPx, line)
			y += lh
		}
		y += gap
	}
	return pdf
}

// drawBullet draws the disc marker left of a list item's first line.
func drawBullet(pdf *fpdf.Fpdf, s style.Style, xPx, yPx float64, red, green, blue int) {
	size := s.Size * ptPerPx
	cx := marginPt + xPx*ptPerPx - size
	cy := marginPt + yPx*ptPerPx + size*0.75
	radius := size * 0.18
	if radius < 1.2 {
		radius = 1.2
	}
	pdf.SetDrawColor(red, green, blue)
	pdf.SetFillColor(red, green, blue)
	pdf.Circle(cx, cy, radius, "F")
}

// drawQuoteRule draws the vertical rule marking a blockquote line.
func drawQuoteRule(pdf *fpdf.Fpdf, b *engine.Block, insetL, yPx, lhPx float64) {
	x := marginPt + (float64(b.Indent.Left)+insetL/2)*ptPerPx
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(2)
	pdf.Line(x, marginPt+yPx*ptPerPx, x, marginPt+(yPx+lhPx)*ptPerPx)
}
