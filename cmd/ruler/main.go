// Command ruler is an interactive terminal playground for the indent ruler.
// The markers are dragged with the mouse, the document below follows, and
// the page readout tracks the scroll position.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/geometry"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/indent"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/measure"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/pagination"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/ruler"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/surface"
)

const (
	pxPerCell = 8.0  // horizontal pixels represented by one terminal cell
	rowPx     = 19.2 // vertical pixels represented by one text row
	margin    = 2    // cells left of the track

	scaleRow     = 0
	firstLineRow = 1
	leftRightRow = 2
	textRow      = 4
)

type app struct {
	screen    tcell.Screen
	doc       *engine.Document
	ctl       *ruler.Controller
	container *surface.Container
	est       *pagination.Estimator
	mo        measure.Options

	width   int
	height  int
	pressed bool

	// rowToBlock maps visible text rows to block indexes for click selection
	rowToBlock []int
}

func newApp(screen tcell.Screen) *app {
	a := &app{
		screen: screen,
		doc:    engine.NewDocument(),
		mo:     measure.DefaultOptions(),
	}

	a.ctl = ruler.NewController(a.doc)

	width, height := screen.Size()
	a.container = surface.NewContainer(trackPx(width), float64(height-textRow-1)*rowPx)
	a.ctl.ObserveTrack(a.container)
	a.ctl.SetTrackWidth(trackPx(width))

	a.est = pagination.NewEstimator()
	a.est.Bind(a.container)

	a.width = width
	a.height = height

	a.seed()
	return a
}

func trackPx(cols int) float64 {
	cells := cols - 2*margin
	if cells < 1 {
		cells = 1
	}
	return float64(cells) * pxPerCell
}

// seed fills the document with enough sample content to span pages.
func (a *app) seed() {
	blocks := []*engine.Block{
		{Type: engine.Heading1, Text: "Indent ruler playground"},
		{Type: engine.Paragraph, Text: "Drag the markers above: the lower pair moves the left and right indents, the upper one moves the first-line indent. Changes land on the selected block."},
		{Type: engine.Paragraph, Text: "Select another block with the arrow keys or a click and drag again. Each drag is a single undo step."},
		{Type: engine.ListItem, Text: "u undoes the last drag"},
		{Type: engine.ListItem, Text: "r redoes it"},
		{Type: engine.Blockquote, Text: "The page readout in the corner follows the scroll position."},
	}
	for i := 1; i <= 40; i++ {
		blocks = append(blocks, &engine.Block{
			Type: engine.Paragraph,
			Text: fmt.Sprintf("Filler paragraph %d keeps the document long enough to scroll across page boundaries.", i),
		})
	}
	a.doc.ReplaceBlocks(blocks)
	a.remeasure()
}

func (a *app) remeasure() {
	h := measure.ContentHeight(a.doc.Blocks(), a.container.Width(), a.mo)
	a.container.SetContentHeight(h)
}

func (a *app) resize(width, height int) {
	a.width = width
	a.height = height
	a.container.Resize(trackPx(width), float64(height-textRow-1)*rowPx)
	a.remeasure()
}

// cellFor converts a track pixel position to a screen column.
func (a *app) cellFor(px float64) int {
	return margin + geometry.Round(px/pxPerCell)
}

// pxFor converts a screen column to a track pixel position.
func (a *app) pxFor(x int) float64 {
	px := float64(x-margin) * pxPerCell
	if px < 0 {
		px = 0
	}
	return px
}

func (a *app) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= a.width {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *app) draw() {
	a.screen.Clear()

	scale := tcell.StyleDefault.Foreground(tcell.ColorGray)
	marker := tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	body := tcell.StyleDefault
	heading := tcell.StyleDefault.Bold(true)
	selected := tcell.StyleDefault.Reverse(true)

	// Inch scale
	track := a.ctl.Track()
	for i := 0; ; i++ {
		px := float64(i) * pxPerCell
		if px > track.Width {
			break
		}
		r := '─'
		if inch := px / geometry.PxPerInch; inch == float64(int(inch)) {
			r = rune('0' + int(inch)%10)
		} else if isHalfInch(px) {
			r = '┼'
		}
		a.screen.SetContent(margin+i, scaleRow, r, nil, scale)
	}

	// Markers
	a.screen.SetContent(a.cellFor(a.ctl.MarkerPosition(indent.MarkerFirstLine)), firstLineRow, '▼', nil, marker)
	a.screen.SetContent(a.cellFor(a.ctl.MarkerPosition(indent.MarkerLeft)), leftRightRow, '▲', nil, marker)
	a.screen.SetContent(a.cellFor(a.ctl.MarkerPosition(indent.MarkerRight)), leftRightRow, '▲', nil, marker)

	// Document text
	a.rowToBlock = a.rowToBlock[:0]
	sel := a.doc.Selection()
	skip := int(a.container.ScrollOffset() / rowPx)
	y := textRow
	row := 0
	for i, b := range a.doc.Blocks() {
		if y >= a.height-1 {
			break
		}
		style := body
		switch b.Type {
		case engine.Heading1, engine.Heading2, engine.Heading3:
			style = heading
		}
		if i >= sel.From && i <= sel.To {
			style = selected
		}

		lines := measure.BlockLines(b, track.Width, a.mo)
		if len(lines) == 0 {
			lines = []string{""}
		}
		insetL, _ := measure.Insets(b.Type)
		for li, line := range lines {
			if row < skip {
				row++
				continue
			}
			if y >= a.height-1 {
				break
			}
			x := float64(b.Indent.Left) + insetL
			prefix := ""
			if li == 0 {
				x += float64(b.Indent.FirstLine)
				if b.Type == engine.ListItem {
					prefix = "• "
				}
			}
			if b.Type == engine.Blockquote {
				prefix = "│ "
			}
			a.drawText(a.cellFor(x), y, prefix+line, style)
			a.rowToBlock = append(a.rowToBlock, i)
			y++
			row++
		}
		if row >= skip && y < a.height-1 {
			a.rowToBlock = append(a.rowToBlock, i)
			y++ // gap row after each block
		}
		row++
	}

	// Status line
	page := a.est.Refresh()
	status := fmt.Sprintf("Page %d of %d | left %s right %s first-line %s | arrows select, wheel scrolls, u/r undo/redo, q quits",
		page.CurrentPage, page.PageCount,
		a.ctl.Tooltip(indent.MarkerLeft),
		a.ctl.Tooltip(indent.MarkerRight),
		a.ctl.Tooltip(indent.MarkerFirstLine))
	a.drawText(0, a.height-1, status, scale)

	a.screen.Show()
}

func isHalfInch(px float64) bool {
	half := geometry.PxPerInch / 2
	q := px / half
	return q == float64(int(q)) && int(q)%2 == 1
}

// markerAt finds the marker whose handle sits near the clicked cell.
func (a *app) markerAt(x, y int) indent.Marker {
	switch y {
	case firstLineRow:
		return indent.MarkerFirstLine
	case leftRightRow:
		dl := abs(x - a.cellFor(a.ctl.MarkerPosition(indent.MarkerLeft)))
		dr := abs(x - a.cellFor(a.ctl.MarkerPosition(indent.MarkerRight)))
		if dr < dl {
			return indent.MarkerRight
		}
		return indent.MarkerLeft
	}
	return indent.MarkerNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	switch {
	case ev.Buttons() == tcell.WheelUp:
		a.container.ScrollBy(-3 * rowPx)
	case ev.Buttons() == tcell.WheelDown:
		a.container.ScrollBy(3 * rowPx)
	case ev.Buttons()&tcell.Button1 != 0:
		if !a.pressed {
			a.pressed = true
			if m := a.markerAt(x, y); m != indent.MarkerNone {
				a.ctl.PointerDown(ruler.PointerEvent{ID: 1, X: a.pxFor(x)}, m)
			} else if i := y - textRow; i >= 0 && i < len(a.rowToBlock) {
				a.doc.Select(a.rowToBlock[i], a.rowToBlock[i])
			}
		} else {
			a.ctl.PointerMove(ruler.PointerEvent{ID: 1, X: a.pxFor(x)})
		}
	case ev.Buttons() == tcell.ButtonNone && a.pressed:
		a.pressed = false
		a.ctl.PointerUp(ruler.PointerEvent{ID: 1})
	}
}

func (a *app) moveSelection(delta int) {
	i := a.doc.Selection().From + delta
	a.doc.Select(i, i)
}

func (a *app) run() {
	for {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			a.resize(w, h)
			a.screen.Sync()
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyUp:
				a.moveSelection(-1)
			case tcell.KeyDown:
				a.moveSelection(1)
			case tcell.KeyPgUp:
				a.container.ScrollBy(-a.container.Height())
			case tcell.KeyPgDn:
				a.container.ScrollBy(a.container.Height())
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return
				case 'u':
					a.doc.Undo()
				case 'r':
					a.doc.Redo()
				}
			}
		}
	}
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	a := newApp(screen)
	defer a.ctl.Close()

	a.run()
}
