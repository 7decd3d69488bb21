// Package measure computes rendered extents for the block document using
// fpdf's embedded core font metrics, so pagination runs without a browser.
// Families without core metrics fall back to a character-width heuristic.
package measure

import (
	"strings"
	"sync"
	"unicode/utf8"

	"codeberg.org/go-pdf/fpdf"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/style"
)

// DefaultLineHeight is the leading factor applied to the font size.
const DefaultLineHeight = 1.2

// DefaultBlockGap is the vertical space in pixels after each block.
const DefaultBlockGap = 8

// structuralInset is the fixed inset list items and quotes carry, matching
// the conventional user-agent 40px.
const structuralInset = 40

// Options configure measurement.
type Options struct {
	Style      style.Options
	LineHeight float64 // multiple of the font size
	BlockGap   float64 // px after each block
}

// DefaultOptions returns the measurement defaults.
func DefaultOptions() Options {
	return Options{
		Style:      style.DefaultOptions(),
		LineHeight: DefaultLineHeight,
		BlockGap:   DefaultBlockGap,
	}
}

func (o Options) lineHeight() float64 {
	if o.LineHeight <= 0 {
		return DefaultLineHeight
	}
	return o.LineHeight
}

func (o Options) blockGap() float64 {
	if o.BlockGap < 0 {
		return 0
	}
	return o.BlockGap
}

// Singleton PDF instance for text measurement using fpdf metrics
var (
	measureOnce sync.Once
	measurePDF  *fpdf.Fpdf
	measureMu   sync.Mutex
)

func initMeasurePDF() {
	measurePDF = fpdf.New("P", "pt", "", "")
	measurePDF.SetFont("Helvetica", "", 12)
}

// CoreFamily maps a font family onto the core PDF families metrics exist
// for. ok is false when the family has no core metrics.
func CoreFamily(family string) (string, bool) {
	first := strings.Split(family, ",")[0]
	first = strings.TrimSpace(strings.Trim(first, "'\""))
	switch strings.ToLower(first) {
	case "", "arial", "helvetica", "sans-serif":
		return "Helvetica", true
	case "times", "times new roman", "serif":
		return "Times", true
	case "courier", "courier new", "monospace":
		return "Courier", true
	}
	return "", false
}

// TextWidth returns the width in pixels of text set in s. The measuring
// document takes the pixel size as its unit value, so the reported width
// is already in pixel space.
func TextWidth(text string, s style.Style) float64 {
	if text == "" || s.Size <= 0 {
		return 0
	}
	fam, ok := CoreFamily(s.Family)
	if !ok {
		return EstimateWidth(text, s.Size)
	}
	measureOnce.Do(initMeasurePDF)
	measureMu.Lock()
	defer measureMu.Unlock()
	measurePDF.SetFont(fam, s.FontStyleString(), s.Size)
	return measurePDF.GetStringWidth(text)
}

// EstimateWidth approximates a text width assuming an average character
// width of half an em.
func EstimateWidth(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * 0.5
}

// LineHeight returns the line box height in pixels for a style.
func LineHeight(s style.Style, o Options) float64 {
	return s.Size * o.lineHeight()
}

// WrapText breaks text into lines by greedy word wrap. The first line may
// have its own width when a first-line indent shifts it. Words wider than
// the line take a line of their own.
func WrapText(text string, s style.Style, firstWidth, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := words[0]
	max := firstWidth
	for _, word := range words[1:] {
		if TextWidth(cur+" "+word, s) <= max {
			cur += " " + word
			continue
		}
		lines = append(lines, cur)
		cur = word
		max = width
	}
	return append(lines, cur)
}

// Insets returns the structural left and right insets of a block type.
func Insets(t engine.BlockType) (left, right float64) {
	switch t {
	case engine.ListItem:
		return structuralInset, 0
	case engine.Blockquote:
		return structuralInset, structuralInset
	}
	return 0, 0
}

// BlockLines returns the wrapped lines of a block at the given content
// width, honoring its indents and the structural inset of list items
// and quotes.
func BlockLines(b *engine.Block, contentWidth float64, o Options) []string {
	s := style.ForBlock(b, o.Style)
	insetL, insetR := Insets(b.Type)
	width := contentWidth - float64(b.Indent.Left) - float64(b.Indent.Right) - insetL - insetR
	first := width - float64(b.Indent.FirstLine)
	if width < 0 {
		width = 0
	}
	if first < 0 {
		first = 0
	}
	return WrapText(b.Text, s, first, width)
}

// BlockHeight returns the rendered height in pixels of one block. An empty
// block still occupies a line.
func BlockHeight(b *engine.Block, contentWidth float64, o Options) float64 {
	s := style.ForBlock(b, o.Style)
	n := len(BlockLines(b, contentWidth, o))
	if n < 1 {
		n = 1
	}
	return float64(n) * LineHeight(s, o)
}

// ContentHeight returns the total document height in pixels at the given
// content width, the value the pagination estimator consumes.
func ContentHeight(blocks []*engine.Block, contentWidth float64, o Options) float64 {
	var h float64
	for _, b := range blocks {
		h += BlockHeight(b, contentWidth, o) + o.blockGap()
	}
	return h
}
