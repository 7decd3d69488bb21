// Package style resolves the presentation of document blocks: font family,
// size scale, and weight per block type, plus the small color helpers the
// renderers share.
package style

import (
	"fmt"
	"strings"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
)

// Style is the resolved presentation of one block.
type Style struct {
	Family string
	Size   float64 // px
	Bold   bool
	Italic bool
	Scale  float64 // relative to the base size
}

// Options configure style resolution.
type Options struct {
	BaseFamily string
	BaseSize   float64 // px
}

// DefaultOptions returns the resolver defaults: Helvetica at 16px.
func DefaultOptions() Options {
	return Options{
		BaseFamily: "Helvetica",
		BaseSize:   16,
	}
}

// Heading scales follow the conventional user-agent sizes: h1 2em,
// h2 1.5em, h3 1.17em.
const (
	scaleH1 = 2.0
	scaleH2 = 1.5
	scaleH3 = 1.17
)

// ForBlock resolves the style of a block from its type and marks.
func ForBlock(b *engine.Block, o Options) Style {
	if o.BaseFamily == "" {
		o.BaseFamily = DefaultOptions().BaseFamily
	}
	if o.BaseSize <= 0 {
		o.BaseSize = DefaultOptions().BaseSize
	}

	s := Style{
		Family: o.BaseFamily,
		Scale:  1.0,
		Bold:   b.Bold,
		Italic: b.Italic,
	}
	switch b.Type {
	case engine.Heading1:
		s.Scale = scaleH1
		s.Bold = true
	case engine.Heading2:
		s.Scale = scaleH2
		s.Bold = true
	case engine.Heading3:
		s.Scale = scaleH3
		s.Bold = true
	case engine.Blockquote:
		s.Italic = true
	}
	s.Size = o.BaseSize * s.Scale
	return s
}

// FontStyleString renders the style as the "B"/"I"/"BI" string PDF font
// selection expects.
func (s Style) FontStyleString() string {
	var sb strings.Builder
	if s.Bold {
		sb.WriteByte('B')
	}
	if s.Italic {
		sb.WriteByte('I')
	}
	return sb.String()
}

// ParseHexColor parses #rgb and #rrggbb colors. The empty string is the
// default ink (black).
func ParseHexColor(s string) (r, g, b int, err error) {
	if s == "" {
		return 0, 0, 0, nil
	}
	if !strings.HasPrefix(s, "#") {
		return 0, 0, 0, fmt.Errorf("invalid color %q", s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		var r4, g4, b4 int
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r4, &g4, &b4); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid color %q", s)
		}
		return r4 * 17, g4 * 17, b4 * 17, nil
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid color %q", s)
		}
		return r, g, b, nil
	default:
		return 0, 0, 0, fmt.Errorf("invalid color %q", s)
	}
}
