// Package indent implements the constraint model behind the ruler's three
// draggable markers. Applying a drag is a pure computation from the current
// indent state, the track geometry, and the pointer position to a new state;
// the interaction lifecycle around it lives in internal/ruler.
package indent

import (
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/geometry"
)

// DefaultMinGap is the minimum distance in pixels kept between the left
// indent and the right edge so the markers can never cross.
const DefaultMinGap = 12

// Marker identifies one of the draggable ruler handles.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerLeft
	MarkerFirstLine
	MarkerRight
)

// String returns the marker name used in logs and tooltips.
func (m Marker) String() string {
	switch m {
	case MarkerLeft:
		return "left"
	case MarkerFirstLine:
		return "first-line"
	case MarkerRight:
		return "right"
	default:
		return "none"
	}
}

// State holds the indent attributes of one block, in device pixels.
// FirstLine is relative to Left and may be negative (a hanging indent).
type State struct {
	Left      int
	Right     int
	FirstLine int
}

// Track describes the horizontal region markers move within. Width is the
// usable content width of the page in pixels. A MinGap of zero or less means
// DefaultMinGap.
type Track struct {
	Width  float64
	MinGap int
}

func (t Track) minGap() float64 {
	if t.MinGap <= 0 {
		return DefaultMinGap
	}
	return float64(t.MinGap)
}

// RightEdge returns the absolute position of the right indent boundary.
func (t Track) RightEdge(s State) float64 {
	return t.Width - float64(s.Right)
}

// FirstLineAbs returns the absolute position of the first-line marker.
func (t Track) FirstLineAbs(s State) float64 {
	return float64(s.Left + s.FirstLine)
}

// Apply computes the indent state after dragging marker m to the absolute
// position x, measured in pixels from the track's left edge. The input
// position is clamped into the track before use and every output value is
// rounded to the nearest integer pixel.
//
// Moving one marker never changes the other side: a left drag keeps Right,
// a right drag keeps Left, and a first-line drag keeps both. The left and
// right markers preserve the first-line marker's absolute position where the
// new boundaries allow it. Apply is deterministic and idempotent: feeding the
// resulting state back in with the same marker and position is a fixed point.
//
// When the track is narrower than twice the minimum gap the gap constraint
// cannot be satisfied; values then simply stay inside [0, Width].
func Apply(s State, t Track, m Marker, x float64) State {
	if t.Width < 0 {
		t.Width = 0
	}
	x = geometry.Clamp(x, 0, t.Width)

	minGap := t.minGap()
	left := float64(s.Left)
	rightEdge := t.Width - float64(s.Right)
	firstAbs := float64(s.Left + s.FirstLine)

	// FirstLine derives from the rounded absolute position so that
	// reapplying the same drag is a fixed point even on half-pixel input.
	out := s
	switch m {
	case MarkerLeft:
		newLeft := geometry.Clamp(x, 0, maxf(0, rightEdge-minGap))
		newFirstAbs := geometry.Clamp(firstAbs, 0, rightEdge)
		out.Left = geometry.Round(newLeft)
		out.FirstLine = geometry.Round(newFirstAbs) - out.Left

	case MarkerFirstLine:
		newFirstAbs := geometry.Clamp(x, 0, rightEdge)
		out.FirstLine = geometry.Round(newFirstAbs) - s.Left

	case MarkerRight:
		newEdge := geometry.Clamp(x, minf(t.Width, left+minGap), t.Width)
		newFirstAbs := geometry.Clamp(firstAbs, 0, newEdge)
		out.Right = geometry.Round(t.Width - newEdge)
		out.FirstLine = geometry.Round(newFirstAbs) - s.Left
	}
	return out
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
