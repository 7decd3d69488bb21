// Package ruler owns the drag interaction of the indent markers: the
// pointer-event lifecycle, the per-drag session state, and pushing each
// computed indent state to the editing engine. The geometry itself is
// computed by internal/indent.
package ruler

import (
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/geometry"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/indent"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/observability"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/surface"
)

// Options contains configuration options for the controller
type Options struct {
	// MinGap is the minimum pixel distance kept between the left indent
	// and the right edge. Zero means indent.DefaultMinGap.
	MinGap int
	// Logger receives drag lifecycle events at debug level.
	Logger observability.Logger
}

// PointerEvent is one pointer sample from the host: the pointer identifier
// and its horizontal position in pixels from the track's left edge.
type PointerEvent struct {
	ID int64
	X  float64
}

type dragSession struct {
	marker    indent.Marker
	pointerID int64
}

// historyCloser is implemented by engines that seal undo-coalescing groups
// at drag boundaries.
type historyCloser interface {
	CloseHistory()
}

// Controller is the ruler's interaction state machine. At most one drag
// session exists at a time, identified by its pointer id; events carrying
// any other id are ignored. The controller is confined to the host's event
// goroutine.
type Controller struct {
	eng    engine.Engine
	logger observability.Logger

	track indent.Track
	state indent.State
	drag  *dragSession

	cancelResize func()
}

// NewController creates a controller bound to eng and registers it for the
// engine's selection and content notifications.
func NewController(eng engine.Engine) *Controller {
	c := &Controller{
		eng:    eng,
		logger: observability.NopLogger{},
	}
	eng.AddObserver(c)
	c.syncFromEngine()
	return c
}

// SetOptions sets the controller options.
func (c *Controller) SetOptions(options Options) {
	c.track.MinGap = options.MinGap
	if options.Logger != nil {
		c.logger = options.Logger
	}
}

// Close detaches the controller from the engine and the resize observer.
func (c *Controller) Close() {
	if c.cancelResize != nil {
		c.cancelResize()
		c.cancelResize = nil
	}
	_ = c.eng.DelObserver(c)
}

// SetTrackWidth records the usable content width markers move within.
func (c *Controller) SetTrackWidth(w float64) {
	if w < 0 {
		w = 0
	}
	c.track.Width = w
}

// ObserveTrack keeps the track width in sync with a host resize observer,
// replacing any earlier observation.
func (c *Controller) ObserveTrack(ro surface.ResizeObserver) {
	if c.cancelResize != nil {
		c.cancelResize()
	}
	c.cancelResize = ro.Observe(c.SetTrackWidth)
}

// Track returns the current track geometry.
func (c *Controller) Track() indent.Track { return c.track }

// Indents returns the indent state currently displayed by the ruler.
func (c *Controller) Indents() indent.State { return c.state }

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool { return c.drag != nil }

// ActiveMarker returns the marker being dragged, or MarkerNone while idle.
func (c *Controller) ActiveMarker() indent.Marker {
	if c.drag == nil {
		return indent.MarkerNone
	}
	return c.drag.marker
}

// MarkerPosition returns the absolute track position of a marker in pixels.
func (c *Controller) MarkerPosition(m indent.Marker) float64 {
	switch m {
	case indent.MarkerLeft:
		return float64(c.state.Left)
	case indent.MarkerFirstLine:
		return c.track.FirstLineAbs(c.state)
	case indent.MarkerRight:
		return c.track.RightEdge(c.state)
	}
	return 0
}

// Tooltip returns the inch string shown while hovering or dragging m,
// e.g. "0.52in". First-line values are relative to the left indent and may
// be negative.
func (c *Controller) Tooltip(m indent.Marker) string {
	switch m {
	case indent.MarkerLeft:
		return geometry.FormatInches(float64(c.state.Left))
	case indent.MarkerFirstLine:
		return geometry.FormatInches(float64(c.state.FirstLine))
	case indent.MarkerRight:
		return geometry.FormatInches(float64(c.state.Right))
	}
	return geometry.FormatInches(0)
}

// PointerDown starts a drag session on marker m, capturing ev.ID. The down
// position is applied immediately so the marker snaps to the touch point.
// A second pointer while a session is active is ignored.
func (c *Controller) PointerDown(ev PointerEvent, m indent.Marker) {
	if c.drag != nil || m == indent.MarkerNone {
		return
	}
	c.drag = &dragSession{marker: m, pointerID: ev.ID}
	c.logger.Debug("ruler drag started",
		observability.String("marker", m.String()),
		observability.Int64("pointer", ev.ID))
	c.applyAt(ev.X)
}

// PointerMove applies a drag update. Moves with a pointer id other than the
// session's are no-ops.
func (c *Controller) PointerMove(ev PointerEvent) {
	if c.drag == nil || c.drag.pointerID != ev.ID {
		return
	}
	c.applyAt(ev.X)
}

// PointerUp ends the drag session owned by ev.ID.
func (c *Controller) PointerUp(ev PointerEvent) {
	if c.drag == nil || c.drag.pointerID != ev.ID {
		return
	}
	c.endDrag()
}

// PointerCancel ends the session like PointerUp without applying any
// further update.
func (c *Controller) PointerCancel(ev PointerEvent) {
	if c.drag == nil || c.drag.pointerID != ev.ID {
		return
	}
	c.endDrag()
}

func (c *Controller) endDrag() {
	marker := c.drag.marker
	c.drag = nil
	if hc, ok := c.eng.(historyCloser); ok {
		hc.CloseHistory()
	}
	c.logger.Debug("ruler drag ended", observability.String("marker", marker.String()))
	c.syncFromEngine()
}

// applyAt runs one indent update: local state first for immediate redraw,
// then the engine push.
func (c *Controller) applyAt(x float64) {
	c.state = indent.Apply(c.state, c.track, c.drag.marker, x)
	c.pushToEngine()
}

// pushToEngine asks the engine to set the indent attributes on the blocks
// at the current selection. A selection without a qualifying block is a
// silent no-op inside the engine; an engine panic is dropped for this one
// update cycle.
func (c *Controller) pushToEngine() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("engine rejected indent update", observability.Any("panic", r))
		}
	}()
	c.eng.SetBlockAttrs(engine.Attrs{
		engine.AttrLeftIndent:      c.state.Left,
		engine.AttrRightIndent:     c.state.Right,
		engine.AttrFirstLineIndent: c.state.FirstLine,
	}, engine.IndentableTypes()...)
}

// SelectionChanged implements engine.Observer.
func (c *Controller) SelectionChanged() { c.syncFromEngine() }

// ContentChanged implements engine.Observer.
func (c *Controller) ContentChanged() { c.syncFromEngine() }

// syncFromEngine re-derives the displayed indents from the engine. While a
// drag is active the local optimistic state is authoritative and engine
// notifications are ignored. A selection without a qualifying block keeps
// the last displayed values.
func (c *Controller) syncFromEngine() {
	if c.drag != nil {
		return
	}
	attrs, ok := c.queryEngine()
	if !ok {
		return
	}
	c.state = indent.State{
		Left:      attrs[engine.AttrLeftIndent],
		Right:     attrs[engine.AttrRightIndent],
		FirstLine: attrs[engine.AttrFirstLineIndent],
	}
}

func (c *Controller) queryEngine() (attrs engine.Attrs, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("engine attribute query failed", observability.Any("panic", r))
			attrs, ok = nil, false
		}
	}()
	return c.eng.BlockAttrs(engine.IndentableTypes()...)
}
