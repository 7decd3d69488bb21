package ruler

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/indent"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/surface"
)

// fakeEngine records attribute sets and serves canned attribute queries.
type fakeEngine struct {
	attrs     engine.Attrs
	hasTarget bool
	sets      []engine.Attrs
	closed    int
	observers []engine.Observer
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{hasTarget: true}
}

func (f *fakeEngine) BlockAttrs(types ...engine.BlockType) (engine.Attrs, bool) {
	if !f.hasTarget {
		return nil, false
	}
	if f.attrs == nil {
		return engine.Attrs{}, true
	}
	return f.attrs, true
}

func (f *fakeEngine) SetBlockAttrs(attrs engine.Attrs, types ...engine.BlockType) {
	if !f.hasTarget {
		return
	}
	f.sets = append(f.sets, attrs)
	f.attrs = attrs
}

func (f *fakeEngine) ToggleMark(engine.Mark)          {}
func (f *fakeEngine) SetBlockType(engine.BlockType)   {}
func (f *fakeEngine) SetAlignment(engine.Alignment)   {}
func (f *fakeEngine) SetTextColor(string)             {}
func (f *fakeEngine) Undo() bool                      { return false }
func (f *fakeEngine) Redo() bool                      { return false }
func (f *fakeEngine) CloseHistory()                   { f.closed++ }
func (f *fakeEngine) AddObserver(o engine.Observer)   { f.observers = append(f.observers, o) }
func (f *fakeEngine) DelObserver(engine.Observer) error { return nil }

func newTestController(f *fakeEngine) *Controller {
	c := NewController(f)
	c.SetTrackWidth(960)
	return c
}

func TestPointerDownSnapsImmediately(t *testing.T) {
	f := newFakeEngine()
	c := newTestController(f)

	c.PointerDown(PointerEvent{ID: 1, X: 200}, indent.MarkerLeft)

	if got := c.Indents().Left; got != 200 {
		t.Errorf("Left after down = %d, want 200 (immediate snap)", got)
	}
	if len(f.sets) != 1 {
		t.Fatalf("engine sets = %d, want 1", len(f.sets))
	}
	want := engine.Attrs{
		engine.AttrLeftIndent:      200,
		engine.AttrRightIndent:     0,
		engine.AttrFirstLineIndent: -200,
	}
	if diff := cmp.Diff(want, f.sets[0]); diff != "" {
		t.Errorf("pushed attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestDragLifecyclePointerIDs(t *testing.T) {
	f := newFakeEngine()
	c := newTestController(f)

	// Pointer 5 starts a drag; moves from pointer 7 must not apply.
	c.PointerDown(PointerEvent{ID: 5, X: 100}, indent.MarkerLeft)
	c.PointerMove(PointerEvent{ID: 7, X: 400})
	if got := c.Indents().Left; got != 100 {
		t.Errorf("Left after foreign move = %d, want 100", got)
	}
	c.PointerMove(PointerEvent{ID: 5, X: 150})
	if got := c.Indents().Left; got != 150 {
		t.Errorf("Left after own move = %d, want 150", got)
	}

	// Pointer 7 cannot end the session either.
	c.PointerUp(PointerEvent{ID: 7, X: 150})
	if !c.Dragging() {
		t.Error("foreign pointer-up ended the drag")
	}
	c.PointerUp(PointerEvent{ID: 5, X: 150})
	if c.Dragging() {
		t.Error("own pointer-up left the drag active")
	}
}

func TestSecondPointerDownIgnoredDuringDrag(t *testing.T) {
	f := newFakeEngine()
	c := newTestController(f)

	c.PointerDown(PointerEvent{ID: 1, X: 100}, indent.MarkerLeft)
	c.PointerDown(PointerEvent{ID: 2, X: 500}, indent.MarkerRight)

	if got := c.ActiveMarker(); got != indent.MarkerLeft {
		t.Errorf("ActiveMarker = %v, want left", got)
	}
	if got := c.Indents().Right; got != 0 {
		t.Errorf("Right = %d, want 0: second down must not apply", got)
	}
}

func TestPointerCancelEndsSession(t *testing.T) {
	f := newFakeEngine()
	c := newTestController(f)

	c.PointerDown(PointerEvent{ID: 3, X: 100}, indent.MarkerFirstLine)
	sets := len(f.sets)
	c.PointerCancel(PointerEvent{ID: 3, X: 600})

	if c.Dragging() {
		t.Error("still dragging after cancel")
	}
	if len(f.sets) != sets {
		t.Errorf("cancel applied an update: sets %d -> %d", sets, len(f.sets))
	}
	if got := c.Indents().FirstLine; got != 100 {
		t.Errorf("FirstLine = %d, want 100 (cancel keeps last applied state)", got)
	}
}

func TestDragEndClosesHistoryGroup(t *testing.T) {
	f := newFakeEngine()
	c := newTestController(f)

	c.PointerDown(PointerEvent{ID: 1, X: 100}, indent.MarkerLeft)
	c.PointerMove(PointerEvent{ID: 1, X: 120})
	c.PointerUp(PointerEvent{ID: 1, X: 120})

	if f.closed != 1 {
		t.Errorf("CloseHistory calls = %d, want 1", f.closed)
	}
}

func TestSyncSuppressedWhileDragging(t *testing.T) {
	f := newFakeEngine()
	c := newTestController(f)

	c.PointerDown(PointerEvent{ID: 1, X: 300}, indent.MarkerLeft)

	// An engine notification mid-drag must not overwrite the local state.
	f.attrs = engine.Attrs{engine.AttrLeftIndent: 7}
	c.SelectionChanged()
	c.ContentChanged()
	if got := c.Indents().Left; got != 300 {
		t.Errorf("Left = %d, want 300: sync must be suppressed during drag", got)
	}

	// After the drag ends the engine is authoritative again.
	c.PointerUp(PointerEvent{ID: 1, X: 300})
	if got := c.Indents().Left; got != 7 {
		t.Errorf("Left after drag end = %d, want 7 (engine sync)", got)
	}
}

func TestSyncWithoutQualifyingBlockKeepsState(t *testing.T) {
	f := newFakeEngine()
	c := newTestController(f)

	c.PointerDown(PointerEvent{ID: 1, X: 90}, indent.MarkerLeft)
	c.PointerUp(PointerEvent{ID: 1, X: 90})
	f.hasTarget = false
	c.SelectionChanged()
	if got := c.Indents().Left; got != 90 {
		t.Errorf("Left = %d, want 90 kept when no block qualifies", got)
	}
}

func TestMoveWhileIdleIsNoOp(t *testing.T) {
	f := newFakeEngine()
	c := newTestController(f)

	c.PointerMove(PointerEvent{ID: 1, X: 500})
	c.PointerUp(PointerEvent{ID: 1, X: 500})
	if len(f.sets) != 0 {
		t.Errorf("idle events pushed %d updates, want 0", len(f.sets))
	}
	if got := c.ActiveMarker(); got != indent.MarkerNone {
		t.Errorf("ActiveMarker = %v, want none", got)
	}
}

func TestObserveTrackFollowsResize(t *testing.T) {
	f := newFakeEngine()
	c := newTestController(f)

	container := surface.NewContainer(624, 800)
	c.ObserveTrack(container)
	container.Resize(700, 800)

	if got := c.Track().Width; got != 700 {
		t.Errorf("track width = %v, want 700 after resize", got)
	}
	c.Close()
	container.Resize(500, 800)
	if got := c.Track().Width; got != 700 {
		t.Errorf("track width = %v, want 700 after Close", got)
	}
}

func TestMarkerPositionsAndTooltips(t *testing.T) {
	f := newFakeEngine()
	f.attrs = engine.Attrs{
		engine.AttrLeftIndent:      96,
		engine.AttrRightIndent:     48,
		engine.AttrFirstLineIndent: -24,
	}
	c := NewController(f)
	c.SetTrackWidth(960)
	c.SelectionChanged()

	if got := c.MarkerPosition(indent.MarkerLeft); got != 96 {
		t.Errorf("left position = %v, want 96", got)
	}
	if got := c.MarkerPosition(indent.MarkerFirstLine); got != 72 {
		t.Errorf("first-line position = %v, want 72", got)
	}
	if got := c.MarkerPosition(indent.MarkerRight); got != 912 {
		t.Errorf("right position = %v, want 912", got)
	}

	if got := c.Tooltip(indent.MarkerLeft); got != "1.00in" {
		t.Errorf("left tooltip = %q, want 1.00in", got)
	}
	if got := c.Tooltip(indent.MarkerRight); got != "0.50in" {
		t.Errorf("right tooltip = %q, want 0.50in", got)
	}
	if got := c.Tooltip(indent.MarkerFirstLine); got != "-0.25in" {
		t.Errorf("first-line tooltip = %q, want -0.25in", got)
	}
}

type panickyEngine struct {
	fakeEngine
}

func (p *panickyEngine) SetBlockAttrs(engine.Attrs, ...engine.BlockType) {
	panic("schema violation")
}

func TestEnginePanicDropped(t *testing.T) {
	p := &panickyEngine{fakeEngine: *newFakeEngine()}
	c := NewController(p)
	c.SetTrackWidth(960)

	c.PointerDown(PointerEvent{ID: 1, X: 250}, indent.MarkerLeft)
	if got := c.Indents().Left; got != 250 {
		t.Errorf("Left = %d, want 250: local state survives engine panic", got)
	}
	c.PointerMove(PointerEvent{ID: 1, X: 260})
	if got := c.Indents().Left; got != 260 {
		t.Errorf("Left = %d, want 260: drag continues after engine panic", got)
	}
}

// The controller against the real reference engine, end to end.
func TestControllerWithDocument(t *testing.T) {
	d := engine.NewDocument()
	d.SetText(0, "Hello")
	d.Append(engine.Paragraph, "World")
	d.Select(0, 1)

	c := NewController(d)
	c.SetTrackWidth(960)

	c.PointerDown(PointerEvent{ID: 9, X: 48}, indent.MarkerLeft)
	c.PointerMove(PointerEvent{ID: 9, X: 96})
	c.PointerUp(PointerEvent{ID: 9, X: 96})

	for i := 0; i < 2; i++ {
		if got := d.Block(i).Indent.Left; got != 96 {
			t.Errorf("block %d Left = %d, want 96", i, got)
		}
	}

	// The whole drag is one undo step; the ruler follows the undo because
	// the engine notifies it.
	if !d.Undo() {
		t.Fatal("Undo = false, want true")
	}
	if got := d.Block(0).Indent.Left; got != 0 {
		t.Errorf("block 0 Left after undo = %d, want 0", got)
	}
	if got := c.Indents().Left; got != 0 {
		t.Errorf("ruler Left after undo = %d, want 0 (synced)", got)
	}
}
