package engine

import (
	"fmt"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/geometry"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/indent"
)

// Block is one block-level unit of the reference document. Marks apply to
// the whole block in this model.
type Block struct {
	Type   BlockType
	Text   string
	Indent indent.State
	Align  Alignment
	Color  string
	Bold   bool
	Italic bool
}

// Selection is an inclusive range of block indexes.
type Selection struct {
	From int
	To   int
}

// Document is the in-memory reference implementation of Engine. A document
// always contains at least one block. It is confined to a single goroutine,
// matching the event-loop model of the hosts it stands in for.
type Document struct {
	blocks    []*Block
	sel       Selection
	history   *history
	observers map[Observer]struct{}
}

// NewDocument returns a document holding one empty paragraph.
func NewDocument() *Document {
	return &Document{
		blocks:  []*Block{{Type: Paragraph}},
		history: newHistory(),
	}
}

// Len returns the number of blocks.
func (d *Document) Len() int { return len(d.blocks) }

// Blocks returns the document's blocks in order. The slice and the blocks
// are owned by the document; callers must not mutate them.
func (d *Document) Blocks() []*Block { return d.blocks }

// Block returns the block at index i, or nil when out of range.
func (d *Document) Block(i int) *Block {
	if i < 0 || i >= len(d.blocks) {
		return nil
	}
	return d.blocks[i]
}

// Selection returns the current selection.
func (d *Document) Selection() Selection { return d.sel }

// Select sets the selection to the inclusive block range [from, to],
// normalizing order and clamping to the document. Observers are notified.
func (d *Document) Select(from, to int) {
	if from > to {
		from, to = to, from
	}
	max := len(d.blocks) - 1
	d.sel = Selection{
		From: geometry.ClampInt(from, 0, max),
		To:   geometry.ClampInt(to, 0, max),
	}
	d.history.closeGroup()
	d.notifySelection()
}

// Append adds a block at the end of the document.
func (d *Document) Append(t BlockType, text string) {
	d.history.save("", d.snapshot())
	d.blocks = append(d.blocks, &Block{Type: t, Text: text})
	d.notifyContent()
}

// InsertBlock inserts a block before index i. Out-of-range indexes append.
func (d *Document) InsertBlock(i int, t BlockType, text string) {
	if i < 0 || i > len(d.blocks) {
		i = len(d.blocks)
	}
	d.history.save("", d.snapshot())
	d.blocks = append(d.blocks, nil)
	copy(d.blocks[i+1:], d.blocks[i:])
	d.blocks[i] = &Block{Type: t, Text: text}
	if d.sel.From >= i {
		d.sel.From++
	}
	if d.sel.To >= i {
		d.sel.To++
	}
	d.notifyContent()
}

// SetText replaces the text of block i. Out of range is a no-op.
func (d *Document) SetText(i int, text string) {
	b := d.Block(i)
	if b == nil {
		return
	}
	d.history.save("", d.snapshot())
	b.Text = text
	d.notifyContent()
}

// RemoveBlock deletes block i. Removing the last remaining block leaves one
// empty paragraph so the document never becomes blockless.
func (d *Document) RemoveBlock(i int) {
	if i < 0 || i >= len(d.blocks) {
		return
	}
	d.history.save("", d.snapshot())
	d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
	if len(d.blocks) == 0 {
		d.blocks = []*Block{{Type: Paragraph}}
	}
	max := len(d.blocks) - 1
	d.sel.From = geometry.ClampInt(d.sel.From, 0, max)
	d.sel.To = geometry.ClampInt(d.sel.To, 0, max)
	d.notifyContent()
}

// ReplaceBlocks swaps the entire document content, resetting the selection
// to the first block. An empty slice leaves one empty paragraph.
func (d *Document) ReplaceBlocks(blocks []*Block) {
	d.history.save("", d.snapshot())
	if len(blocks) == 0 {
		blocks = []*Block{{Type: Paragraph}}
	}
	d.blocks = blocks
	d.sel = Selection{}
	d.notifyContent()
	d.notifySelection()
}

// selectedOfTypes returns the indexes of selected blocks whose type is in
// types. Empty types means every block qualifies.
func (d *Document) selectedOfTypes(types []BlockType) []int {
	var out []int
	for i := d.sel.From; i <= d.sel.To && i < len(d.blocks); i++ {
		if len(types) == 0 || typeIn(d.blocks[i].Type, types) {
			out = append(out, i)
		}
	}
	return out
}

func typeIn(t BlockType, types []BlockType) bool {
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}

// BlockAttrs implements Engine.
func (d *Document) BlockAttrs(types ...BlockType) (Attrs, bool) {
	idx := d.selectedOfTypes(types)
	if len(idx) == 0 {
		return nil, false
	}
	b := d.blocks[idx[0]]
	return Attrs{
		AttrLeftIndent:      b.Indent.Left,
		AttrRightIndent:     b.Indent.Right,
		AttrFirstLineIndent: b.Indent.FirstLine,
	}, true
}

// SetBlockAttrs implements Engine. Successive calls coalesce into one undo
// step until CloseHistory is called or another operation intervenes.
func (d *Document) SetBlockAttrs(attrs Attrs, types ...BlockType) {
	idx := d.selectedOfTypes(types)
	if len(idx) == 0 {
		return
	}
	d.history.save("indent", d.snapshot())
	for _, i := range idx {
		b := d.blocks[i]
		if v, ok := attrs[AttrLeftIndent]; ok {
			b.Indent.Left = v
		}
		if v, ok := attrs[AttrRightIndent]; ok {
			b.Indent.Right = v
		}
		if v, ok := attrs[AttrFirstLineIndent]; ok {
			b.Indent.FirstLine = v
		}
	}
	d.notifyContent()
}

// CloseHistory seals the current undo-coalescing group. The next mutation
// starts a fresh undo step.
func (d *Document) CloseHistory() {
	d.history.closeGroup()
}

// ToggleMark implements Engine. When every selected block carries the mark
// it is removed everywhere, otherwise it is set everywhere.
func (d *Document) ToggleMark(m Mark) {
	idx := d.selectedOfTypes(nil)
	if len(idx) == 0 {
		return
	}
	all := true
	for _, i := range idx {
		if !d.blocks[i].hasMark(m) {
			all = false
			break
		}
	}
	d.history.save("", d.snapshot())
	for _, i := range idx {
		d.blocks[i].setMark(m, !all)
	}
	d.notifyContent()
}

func (b *Block) hasMark(m Mark) bool {
	switch m {
	case Bold:
		return b.Bold
	case Italic:
		return b.Italic
	}
	return false
}

func (b *Block) setMark(m Mark, on bool) {
	switch m {
	case Bold:
		b.Bold = on
	case Italic:
		b.Italic = on
	}
}

// SetBlockType implements Engine.
func (d *Document) SetBlockType(t BlockType) {
	idx := d.selectedOfTypes(nil)
	if len(idx) == 0 {
		return
	}
	d.history.save("", d.snapshot())
	for _, i := range idx {
		d.blocks[i].Type = t
	}
	d.notifyContent()
}

// SetAlignment implements Engine.
func (d *Document) SetAlignment(a Alignment) {
	idx := d.selectedOfTypes(nil)
	if len(idx) == 0 {
		return
	}
	d.history.save("", d.snapshot())
	for _, i := range idx {
		d.blocks[i].Align = a
	}
	d.notifyContent()
}

// SetTextColor implements Engine.
func (d *Document) SetTextColor(color string) {
	idx := d.selectedOfTypes(nil)
	if len(idx) == 0 {
		return
	}
	d.history.save("", d.snapshot())
	for _, i := range idx {
		d.blocks[i].Color = color
	}
	d.notifyContent()
}

// Undo implements Engine.
func (d *Document) Undo() bool {
	s, ok := d.history.undoTo(d.snapshot())
	if !ok {
		return false
	}
	d.restore(s)
	return true
}

// Redo implements Engine.
func (d *Document) Redo() bool {
	s, ok := d.history.redoTo(d.snapshot())
	if !ok {
		return false
	}
	d.restore(s)
	return true
}

// CanUndo reports whether Undo would apply a step.
func (d *Document) CanUndo() bool { return d.history.canUndo() }

// CanRedo reports whether Redo would apply a step.
func (d *Document) CanRedo() bool { return d.history.canRedo() }

// AddObserver registers o for selection and content notifications.
func (d *Document) AddObserver(o Observer) {
	if d.observers == nil {
		d.observers = make(map[Observer]struct{})
	}
	d.observers[o] = struct{}{}
}

// DelObserver removes o.
func (d *Document) DelObserver(o Observer) error {
	if _, exists := d.observers[o]; exists {
		delete(d.observers, o)
		return nil
	}
	return fmt.Errorf("can't find observer in Document.DelObserver")
}

func (d *Document) notifyContent() {
	for o := range d.observers {
		o.ContentChanged()
	}
}

func (d *Document) notifySelection() {
	for o := range d.observers {
		o.SelectionChanged()
	}
}

func (d *Document) snapshot() snapshot {
	blocks := make([]Block, len(d.blocks))
	for i, b := range d.blocks {
		blocks[i] = *b
	}
	return snapshot{blocks: blocks, sel: d.sel}
}

func (d *Document) restore(s snapshot) {
	d.blocks = make([]*Block, len(s.blocks))
	for i := range s.blocks {
		b := s.blocks[i]
		d.blocks[i] = &b
	}
	d.sel = s.sel
	d.notifyContent()
	d.notifySelection()
}
