// Package engine defines the narrow surface the ruler and pagination layers
// need from a rich-text editing engine, plus an in-memory reference
// implementation. The surface is deliberately small so any conformant
// document model can stand behind it.
package engine

// BlockType names a block-level unit capable of carrying attributes.
type BlockType string

const (
	Paragraph  BlockType = "paragraph"
	Heading1   BlockType = "heading1"
	Heading2   BlockType = "heading2"
	Heading3   BlockType = "heading3"
	ListItem   BlockType = "listItem"
	Blockquote BlockType = "blockquote"
)

// IndentableTypes returns the block types indent attributes apply to.
// List items and quotes keep their structural insets and are not ruled.
func IndentableTypes() []BlockType {
	return []BlockType{Paragraph, Heading1, Heading2, Heading3}
}

// Mark is an inline formatting toggle.
type Mark string

const (
	Bold   Mark = "bold"
	Italic Mark = "italic"
)

// Alignment is the horizontal alignment of a block.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Attribute keys understood by BlockAttrs and SetBlockAttrs.
const (
	AttrLeftIndent      = "leftIndent"
	AttrRightIndent     = "rightIndent"
	AttrFirstLineIndent = "firstLineIndent"
)

// Attrs is a key-value mapping of block attributes in device pixels.
type Attrs map[string]int

// Observer receives document notifications. Callbacks arrive synchronously
// on the goroutine performing the mutation.
type Observer interface {
	SelectionChanged()
	ContentChanged()
}

// Engine is the editing collaborator contract. Attribute operations target
// blocks of the given types intersecting the current selection; when the
// selection covers no such block they return without mutating anything.
type Engine interface {
	// BlockAttrs reports the attributes of the first block of one of the
	// given types at the current selection. ok is false when there is none.
	BlockAttrs(types ...BlockType) (attrs Attrs, ok bool)

	// SetBlockAttrs sets attrs on every block of the given types
	// intersecting the selection as one atomic, undo-coalesced operation.
	SetBlockAttrs(attrs Attrs, types ...BlockType)

	// Formatting commands passed through to the document model.
	ToggleMark(m Mark)
	SetBlockType(t BlockType)
	SetAlignment(a Alignment)
	SetTextColor(color string)

	// Undo and Redo report whether a step was applied.
	Undo() bool
	Redo() bool

	// Observer registration for selection and content notifications.
	AddObserver(o Observer)
	DelObserver(o Observer) error
}
