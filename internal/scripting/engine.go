package scripting

import (
	"context"
)

// Engine represents a scripting engine (e.g., JavaScript).
type Engine interface {
	// Execute executes a script in the context of the editor.
	Execute(ctx context.Context, script string) (interface{}, error)

	// RegisterDOM registers the editor object model with the engine.
	RegisterDOM(dom EditorDOM) error
}

// EditorDOM exposes the editor to scripts. It provides a safe, controlled
// API over pagination, the ruler indents, and the block document.
type EditorDOM interface {
	// PageCount and CurrentPage report the pagination state.
	PageCount() int
	CurrentPage() int

	// Indents reports the indents of the selected block in pixels.
	Indents() (left, right, firstLine int)

	// SetIndents applies indents to the selected blocks.
	SetIndents(left, right, firstLine int)

	// BlockCount reports the number of blocks in the document.
	BlockCount() int

	// BlockText returns the text of block i.
	BlockText(i int) (string, error)

	// InsertParagraph appends a paragraph at the end of the document.
	InsertParagraph(text string)

	// Undo reverts the last operation, reporting whether one was applied.
	Undo() bool

	// Alert shows a message (if supported by the host).
	Alert(message string)
}
