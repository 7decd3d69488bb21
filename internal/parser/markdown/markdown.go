// Package markdown imports markdown source as document blocks using
// goldmark's parser and AST.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
)

// Parser converts markdown into the block document model.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a new markdown parser.
func NewParser() *Parser {
	return &Parser{md: goldmark.New()}
}

// ParseString parses markdown from a string.
func (p *Parser) ParseString(source string) ([]*engine.Block, error) {
	src := []byte(source)
	doc := p.md.Parser().Parse(text.NewReader(src))

	var blocks []*engine.Block
	walkBlocks(doc, src, &blocks)
	return blocks, nil
}

func walkBlocks(node ast.Node, source []byte, blocks *[]*engine.Block) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			*blocks = append(*blocks, headingBlock(n, source))
		case *ast.Paragraph:
			*blocks = append(*blocks, inlineBlock(n, source, engine.Paragraph))
		case *ast.Blockquote:
			quoteBlocks(n, source, blocks)
		case *ast.List:
			walkBlocks(n, source, blocks)
		case *ast.ListItem:
			listItemBlocks(n, source, blocks)
		case *ast.FencedCodeBlock:
			*blocks = append(*blocks, &engine.Block{Type: engine.Paragraph, Text: codeText(n, source)})
		case *ast.CodeBlock:
			*blocks = append(*blocks, &engine.Block{Type: engine.Paragraph, Text: codeText(n, source)})
		case *ast.ThematicBreak:
			// No block representation for rules.
		}
	}
}

// headingBlock maps heading levels onto the three heading types the
// document model carries. Deeper levels clamp to the smallest heading.
func headingBlock(n *ast.Heading, source []byte) *engine.Block {
	t := engine.Heading3
	if n.Level == 1 {
		t = engine.Heading1
	} else if n.Level == 2 {
		t = engine.Heading2
	}
	return inlineBlock(n, source, t)
}

// quoteBlocks emits one blockquote block per paragraph inside the quote.
func quoteBlocks(n *ast.Blockquote, source []byte, blocks *[]*engine.Block) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Paragraph:
			*blocks = append(*blocks, inlineBlock(c, source, engine.Blockquote))
		case *ast.List:
			walkBlocks(c, source, blocks)
		}
	}
}

// listItemBlocks emits the item's own text followed by any nested items.
// Tight lists carry text blocks, loose lists paragraphs.
func listItemBlocks(n *ast.ListItem, source []byte, blocks *[]*engine.Block) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			*blocks = append(*blocks, inlineBlock(c, source, engine.ListItem))
		case *ast.List:
			walkBlocks(c, source, blocks)
		}
	}
}

// inlineBlock builds a block from an inline container. Emphasis wrapping
// the whole content becomes a block mark; partial emphasis flattens to
// plain text.
func inlineBlock(n ast.Node, source []byte, t engine.BlockType) *engine.Block {
	text, bold, italic := inlineContent(n, source)
	return &engine.Block{Type: t, Text: text, Bold: bold, Italic: italic}
}

func inlineContent(n ast.Node, source []byte) (string, bool, bool) {
	if n.ChildCount() == 1 {
		if em, ok := n.FirstChild().(*ast.Emphasis); ok {
			inner, bold, italic := inlineContent(em, source)
			if em.Level >= 2 {
				return inner, true, italic
			}
			return inner, bold, true
		}
	}
	return flattenText(n, source), false, false
}

// flattenText concatenates all text segments below a node, turning soft
// and hard line breaks into spaces.
func flattenText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.WriteString(flattenText(child, source))
	}
	return sb.String()
}

// codeText joins the raw lines of a code block into one run of text.
func codeText(n ast.Node, source []byte) string {
	var parts []string
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(source)), "\n")
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
