// Package html converts between HTML fragments and the block document
// model. Import understands the block elements the editor produces;
// export emits them back with indents carried as inline styles.
package html

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/geometry"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/parser/css"
)

// Parser represents an HTML document importer
type Parser struct {
	// Configuration options could be added here
}

// NewParser creates a new HTML parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses HTML from a string
func (p *Parser) ParseString(content string) ([]*engine.Block, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses HTML from an io.Reader into document blocks
func (p *Parser) Parse(r io.Reader) ([]*engine.Block, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	body := findBody(root)
	if body == nil {
		return nil, nil
	}

	var blocks []*engine.Block
	collectBlocks(body, &blocks)
	return blocks, nil
}

// findBody locates the body element html.Parse always synthesizes.
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

// collectBlocks walks the children of a container element and appends one
// block per block-level element. List containers are flattened to their
// items; bare text becomes a paragraph.
func collectBlocks(n *html.Node, blocks *[]*engine.Block) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if text := collapseSpace(c.Data); text != "" {
				*blocks = append(*blocks, &engine.Block{Type: engine.Paragraph, Text: text})
			}
		case html.ElementNode:
			switch c.Data {
			case "p", "div":
				*blocks = append(*blocks, blockFromNode(c, engine.Paragraph))
			case "h1":
				*blocks = append(*blocks, blockFromNode(c, engine.Heading1))
			case "h2":
				*blocks = append(*blocks, blockFromNode(c, engine.Heading2))
			case "h3", "h4", "h5", "h6":
				*blocks = append(*blocks, blockFromNode(c, engine.Heading3))
			case "li":
				*blocks = append(*blocks, blockFromNode(c, engine.ListItem))
			case "blockquote":
				*blocks = append(*blocks, blockFromNode(c, engine.Blockquote))
			case "ul", "ol":
				collectBlocks(c, blocks)
			case "script", "style", "head":
				// Non-content subtrees are skipped.
			default:
				collectBlocks(c, blocks)
			}
		}
	}
}

// blockFromNode builds a block from one block-level element, reading inline
// text, whole-block marks, and the style attribute.
func blockFromNode(n *html.Node, t engine.BlockType) *engine.Block {
	b := &engine.Block{Type: t}

	var state inlineState
	state.allBold = true
	state.allItalic = true
	collectInline(n, false, false, &state)

	b.Text = collapseSpace(state.text.String())
	if state.sawText {
		b.Bold = state.allBold
		b.Italic = state.allItalic
	}

	applyStyle(b, attrValue(n, "style"))
	return b
}

// inlineState accumulates the text of a block and whether every run of it
// sits inside bold or italic wrappers.
type inlineState struct {
	text      strings.Builder
	sawText   bool
	allBold   bool
	allItalic bool
}

func collectInline(n *html.Node, bold, italic bool, state *inlineState) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				state.sawText = true
				state.allBold = state.allBold && bold
				state.allItalic = state.allItalic && italic
			}
			state.text.WriteString(c.Data)
		case html.ElementNode:
			switch c.Data {
			case "b", "strong":
				collectInline(c, true, italic, state)
			case "i", "em":
				collectInline(c, bold, true, state)
			case "br":
				state.text.WriteByte(' ')
			default:
				collectInline(c, bold, italic, state)
			}
		}
	}
}

// applyStyle maps the inline style declarations onto block fields. Indent
// lengths accept pixel values only; anything else is left at its default.
func applyStyle(b *engine.Block, style string) {
	if style == "" {
		return
	}
	ds := css.ParseDeclarations(style)
	if v, ok := ds.Get("margin-left"); ok {
		if px, ok := css.ParsePx(v); ok {
			b.Indent.Left = geometry.Round(px)
		}
	}
	if v, ok := ds.Get("margin-right"); ok {
		if px, ok := css.ParsePx(v); ok {
			b.Indent.Right = geometry.Round(px)
		}
	}
	if v, ok := ds.Get("text-indent"); ok {
		if px, ok := css.ParsePx(v); ok {
			b.Indent.FirstLine = geometry.Round(px)
		}
	}
	if v, ok := ds.Get("text-align"); ok {
		switch v {
		case "left":
			b.Align = engine.AlignLeft
		case "center":
			b.Align = engine.AlignCenter
		case "right":
			b.Align = engine.AlignRight
		}
	}
	if v, ok := ds.Get("color"); ok {
		b.Color = v
	}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collapseSpace folds whitespace runs to single spaces and trims the ends,
// the usual HTML rendering of inter-element whitespace.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Render renders blocks back to an HTML fragment, one element per line.
// Consecutive list items share a single ul container.
func Render(blocks []*engine.Block) (string, error) {
	var buf bytes.Buffer
	var list *html.Node

	flushList := func() error {
		if list == nil {
			return nil
		}
		err := renderNode(&buf, list)
		list = nil
		return err
	}

	for _, b := range blocks {
		n := blockNode(b)
		if b.Type == engine.ListItem {
			if list == nil {
				list = &html.Node{Type: html.ElementNode, Data: "ul"}
			}
			list.AppendChild(n)
			continue
		}
		if err := flushList(); err != nil {
			return "", err
		}
		if err := renderNode(&buf, n); err != nil {
			return "", err
		}
	}
	if err := flushList(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// blockNode builds the element tree for a single block.
func blockNode(b *engine.Block) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tagFor(b.Type)}
	if style := blockStyle(b); style != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: style})
	}

	parent := n
	if b.Bold {
		wrap := &html.Node{Type: html.ElementNode, Data: "b"}
		parent.AppendChild(wrap)
		parent = wrap
	}
	if b.Italic {
		wrap := &html.Node{Type: html.ElementNode, Data: "i"}
		parent.AppendChild(wrap)
		parent = wrap
	}
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: b.Text})
	return n
}

func tagFor(t engine.BlockType) string {
	switch t {
	case engine.Heading1:
		return "h1"
	case engine.Heading2:
		return "h2"
	case engine.Heading3:
		return "h3"
	case engine.ListItem:
		return "li"
	case engine.Blockquote:
		return "blockquote"
	}
	return "p"
}

// blockStyle assembles the style attribute for a block, omitting defaults.
func blockStyle(b *engine.Block) string {
	var ds css.Declarations
	if b.Indent.Left != 0 {
		ds = append(ds, &css.Declaration{Property: "margin-left", Value: css.FormatPx(b.Indent.Left)})
	}
	if b.Indent.Right != 0 {
		ds = append(ds, &css.Declaration{Property: "margin-right", Value: css.FormatPx(b.Indent.Right)})
	}
	if b.Indent.FirstLine != 0 {
		ds = append(ds, &css.Declaration{Property: "text-indent", Value: css.FormatPx(b.Indent.FirstLine)})
	}
	if b.Align != "" && b.Align != engine.AlignLeft {
		ds = append(ds, &css.Declaration{Property: "text-align", Value: string(b.Align)})
	}
	if b.Color != "" {
		ds = append(ds, &css.Declaration{Property: "color", Value: b.Color})
	}
	return css.FormatDeclarations(ds)
}

// renderNode renders a node followed by a newline so fragments stay
// readable when written to a file.
func renderNode(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
