package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
)

func TestParseHeadings(t *testing.T) {
	p := NewParser()
	blocks, err := p.ParseString("# Top\n\n## Section\n\n### Sub\n\n#### Deep\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	want := []*engine.Block{
		{Type: engine.Heading1, Text: "Top"},
		{Type: engine.Heading2, Text: "Section"},
		{Type: engine.Heading3, Text: "Sub"},
		{Type: engine.Heading3, Text: "Deep"},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestParseParagraphSoftBreaks(t *testing.T) {
	p := NewParser()
	blocks, err := p.ParseString("first line\nsecond line\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Text != "first line second line" {
		t.Errorf("Text = %q", blocks[0].Text)
	}
}

func TestParseEmphasis(t *testing.T) {
	p := NewParser()
	tests := []struct {
		name   string
		in     string
		text   string
		bold   bool
		italic bool
	}{
		{"whole bold", "**all bold**", "all bold", true, false},
		{"whole italic", "*leaning*", "leaning", false, true},
		{"bold italic", "***both***", "both", true, true},
		{"partial", "plain and **bold** mix", "plain and bold mix", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := p.ParseString(tt.in)
			if err != nil {
				t.Fatalf("ParseString: %v", err)
			}
			b := blocks[0]
			if b.Text != tt.text {
				t.Errorf("Text = %q, want %q", b.Text, tt.text)
			}
			if b.Bold != tt.bold || b.Italic != tt.italic {
				t.Errorf("marks = bold %v italic %v, want %v %v", b.Bold, b.Italic, tt.bold, tt.italic)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	p := NewParser()
	blocks, err := p.ParseString("- One\n- Two\n  - Nested\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	want := []*engine.Block{
		{Type: engine.ListItem, Text: "One"},
		{Type: engine.ListItem, Text: "Two"},
		{Type: engine.ListItem, Text: "Nested"},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlockquote(t *testing.T) {
	p := NewParser()
	blocks, err := p.ParseString("> quoted words\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Type != engine.Blockquote || blocks[0].Text != "quoted words" {
		t.Errorf("blocks = %+v", blocks)
	}
}

func TestParseCodeBlock(t *testing.T) {
	p := NewParser()
	blocks, err := p.ParseString("```\nfirst\nsecond\n```\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Text != "first second" {
		t.Errorf("blocks = %+v", blocks)
	}
}

func TestParseMixedDocument(t *testing.T) {
	p := NewParser()
	blocks, err := p.ParseString("# Title\n\nBody text here.\n\n- a\n- b\n\n> aside\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	wantTypes := []engine.BlockType{
		engine.Heading1,
		engine.Paragraph,
		engine.ListItem,
		engine.ListItem,
		engine.Blockquote,
	}
	if len(blocks) != len(wantTypes) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(wantTypes))
	}
	for i, want := range wantTypes {
		if blocks[i].Type != want {
			t.Errorf("block %d Type = %q, want %q", i, blocks[i].Type, want)
		}
	}
}
