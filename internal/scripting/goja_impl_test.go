package scripting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type fakeDOM struct {
	pages     int
	current   int
	left      int
	right     int
	firstLine int
	texts     []string
	alerts    []string
	undos     int
}

func (d *fakeDOM) PageCount() int   { return d.pages }
func (d *fakeDOM) CurrentPage() int { return d.current }

func (d *fakeDOM) Indents() (int, int, int) { return d.left, d.right, d.firstLine }

func (d *fakeDOM) SetIndents(left, right, firstLine int) {
	d.left, d.right, d.firstLine = left, right, firstLine
}

func (d *fakeDOM) BlockCount() int { return len(d.texts) }

func (d *fakeDOM) BlockText(i int) (string, error) {
	if i < 0 || i >= len(d.texts) {
		return "", fmt.Errorf("no block %d", i)
	}
	return d.texts[i], nil
}

func (d *fakeDOM) InsertParagraph(text string) { d.texts = append(d.texts, text) }

func (d *fakeDOM) Undo() bool {
	d.undos++
	return true
}

func (d *fakeDOM) Alert(message string) { d.alerts = append(d.alerts, message) }

func TestGojaEngine_ContextCancellation(t *testing.T) {
	engine := NewEngine()

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	if _, err := engine.Execute(ctx, "while (true) {}"); err == nil || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}

	if _, err := engine.Execute(context.Background(), "1 + 1"); err != nil {
		t.Fatalf("engine should recover after cancellation, got %v", err)
	}
}

func TestGojaEngine_ImmediateCancel(t *testing.T) {
	engine := NewEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Execute(ctx, "42"); err == nil || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
}

func TestGojaEngine_EditorDOM(t *testing.T) {
	engine := NewEngine()
	dom := &fakeDOM{pages: 3, current: 2, texts: []string{"hello"}}
	if err := engine.RegisterDOM(dom); err != nil {
		t.Fatalf("RegisterDOM: %v", err)
	}

	val, err := engine.Execute(context.Background(), "editor.pageCount() * 10 + editor.currentPage()")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if val != int64(32) {
		t.Errorf("pageCount*10+currentPage = %v, want 32", val)
	}

	if _, err := engine.Execute(context.Background(), "editor.setIndents(96, 0, -48)"); err != nil {
		t.Fatalf("Execute setIndents: %v", err)
	}
	if dom.left != 96 || dom.right != 0 || dom.firstLine != -48 {
		t.Errorf("indents = %d %d %d, want 96 0 -48", dom.left, dom.right, dom.firstLine)
	}

	val, err = engine.Execute(context.Background(), "editor.indents().left")
	if err != nil {
		t.Fatalf("Execute indents: %v", err)
	}
	if val != int64(96) {
		t.Errorf("indents().left = %v, want 96", val)
	}

	val, err = engine.Execute(context.Background(), "editor.blockText(0)")
	if err != nil {
		t.Fatalf("Execute blockText: %v", err)
	}
	if val != "hello" {
		t.Errorf("blockText(0) = %v, want hello", val)
	}

	val, err = engine.Execute(context.Background(), "editor.blockText(99)")
	if err != nil {
		t.Fatalf("Execute blockText out of range: %v", err)
	}
	if val != nil {
		t.Errorf("blockText(99) = %v, want null", val)
	}

	if _, err := engine.Execute(context.Background(), `editor.insertParagraph("added"); app.alert("done " + editor.blockCount())`); err != nil {
		t.Fatalf("Execute insert+alert: %v", err)
	}
	if len(dom.texts) != 2 || dom.texts[1] != "added" {
		t.Errorf("texts = %v", dom.texts)
	}
	if len(dom.alerts) != 1 || dom.alerts[0] != "done 2" {
		t.Errorf("alerts = %v", dom.alerts)
	}

	if _, err := engine.Execute(context.Background(), "editor.undo()"); err != nil {
		t.Fatalf("Execute undo: %v", err)
	}
	if dom.undos != 1 {
		t.Errorf("undos = %d, want 1", dom.undos)
	}
}
