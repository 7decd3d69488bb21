package res

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.html", "<p>hello</p>")

	l := NewLoader("")
	res, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.GetString() != "<p>hello</p>" {
		t.Errorf("data = %q", res.GetString())
	}
	if res.Type != ResourceTypeHTML {
		t.Errorf("type = %v, want HTML", res.Type)
	}
	if res.MimeType != "text/html" {
		t.Errorf("mime = %q", res.MimeType)
	}
}

func TestLoadRelativeToBase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.md", "# Notes")
	base := filepath.Join(dir, "main.html")

	l := NewLoader(base)
	res, err := l.Load("notes.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Type != ResourceTypeMarkdown {
		t.Errorf("type = %v, want Markdown", res.Type)
	}
	if res.GetString() != "# Notes" {
		t.Errorf("data = %q", res.GetString())
	}
}

func TestLoadFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "extra.md", "fallback")

	l := NewLoader("")
	l.AddSearchPath(dir)

	res, err := l.Load("missing/extra.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.GetString() != "fallback" {
		t.Errorf("data = %q", res.GetString())
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := NewLoader("")
	_, err := l.Load(filepath.Join(t.TempDir(), "nope.html"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadMissingFromSearchPaths(t *testing.T) {
	l := NewLoader("")
	l.AddSearchPath(t.TempDir())

	_, err := l.Load("absent.md")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "absent.md") {
		t.Errorf("err = %v, want the filename in the message", err)
	}
}

func TestLoadCachesResources(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "first")

	l := NewLoader("")
	if _, err := l.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// A second load must come from the cache, not from disk
	if err := os.WriteFile(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	res, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.GetString() != "first" {
		t.Errorf("data = %q, want cached %q", res.GetString(), "first")
	}
}

func TestLoadDataURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantData string
		wantType ResourceType
	}{
		{
			name:     "plain html",
			url:      "data:text/html,%3Cp%3Ehi%3C/p%3E",
			wantData: "<p>hi</p>",
			wantType: ResourceTypeHTML,
		},
		{
			name:     "base64 markdown",
			url:      "data:text/markdown;base64," + base64.StdEncoding.EncodeToString([]byte("# Title")),
			wantData: "# Title",
			wantType: ResourceTypeMarkdown,
		},
		{
			name:     "no mime",
			url:      "data:,raw",
			wantData: "raw",
			wantType: ResourceTypeOther,
		},
	}

	l := NewLoader("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := l.Load(tt.url)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if res.GetString() != tt.wantData {
				t.Errorf("data = %q, want %q", res.GetString(), tt.wantData)
			}
			if res.Type != tt.wantType {
				t.Errorf("type = %v, want %v", res.Type, tt.wantType)
			}
		})
	}
}

func TestLoadDataURLInvalidBase64(t *testing.T) {
	l := NewLoader("")
	if _, err := l.Load("data:text/html;base64,!!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}

func TestLoadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/doc.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte("<h1>Remote</h1>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := NewLoader("")
	res, err := l.Load(srv.URL + "/doc.html")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.GetString() != "<h1>Remote</h1>" {
		t.Errorf("data = %q", res.GetString())
	}
	if res.MimeType != "text/html" {
		t.Errorf("mime = %q, want text/html", res.MimeType)
	}
	if res.Type != ResourceTypeHTML {
		t.Errorf("type = %v, want HTML", res.Type)
	}

	if _, err := l.Load(srv.URL + "/absent.html"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestLoadResolvesAgainstRemoteBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/docs/child.md" {
			w.Header().Set("Content-Type", "text/markdown")
			w.Write([]byte("child"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := NewLoader(srv.URL + "/docs/index.html")
	res, err := l.Load("child.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.GetString() != "child" {
		t.Errorf("data = %q", res.GetString())
	}
}

func TestTypedLoaders(t *testing.T) {
	dir := t.TempDir()
	htmlPath := writeFile(t, dir, "doc.html", "<p>x</p>")
	mdPath := writeFile(t, dir, "doc.md", "x")

	l := NewLoader("")

	if _, err := l.LoadHTML(htmlPath); err != nil {
		t.Errorf("LoadHTML: %v", err)
	}
	if _, err := l.LoadMarkdown(mdPath); err != nil {
		t.Errorf("LoadMarkdown: %v", err)
	}

	if _, err := l.LoadHTML(mdPath); err == nil || !strings.Contains(err.Error(), "not HTML") {
		t.Errorf("LoadHTML on markdown: err = %v", err)
	}
	if _, err := l.LoadMarkdown(htmlPath); err == nil || !strings.Contains(err.Error(), "not markdown") {
		t.Errorf("LoadMarkdown on html: err = %v", err)
	}
}

func TestDetermineMimeType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.html", "text/html"},
		{"a.HTM", "text/html"},
		{"a.md", "text/markdown"},
		{"a.markdown", "text/markdown"},
		{"a.txt", "text/plain"},
		{"a.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := determineMimeType(tt.path); got != tt.want {
			t.Errorf("determineMimeType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
