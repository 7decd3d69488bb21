package api

import (
	"context"
	"fmt"
	"io"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/engine"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/export"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/measure"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/observability"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/pagination"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/parser/html"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/parser/markdown"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/preview"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/res"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/ruler"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/scripting"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/style"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/surface"
)

// Editor is the main API for the document editor. It owns the document
// model, the scrollable page surface, the pagination estimator and the
// indent ruler, and keeps them in sync as the document and viewport change.
type Editor struct {
	options Options
	logger  observability.Logger

	doc       *engine.Document
	container *surface.Container
	estimator *pagination.Estimator
	ruler     *ruler.Controller
	loader    *res.Loader

	measure measure.Options

	cancelScroll func()
}

// New creates a new editor with default options
func New() *Editor {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new editor with the specified options
func NewWithOptions(options Options) *Editor {
	e := &Editor{
		options: options,
		logger:  observability.NopLogger{},
		doc:     engine.NewDocument(),
		loader:  res.NewLoader(""),
	}
	if options.Debug {
		e.logger = observability.NewStdLogger(true)
	}

	e.measure = measure.Options{
		Style: style.Options{
			BaseFamily: options.FontFamily,
			BaseSize:   options.FontSize,
		},
		LineHeight: options.LineHeight,
		BlockGap:   options.BlockGap,
	}

	e.container = surface.NewContainer(options.ViewportWidth, options.ViewportHeight)
	e.container.SetContentInset(options.ContentInset)

	e.estimator = pagination.NewEstimator()
	e.estimator.SetOptions(pagination.Options{PageHeight: options.PageHeight})
	e.estimator.Bind(e.container)

	e.ruler = ruler.NewController(e.doc)
	e.ruler.SetOptions(ruler.Options{MinGap: options.MinGap, Logger: e.logger})
	e.ruler.SetTrackWidth(options.ContentWidth)

	e.cancelScroll = e.container.OnScroll(func(float64) { e.estimator.Refresh() })
	e.doc.AddObserver(contentWatcher{e})

	e.remeasure()
	return e
}

// contentWatcher remeasures the surface whenever the document changes and
// refreshes the page readout on selection moves.
type contentWatcher struct{ e *Editor }

func (w contentWatcher) SelectionChanged() { w.e.estimator.Refresh() }
func (w contentWatcher) ContentChanged()   { w.e.remeasure() }

// remeasure recomputes the content height from the document and refreshes
// the pagination state. The stored height covers the content plus the
// bottom padding; the top inset is tracked by the container itself.
func (e *Editor) remeasure() {
	h := measure.ContentHeight(e.doc.Blocks(), e.options.ContentWidth, e.measure)
	e.container.SetContentHeight(h + e.options.ContentInset)
	e.estimator.Refresh()
}

// Document returns the underlying document model
func (e *Editor) Document() *engine.Document {
	return e.doc
}

// Ruler returns the indent ruler controller
func (e *Editor) Ruler() *ruler.Controller {
	return e.ruler
}

// Surface returns the scrollable page surface
func (e *Editor) Surface() *surface.Container {
	return e.container
}

// Pagination returns the current pagination state
func (e *Editor) Pagination() pagination.State {
	return e.estimator.State()
}

// LoadHTML replaces the document with the parsed HTML content
func (e *Editor) LoadHTML(content string) error {
	blocks, err := html.NewParser().ParseString(content)
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}
	e.doc.ReplaceBlocks(blocks)
	return nil
}

// LoadMarkdown replaces the document with the parsed markdown source
func (e *Editor) LoadMarkdown(source string) error {
	blocks, err := markdown.NewParser().ParseString(source)
	if err != nil {
		return fmt.Errorf("failed to parse markdown: %w", err)
	}
	e.doc.ReplaceBlocks(blocks)
	return nil
}

// LoadFile loads a document from a local HTML or markdown file
func (e *Editor) LoadFile(inputPath string) error {
	return e.loadSource(inputPath)
}

// LoadURL loads a document from a URL
func (e *Editor) LoadURL(url string) error {
	return e.loadSource(url)
}

// loadSource loads a source through the resource loader and dispatches on
// the detected document type.
func (e *Editor) loadSource(src string) error {
	e.loader = res.NewLoader(src)
	for _, path := range e.options.ResourcePaths {
		e.loader.AddSearchPath(path)
	}

	resource, err := e.loader.Load(src)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	switch resource.Type {
	case res.ResourceTypeHTML:
		return e.LoadHTML(resource.GetString())
	case res.ResourceTypeMarkdown:
		return e.LoadMarkdown(resource.GetString())
	default:
		return fmt.Errorf("unsupported document type: %s", src)
	}
}

// ExportHTML serializes the document back to an HTML fragment
func (e *Editor) ExportHTML() (string, error) {
	out, err := html.Render(e.doc.Blocks())
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return out, nil
}

// ExportPDF renders the document to a PDF file
func (e *Editor) ExportPDF(outputPath string) error {
	r := export.NewRenderer()
	r.Measure = e.measure
	if err := r.Render(e.doc.Blocks(), outputPath, e.renderOptions()); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// ExportPDFTo renders the document as PDF to the specified writer
func (e *Editor) ExportPDFTo(w io.Writer) error {
	r := export.NewRenderer()
	r.Measure = e.measure
	if err := r.RenderTo(e.doc.Blocks(), w, e.renderOptions()); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// PDFPageCount reports how many pages the exported PDF would have
func (e *Editor) PDFPageCount() (int, error) {
	r := export.NewRenderer()
	r.Measure = e.measure
	return r.PageCount(e.doc.Blocks())
}

func (e *Editor) renderOptions() export.RenderOptions {
	return export.RenderOptions{
		Title:    e.options.Title,
		Author:   e.options.Author,
		Subject:  e.options.Subject,
		Keywords: e.options.Keywords,
		Creator:  "DocEdit",
	}
}

// RenderPreview rasterizes the page surface and ruler to a PNG file
func (e *Editor) RenderPreview(outputPath string) error {
	page := e.estimator.Refresh()

	width := e.options.PreviewWidth
	if width <= 0 {
		width = DefaultOptions().PreviewWidth
	}

	r := preview.NewRenderer(width, preview.HeightFor(width, page.PageCount))
	r.Measure = e.measure
	r.Render(preview.Snapshot{
		Blocks:     e.doc.Blocks(),
		Indents:    e.ruler.Indents(),
		TrackWidth: e.ruler.Track().Width,
		Page:       page,
	})

	if err := r.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	return nil
}

// RunScript executes a script against the editor's scripting bindings.
// The script sees the editor as the global "editor" object.
func (e *Editor) RunScript(ctx context.Context, script string) (interface{}, error) {
	eng := scripting.NewEngine()
	if err := eng.RegisterDOM(&scriptDOM{e}); err != nil {
		return nil, fmt.Errorf("failed to register editor bindings: %w", err)
	}
	return eng.Execute(ctx, script)
}

// Scroll sets the scroll offset and returns the resulting pagination state
func (e *Editor) Scroll(offset float64) pagination.State {
	e.container.SetScroll(offset)
	return e.estimator.State()
}

// ScrollBy moves the scroll offset by delta and returns the resulting
// pagination state
func (e *Editor) ScrollBy(delta float64) pagination.State {
	e.container.ScrollBy(delta)
	return e.estimator.State()
}

// Resize records a new viewport size
func (e *Editor) Resize(width, height float64) {
	e.container.Resize(width, height)
	e.estimator.Refresh()
}

// Undo undoes the last document change and reports whether one was undone
func (e *Editor) Undo() bool {
	return e.doc.Undo()
}

// Redo reapplies the last undone change and reports whether one was redone
func (e *Editor) Redo() bool {
	return e.doc.Redo()
}

// Close detaches the editor from its document and surface observers
func (e *Editor) Close() {
	if e.cancelScroll != nil {
		e.cancelScroll()
		e.cancelScroll = nil
	}
	e.ruler.Close()
	_ = e.doc.DelObserver(contentWatcher{e})
}

// scriptDOM exposes the editor to scripts.
type scriptDOM struct {
	e *Editor
}

func (d *scriptDOM) PageCount() int {
	return d.e.estimator.State().PageCount
}

func (d *scriptDOM) CurrentPage() int {
	return d.e.estimator.State().CurrentPage
}

func (d *scriptDOM) Indents() (left, right, firstLine int) {
	s := d.e.ruler.Indents()
	return s.Left, s.Right, s.FirstLine
}

func (d *scriptDOM) SetIndents(left, right, firstLine int) {
	d.e.doc.SetBlockAttrs(engine.Attrs{
		engine.AttrLeftIndent:      left,
		engine.AttrRightIndent:     right,
		engine.AttrFirstLineIndent: firstLine,
	}, engine.IndentableTypes()...)
	d.e.doc.CloseHistory()
}

func (d *scriptDOM) BlockCount() int {
	return d.e.doc.Len()
}

func (d *scriptDOM) BlockText(i int) (string, error) {
	b := d.e.doc.Block(i)
	if b == nil {
		return "", fmt.Errorf("block index out of range: %d", i)
	}
	return b.Text, nil
}

func (d *scriptDOM) InsertParagraph(text string) {
	d.e.doc.Append(engine.Paragraph, text)
}

func (d *scriptDOM) Undo() bool {
	return d.e.doc.Undo()
}

func (d *scriptDOM) Alert(message string) {
	d.e.logger.Info("script alert", observability.String("message", message))
}
