package api

import (
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/indent"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/measure"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/style"
)

// Options represents configuration options for the editor
type Options struct {
	// Viewport dimensions in pixels
	ViewportWidth  float64
	ViewportHeight float64

	// Page geometry in pixels
	PageHeight   float64
	ContentWidth float64
	// ContentInset is the padding above and below the page content,
	// subtracted from the scroll offset when deriving the current page
	ContentInset float64

	// Ruler interaction
	MinGap int

	// Typography
	FontFamily string
	FontSize   float64
	LineHeight float64
	BlockGap   float64

	// Preview rendering
	PreviewWidth int

	// Rendering options
	Debug bool

	// Resource paths
	ResourcePaths []string

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Option is a function that modifies Options
type Option func(*Options)

// Page geometry in pixels at 96dpi
const (
	// PageWidthPx is a US Letter page width (8.5in)
	PageWidthPx = 816.0
	// PageHeightPx is a US Letter page height (11in)
	PageHeightPx = 1056.0
	// PageMarginPx is the page margin on every side (1in)
	PageMarginPx = 96.0
	// ContentWidthPx is the usable text width inside the margins
	ContentWidthPx = PageWidthPx - 2*PageMarginPx
)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	s := style.DefaultOptions()

	return Options{
		// Default viewport roughly one page wide
		ViewportWidth:  PageWidthPx,
		ViewportHeight: 900,

		// Default US Letter page geometry
		PageHeight:   PageHeightPx,
		ContentWidth: ContentWidthPx,
		ContentInset: PageMarginPx,

		// Default marker gap
		MinGap: indent.DefaultMinGap,

		// Default typography
		FontFamily: s.BaseFamily,
		FontSize:   s.BaseSize,
		LineHeight: measure.DefaultLineHeight,
		BlockGap:   measure.DefaultBlockGap,

		// Default preview canvas width
		PreviewWidth: 864,

		// Default debug mode
		Debug: false,

		// Default resource paths
		ResourcePaths: []string{},

		// Default document metadata
		Title:    "",
		Author:   "",
		Subject:  "",
		Keywords: "",
	}
}

// WithViewport sets the viewport size
func WithViewport(width, height float64) Option {
	return func(o *Options) {
		o.ViewportWidth = width
		o.ViewportHeight = height
	}
}

// WithPageHeight sets the logical page height
func WithPageHeight(height float64) Option {
	return func(o *Options) {
		o.PageHeight = height
	}
}

// WithContentWidth sets the usable content width
func WithContentWidth(width float64) Option {
	return func(o *Options) {
		o.ContentWidth = width
	}
}

// WithContentInset sets the vertical content inset
func WithContentInset(inset float64) Option {
	return func(o *Options) {
		o.ContentInset = inset
	}
}

// WithMinGap sets the minimum gap kept between the indent markers
func WithMinGap(gap int) Option {
	return func(o *Options) {
		o.MinGap = gap
	}
}

// WithFontFamily sets the base font family
func WithFontFamily(family string) Option {
	return func(o *Options) {
		o.FontFamily = family
	}
}

// WithFontSize sets the base font size in pixels
func WithFontSize(size float64) Option {
	return func(o *Options) {
		o.FontSize = size
	}
}

// WithLineHeight sets the line height factor
func WithLineHeight(factor float64) Option {
	return func(o *Options) {
		o.LineHeight = factor
	}
}

// WithBlockGap sets the vertical gap after each block in pixels
func WithBlockGap(gap float64) Option {
	return func(o *Options) {
		o.BlockGap = gap
	}
}

// WithPreviewWidth sets the preview canvas width in pixels
func WithPreviewWidth(width int) Option {
	return func(o *Options) {
		o.PreviewWidth = width
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithResourcePath adds a path to search for document sources
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}
