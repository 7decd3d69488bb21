package docedit

import (
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/indent"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/pagination"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/ruler"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/pkg/api"
)

type Editor = api.Editor
type Options = api.Options
type Option = api.Option
type Marker = indent.Marker
type IndentState = indent.State
type PointerEvent = ruler.PointerEvent
type PaginationState = pagination.State

func New() *Editor                           { return api.New() }
func NewWithOptions(options Options) *Editor { return api.NewWithOptions(options) }
func DefaultOptions() Options                { return api.DefaultOptions() }

var (
	WithViewport     = api.WithViewport
	WithPageHeight   = api.WithPageHeight
	WithContentWidth = api.WithContentWidth
	WithContentInset = api.WithContentInset
	WithMinGap       = api.WithMinGap
	WithFontFamily   = api.WithFontFamily
	WithFontSize     = api.WithFontSize
	WithLineHeight   = api.WithLineHeight
	WithBlockGap     = api.WithBlockGap
	WithPreviewWidth = api.WithPreviewWidth
	WithDebug        = api.WithDebug
	WithResourcePath = api.WithResourcePath
	WithTitle        = api.WithTitle
	WithAuthor       = api.WithAuthor
	WithSubject      = api.WithSubject
	WithKeywords     = api.WithKeywords
)

const (
	PageWidthPx    = api.PageWidthPx
	PageHeightPx   = api.PageHeightPx
	PageMarginPx   = api.PageMarginPx
	ContentWidthPx = api.ContentWidthPx

	MarkerNone      = indent.MarkerNone
	MarkerLeft      = indent.MarkerLeft
	MarkerFirstLine = indent.MarkerFirstLine
	MarkerRight     = indent.MarkerRight
)
