package pagination

import (
	"math"

	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/geometry"
	"github.com/ANURAGGGGGGGGGGGG/document-editor/internal/surface"
)

// Options contains configuration options for the estimator
type Options struct {
	// PageHeight is the logical page height in pixels. The default is a
	// US Letter page, 11 inches at 96dpi.
	PageHeight float64
}

// State is the derived pagination read-out shown to the user. CurrentPage
// is always within [1, PageCount].
type State struct {
	PageCount   int
	CurrentPage int
}

// Estimator converts a container's measured content height and scroll
// offset into a page count and current-page indicator. The content is one
// continuous flow; page boundaries are approximate by design, not
// authoritative splits.
type Estimator struct {
	options   Options
	container *surface.Container
	last      State
}

// NewEstimator creates a new estimator with default options
func NewEstimator() *Estimator {
	return &Estimator{
		options: Options{
			PageHeight: geometry.InchesToPx(11),
		},
		last: State{PageCount: 1, CurrentPage: 1},
	}
}

// SetOptions sets the estimator options. A non-positive page height resets
// to the default.
func (e *Estimator) SetOptions(options Options) {
	if options.PageHeight <= 0 {
		options.PageHeight = geometry.InchesToPx(11)
	}
	e.options = options
}

// Update computes the pagination state for the given measurements and
// records it as the last known state. Calling it twice with unchanged
// inputs yields identical output.
func (e *Estimator) Update(contentHeight, scrollOffset float64) State {
	if contentHeight < 0 {
		contentHeight = 0
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	pageCount := int(math.Ceil(contentHeight / e.options.PageHeight))
	if pageCount < 1 {
		pageCount = 1
	}

	currentPage := int(math.Floor(scrollOffset/e.options.PageHeight)) + 1
	currentPage = geometry.ClampInt(currentPage, 1, pageCount)

	e.last = State{PageCount: pageCount, CurrentPage: currentPage}
	return e.last
}

// Bind attaches the estimator to the container it measures. Refresh is a
// no-op until a container is bound.
func (e *Estimator) Bind(c *surface.Container) {
	e.container = c
}

// Refresh recomputes the state from the bound container. While unbound it
// silently returns the last state; the next trigger retries. The scroll
// offset is taken relative to the content's top inset so an inset surface
// does not misreport the current page.
func (e *Estimator) Refresh() State {
	if e.container == nil {
		return e.last
	}
	offset := e.container.ScrollOffset() - e.container.ContentInset()
	if offset < 0 {
		offset = 0
	}
	return e.Update(e.container.ContentHeight(), offset)
}

// State returns the last computed pagination state.
func (e *Estimator) State() State {
	return e.last
}
