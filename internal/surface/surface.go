// Package surface models the scrollable page surface a host embeds the
// editor in: measured content height, scroll offset, and size-change
// notifications. Hosts feed platform measurements in; the pagination and
// ruler layers observe it instead of a platform API.
package surface

import "github.com/ANURAGGGGGGGGGGGG/document-editor/internal/geometry"

// ResizeObserver is the capability of watching an element's width. Observe
// registers fn and returns a cancel func; fn fires on every width change.
type ResizeObserver interface {
	Observe(fn func(width float64)) (cancel func())
}

// Viewport is a host-facing snapshot of the container's camera state.
type Viewport struct {
	// ScrollOffset is the distance scrolled from the content origin.
	ScrollOffset float64
	// Height is the visible height of the container.
	Height float64
	// ContentHeight is the total measured height of the content.
	ContentHeight float64
}

// Container is the scrollable region holding the page surface. The zero
// value is unusable; construct with NewContainer. Containers are confined
// to the host's event goroutine.
type Container struct {
	width         float64
	height        float64
	contentHeight float64
	scrollOffset  float64
	contentInset  float64

	nextID    int
	scrollFns map[int]func(offset float64)
	resizeFns map[int]func(width float64)
}

// NewContainer returns a container with the given visible size.
func NewContainer(width, height float64) *Container {
	return &Container{
		width:     width,
		height:    height,
		scrollFns: make(map[int]func(float64)),
		resizeFns: make(map[int]func(float64)),
	}
}

// Width returns the visible width.
func (c *Container) Width() float64 { return c.width }

// Height returns the visible height.
func (c *Container) Height() float64 { return c.height }

// ContentHeight returns the measured content height.
func (c *Container) ContentHeight() float64 { return c.contentHeight }

// ScrollOffset returns the current scroll position.
func (c *Container) ScrollOffset() float64 { return c.scrollOffset }

// ContentInset returns the distance from the scroll origin to the top of
// the content surface.
func (c *Container) ContentInset() float64 { return c.contentInset }

// SetContentInset records the content's top inset inside the container.
func (c *Container) SetContentInset(inset float64) {
	if inset < 0 {
		inset = 0
	}
	c.contentInset = inset
}

// MaxScroll returns the largest reachable scroll offset.
func (c *Container) MaxScroll() float64 {
	m := c.contentHeight + c.contentInset - c.height
	if m < 0 {
		return 0
	}
	return m
}

// SetContentHeight records a new measured content height, clamping the
// scroll offset back into range if the content shrank.
func (c *Container) SetContentHeight(h float64) {
	if h < 0 {
		h = 0
	}
	c.contentHeight = h
	if c.scrollOffset > c.MaxScroll() {
		c.SetScroll(c.MaxScroll())
	}
}

// SetScroll moves the scroll position, clamped to [0, MaxScroll], and
// notifies scroll watchers when the position changed.
func (c *Container) SetScroll(offset float64) {
	offset = geometry.Clamp(offset, 0, c.MaxScroll())
	if offset == c.scrollOffset {
		return
	}
	c.scrollOffset = offset
	for _, fn := range c.scrollFns {
		fn(offset)
	}
}

// ScrollBy moves the scroll position by delta.
func (c *Container) ScrollBy(delta float64) {
	c.SetScroll(c.scrollOffset + delta)
}

// Resize records a new visible size and notifies resize watchers when the
// width changed.
func (c *Container) Resize(width, height float64) {
	widthChanged := width != c.width
	c.width = width
	c.height = height
	if c.scrollOffset > c.MaxScroll() {
		c.SetScroll(c.MaxScroll())
	}
	if widthChanged {
		for _, fn := range c.resizeFns {
			fn(width)
		}
	}
}

// OnScroll registers fn for scroll notifications and returns a cancel func.
func (c *Container) OnScroll(fn func(offset float64)) (cancel func()) {
	id := c.nextID
	c.nextID++
	c.scrollFns[id] = fn
	return func() { delete(c.scrollFns, id) }
}

// Observe implements ResizeObserver.
func (c *Container) Observe(fn func(width float64)) (cancel func()) {
	id := c.nextID
	c.nextID++
	c.resizeFns[id] = fn
	return func() { delete(c.resizeFns, id) }
}

// Viewport returns the current camera snapshot.
func (c *Container) Viewport() Viewport {
	return Viewport{
		ScrollOffset:  c.scrollOffset,
		Height:        c.height,
		ContentHeight: c.contentHeight,
	}
}
