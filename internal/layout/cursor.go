// Package layout provides the pure page-layout math shared by the document
// renderers: a vertical cursor that decides page breaks and an
// aspect-preserving image fitter. Nothing here touches a rendering
// backend, so block placement is testable in isolation.
package layout

// ---------------------------------------------------------------------------
// Cursor
// ---------------------------------------------------------------------------

// Cursor tracks the running vertical position of an in-progress document
// render. A cursor is owned by exactly one render; concurrent renders each
// carry their own.
type Cursor struct {
	Y          float64
	PageTop    float64
	PageBottom float64
	PageWidth  float64
	PageHeight float64
}

// NewCursor returns a cursor positioned at the top margin of a fresh page.
func NewCursor(pageWidth, pageHeight, top, bottom float64) Cursor {
	return Cursor{
		Y:          top,
		PageTop:    top,
		PageBottom: pageHeight - bottom,
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
	}
}

// WillOverflow reports whether a block of the given height would cross the
// bottom bound if placed at the current position. It never mutates state;
// composers use it to keep visual groups on one page.
func (c *Cursor) WillOverflow(needed float64) bool {
	return c.Y+needed > c.PageBottom
}

// Advance moves the cursor down by the consumed height. When the new
// position crosses the bottom bound the cursor resets to the top margin of
// a new page and reports true so the caller can append the page and redraw
// any running decoration. Blocks taller than a whole page overflow the
// page boundary rather than failing; after any Advance the cursor is back
// within [PageTop, PageBottom].
func (c *Cursor) Advance(consumed float64) (pageBreak bool) {
	c.Y += consumed
	if c.Y > c.PageBottom {
		c.Break()
		return true
	}
	return false
}

// Break resets the cursor to the top margin of a new page.
func (c *Cursor) Break() {
	c.Y = c.PageTop
}

// Remaining returns the vertical space left on the current page.
func (c *Cursor) Remaining() float64 {
	return c.PageBottom - c.Y
}
