package listsync

import "github.com/MKhiriev/keepno/models"

// Cursor is the pagination state of one list. It is not safe for concurrent
// use; the owning Engine serialises access.
type Cursor struct {
	next    models.Cursor
	hasNext bool
	pages   int
}

// NewCursor returns a cursor addressing the first page.
func NewCursor() *Cursor {
	return &Cursor{next: models.FirstCursor, hasNext: true}
}

// HasMore reports whether another page can be fetched. It is true before the
// first page was applied.
func (c *Cursor) HasMore() bool {
	return c.hasNext
}

// Next returns the token of the page to fetch next.
func (c *Cursor) Next() models.Cursor {
	return c.next
}

// Pages returns the number of pages applied so far.
func (c *Cursor) Pages() int {
	return c.pages
}

// Advance applies a successfully fetched page. Each page must be applied
// exactly once, in fetch order. A page that claims a successor but carries no
// token ends the pagination.
func (c *Cursor) Advance(page models.CollectionPage) {
	c.pages++
	c.hasNext = page.HasNext && page.NextCursor != ""
	if c.hasNext {
		c.next = page.NextCursor
		return
	}
	c.next = ""
}
