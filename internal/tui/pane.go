// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/keepno/internal/listsync"
	"github.com/MKhiriev/keepno/models"
)

const defaultPaneHeight = 10

// rowFunc renders one list row.
type rowFunc func(item models.Item, selected, highlighted bool, width int) string

// listPane is the rendered side of one list. The list engine writes to it from
// command goroutines while the program loop reads it in View, so every field
// is guarded by mu.
//
// Rows are one terminal line each; the loading indicator occupies the line
// after the last row while it is visible.
type listPane struct {
	mu sync.Mutex

	rows      []models.Item
	loading   bool
	selected  int
	offset    int
	height    int
	version   uint64
	highlight models.ItemID

	trigger func()
	watchID uint64
}

func newListPane(height int) *listPane {
	if height < 1 {
		height = defaultPaneHeight
	}
	return &listPane{height: height}
}

// RenderItem implements [listsync.Presenter]. A prepended item becomes the
// selection so that a freshly created item is in view.
func (p *listPane) RenderItem(pos listsync.Position, item models.Item) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pos == listsync.Prepend {
		p.rows = slices.Insert(p.rows, 0, item)
		p.selected = 0
		p.offset = 0
	} else {
		p.rows = append(p.rows, item)
	}
	p.version++
}

// RemoveRenderedItem implements [listsync.Presenter].
func (p *listPane) RemoveRenderedItem(id models.ItemID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.indexOf(id)
	if i < 0 {
		return
	}
	p.rows = slices.Delete(p.rows, i, i+1)
	p.clampLocked()
	p.version++
}

// UpdateRenderedItem implements [listsync.Presenter].
func (p *listPane) UpdateRenderedItem(id models.ItemID, fields map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i := p.indexOf(id); i >= 0 {
		p.rows[i] = p.rows[i].WithFields(fields)
		p.version++
	}
}

// SetLoadingIndicatorVisible implements [listsync.Presenter].
func (p *listPane) SetLoadingIndicatorVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loading != visible {
		p.loading = visible
		p.version++
	}
}

// Overflows implements [listsync.Viewport].
func (p *listPane) Overflows() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.contentLinesLocked() > p.height
}

// WatchIndicator implements [listsync.Viewport]. The pane has no way to call
// trigger by itself; the program loop asks [listPane.pendingTrigger] after
// every scroll, resize and page.
func (p *listPane) WatchIndicator(trigger func()) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.watchID++
	id := p.watchID
	p.trigger = trigger

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.watchID == id {
			p.trigger = nil
		}
	}
}

// pendingTrigger returns the watched trigger when the loading indicator is
// inside the visible window, nil otherwise.
func (p *listPane) pendingTrigger() func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.trigger == nil || !p.loading {
		return nil
	}
	if len(p.rows) >= p.offset+p.height {
		return nil
	}
	return p.trigger
}

func (p *listPane) setHeight(h int) {
	if h < 1 {
		h = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.height = h
	p.clampLocked()
}

func (p *listPane) setHighlight(id models.ItemID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.highlight = id
}

// move shifts the selection by delta rows and scrolls the window to keep it
// visible. Moving down past the last row scrolls the indicator into view.
func (p *listPane) move(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.rows) == 0 {
		return
	}
	next := p.selected + delta
	if next >= len(p.rows) && p.loading {
		// reveal the indicator line below the last row
		p.offset = max(0, p.contentLinesLocked()-p.height)
	}
	p.selected = max(0, min(next, len(p.rows)-1))
	p.clampLocked()
}

func (p *listPane) selectedItem() (models.Item, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.selected < 0 || p.selected >= len(p.rows) {
		return models.Item{}, false
	}
	return p.rows[p.selected], true
}

func (p *listPane) find(id models.ItemID) (models.Item, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i := p.indexOf(id); i >= 0 {
		return p.rows[i], true
	}
	return models.Item{}, false
}

func (p *listPane) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.rows)
}

func (p *listPane) currentVersion() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.version
}

func (p *listPane) isLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// view renders the visible window. indicator is the loading indicator line
// and empty is shown for a fully loaded empty list.
func (p *listPane) view(row rowFunc, indicator, empty string, width int) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.rows) == 0 && !p.loading {
		return empty
	}

	lines := make([]string, 0, p.height)
	end := min(len(p.rows), p.offset+p.height)
	for i := p.offset; i < end; i++ {
		item := p.rows[i]
		lines = append(lines, row(item, i == p.selected, item.ID == p.highlight, width))
	}
	if p.loading && len(lines) < p.height {
		lines = append(lines, indicator)
	}
	return strings.Join(lines, "\n")
}

func (p *listPane) indexOf(id models.ItemID) int {
	return slices.IndexFunc(p.rows, func(it models.Item) bool { return it.ID == id })
}

func (p *listPane) contentLinesLocked() int {
	n := len(p.rows)
	if p.loading {
		n++
	}
	return n
}

func (p *listPane) clampLocked() {
	if p.selected >= len(p.rows) {
		p.selected = len(p.rows) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
	if p.selected < p.offset {
		p.offset = p.selected
	}
	if p.selected >= p.offset+p.height {
		p.offset = p.selected - p.height + 1
	}
	if maxOffset := max(0, p.contentLinesLocked()-p.height); p.offset > maxOffset {
		p.offset = maxOffset
	}
}
