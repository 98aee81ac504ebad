// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listsync

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/models"
)

// Engine owns the rendered list of one collection and its cursor.
//
// Page fetches are strictly sequential: a LoadNextPage call made while
// another one is outstanding returns ErrFetchInFlight without fetching.
// Mutations run independently of the fetch stream; both paths serialise on
// the rendered state. After Close every late response is discarded.
type Engine struct {
	collection Collection
	presenter  Presenter
	sink       notify.Sink
	messages   Messages
	logger     *logger.Logger

	inFlight atomic.Bool
	closed   atomic.Bool

	mu     sync.Mutex
	cursor *Cursor
	order  []models.ItemID
	items  map[models.ItemID]models.Item
}

// NewEngine returns an Engine with a fresh cursor and shows the loading
// indicator.
func NewEngine(collection Collection, presenter Presenter, sink notify.Sink, log *logger.Logger) *Engine {
	e := &Engine{
		collection: collection,
		presenter:  presenter,
		sink:       sink,
		messages:   collection.Messages(),
		logger:     log,
		cursor:     NewCursor(),
		items:      make(map[models.ItemID]models.Item),
	}
	presenter.SetLoadingIndicatorVisible(true)
	return e
}

// LoadNextPage fetches the next page and appends its items in arrival order.
// It returns whether more pages remain.
//
// Returns ErrExhausted without fetching when the last page was already
// applied, and ErrFetchInFlight when another fetch is outstanding. A failed
// fetch leaves the rendered list and the cursor untouched, notifies the sink
// and returns an error wrapping ErrFetchFailed; the caller may retry.
func (e *Engine) LoadNextPage(ctx context.Context) (bool, error) {
	if e.closed.Load() {
		return false, ErrClosed
	}

	// the cursor is read only by the holder of the in-flight flag
	if !e.inFlight.CompareAndSwap(false, true) {
		return true, ErrFetchInFlight
	}
	defer e.inFlight.Store(false)

	e.mu.Lock()
	hasMore, next := e.cursor.HasMore(), e.cursor.Next()
	e.mu.Unlock()
	if !hasMore {
		return false, ErrExhausted
	}

	page, err := e.collection.FetchPage(ctx, next)
	if e.closed.Load() {
		return false, ErrClosed
	}
	if err != nil {
		e.logger.Err(err).
			Str("func", "*Engine.LoadNextPage").
			Str("cursor", string(next)).
			Msg("page fetch failed")
		if !errors.Is(err, context.Canceled) {
			notify.Send(e.sink, notify.Error, e.messages.LoadFailed)
		}
		return true, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, item := range page.Items {
		if _, rendered := e.items[item.ID]; rendered {
			// a locally created item can reappear on a later page
			e.items[item.ID] = item
			e.presenter.UpdateRenderedItem(item.ID, item.Fields)
			continue
		}
		e.items[item.ID] = item
		e.order = append(e.order, item.ID)
		e.presenter.RenderItem(Append, item)
	}
	e.cursor.Advance(page)

	more := e.cursor.HasMore()
	if !more {
		e.presenter.SetLoadingIndicatorVisible(false)
	}

	e.logger.Debug().
		Str("func", "*Engine.LoadNextPage").
		Str("cursor", string(next)).
		Int("items", len(page.Items)).
		Bool("has_more", more).
		Msg("page applied")

	return more, nil
}

// InsertCreated renders item at the head of the list. The cursor is not
// affected.
func (e *Engine) InsertCreated(item models.Item) {
	if e.closed.Load() {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, rendered := e.items[item.ID]; rendered {
		e.items[item.ID] = item
		e.presenter.UpdateRenderedItem(item.ID, item.Fields)
		return
	}
	e.items[item.ID] = item
	e.order = slices.Insert(e.order, 0, item.ID)
	e.presenter.RenderItem(Prepend, item)
}

// RemoveByID removes the rendered item with id. Unknown ids are ignored.
func (e *Engine) RemoveByID(id models.ItemID) {
	if e.closed.Load() {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, rendered := e.items[id]; !rendered {
		return
	}
	delete(e.items, id)
	e.order = slices.DeleteFunc(e.order, func(other models.ItemID) bool { return other == id })
	e.presenter.RemoveRenderedItem(id)
}

// ReplaceInPlace merges fields into the rendered item with id, keeping its
// position. Unknown ids are ignored.
func (e *Engine) ReplaceInPlace(id models.ItemID, fields map[string]string) {
	if e.closed.Load() {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	item, rendered := e.items[id]
	if !rendered {
		return
	}
	e.items[id] = item.WithFields(fields)
	e.presenter.UpdateRenderedItem(id, fields)
}

// Create stores draft through the collection and, once the server
// confirmed, renders the new item at the head of the list.
func (e *Engine) Create(ctx context.Context, draft models.Draft) (models.Item, error) {
	item, err := e.collection.Create(ctx, draft)
	if err != nil {
		e.reportMutationError("*Engine.Create", e.messages.CreateRejected, e.messages.CreateFailed, err)
		return models.Item{}, err
	}

	e.InsertCreated(item)
	notify.Send(e.sink, notify.Success, e.messages.Created)
	return item, nil
}

// Update changes the item with id and, once the server confirmed, replaces
// its rendered fields in place.
func (e *Engine) Update(ctx context.Context, id models.ItemID, draft models.Draft) (models.Item, error) {
	item, err := e.collection.Update(ctx, id, draft)
	if err != nil {
		e.reportMutationError("*Engine.Update", e.messages.UpdateRejected, e.messages.UpdateFailed, err)
		return models.Item{}, err
	}

	e.ReplaceInPlace(id, item.Fields)
	notify.Send(e.sink, notify.Success, e.messages.Updated)
	return item, nil
}

// Delete removes the item with id and, once the server confirmed, removes it
// from the rendered list.
func (e *Engine) Delete(ctx context.Context, id models.ItemID) error {
	if _, err := e.collection.Delete(ctx, id); err != nil {
		e.reportMutationError("*Engine.Delete", e.messages.DeleteRejected, e.messages.DeleteFailed, err)
		return err
	}

	e.RemoveByID(id)
	notify.Send(e.sink, notify.Success, e.messages.Deleted)
	return nil
}

func (e *Engine) reportMutationError(fn, rejected, failed string, err error) {
	e.logger.Err(err).Str("func", fn).Msg("mutation failed")

	if errors.Is(err, errors.ErrUnsupported) || errors.Is(err, context.Canceled) {
		return
	}

	var valErr *models.ValidationError
	if errors.As(err, &valErr) {
		notify.Send(e.sink, notify.Error, notify.FormatErrorDetail(rejected, valErr.Detail))
		return
	}
	notify.Send(e.sink, notify.Error, failed)
}

// Items returns a snapshot of the rendered items in display order.
func (e *Engine) Items() []models.Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]models.Item, 0, len(e.order))
	for _, id := range e.order {
		items = append(items, e.items[id])
	}
	return items
}

// Item returns the rendered item with id.
func (e *Engine) Item(id models.ItemID) (models.Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := e.items[id]
	return item, ok
}

// Len returns the number of rendered items.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.order)
}

// HasMore reports whether another page can be fetched.
func (e *Engine) HasMore() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursor.HasMore()
}

// Close detaches the Engine from its presenter. Responses arriving after
// Close are discarded.
func (e *Engine) Close() {
	e.closed.Store(true)
}

// Closed reports whether Close was called.
func (e *Engine) Closed() bool {
	return e.closed.Load()
}
