package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/keepno/internal/adapter"
	"github.com/MKhiriev/keepno/internal/listsync"
	"github.com/MKhiriev/keepno/models"
)

type notesCollection struct {
	api adapter.NotesAPI
}

// NewNotesCollection returns the notes of the signed-in user as a
// [listsync.Collection]. The server offers neither note updates nor note
// deletion; both return an error wrapping [errors.ErrUnsupported].
func NewNotesCollection(api adapter.NotesAPI) listsync.Collection {
	return &notesCollection{api: api}
}

func (n *notesCollection) FetchPage(ctx context.Context, cursor models.Cursor) (models.CollectionPage, error) {
	page, err := n.api.ListNotes(ctx, cursor)
	if err != nil {
		return models.CollectionPage{}, fmt.Errorf("list notes: %w", mapAdapterError(err))
	}

	items := make([]models.Item, 0, len(page.Notes))
	for _, note := range page.Notes {
		items = append(items, noteToItem(note))
	}

	next := nextCursor(page.HasNext, page.NextNum)
	return models.CollectionPage{Items: items, HasNext: next != "", NextCursor: next}, nil
}

func (n *notesCollection) Create(ctx context.Context, draft models.Draft) (models.Item, error) {
	nd := models.NoteDraft{
		Title:       strings.TrimSpace(draft[models.FieldTitle]),
		Description: strings.TrimSpace(draft[models.FieldDescription]),
	}

	note, err := n.api.CreateNote(ctx, nd)
	if err != nil {
		return models.Item{}, fmt.Errorf("create note: %w", mapAdapterError(err))
	}
	return noteToItem(note), nil
}

func (n *notesCollection) Update(_ context.Context, id models.ItemID, _ models.Draft) (models.Item, error) {
	return models.Item{}, fmt.Errorf("update note %s: %w", id, errors.ErrUnsupported)
}

func (n *notesCollection) Delete(_ context.Context, id models.ItemID) (models.Item, error) {
	return models.Item{}, fmt.Errorf("delete note %s: %w", id, errors.ErrUnsupported)
}

func (n *notesCollection) Messages() listsync.Messages {
	return NotesMessages
}
