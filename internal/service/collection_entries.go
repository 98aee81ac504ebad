package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keepno/internal/adapter"
	"github.com/MKhiriev/keepno/internal/listsync"
	"github.com/MKhiriev/keepno/models"
)

type entriesCollection struct {
	api    adapter.NotesAPI
	noteID models.ItemID
}

// NewEntriesCollection returns the entries of one note as a
// [listsync.Collection]. Draft content is plain text; it is sent to the
// server as paragraphs and rendered back to text on the way in.
func NewEntriesCollection(api adapter.NotesAPI, noteID models.ItemID) listsync.Collection {
	return &entriesCollection{api: api, noteID: noteID}
}

func (e *entriesCollection) FetchPage(ctx context.Context, cursor models.Cursor) (models.CollectionPage, error) {
	page, err := e.api.ListEntries(ctx, e.noteID, cursor)
	if err != nil {
		return models.CollectionPage{}, fmt.Errorf("list entries of note %s: %w", e.noteID, mapAdapterError(err))
	}

	items := make([]models.Item, 0, len(page.Entries))
	for _, entry := range page.Entries {
		items = append(items, entryToItem(entry))
	}

	next := nextCursor(page.HasNext, page.NextNum)
	return models.CollectionPage{Items: items, HasNext: next != "", NextCursor: next}, nil
}

func (e *entriesCollection) Create(ctx context.Context, draft models.Draft) (models.Item, error) {
	entry, err := e.api.CreateEntry(ctx, e.noteID, e.entryDraft(draft))
	if err != nil {
		return models.Item{}, fmt.Errorf("create entry in note %s: %w", e.noteID, mapAdapterError(err))
	}
	return entryToItem(entry), nil
}

func (e *entriesCollection) Update(ctx context.Context, id models.ItemID, draft models.Draft) (models.Item, error) {
	entry, err := e.api.UpdateEntry(ctx, e.noteID, id, e.entryDraft(draft))
	if err != nil {
		return models.Item{}, fmt.Errorf("update entry %s of note %s: %w", id, e.noteID, mapAdapterError(err))
	}
	return entryToItem(entry), nil
}

func (e *entriesCollection) Delete(ctx context.Context, id models.ItemID) (models.Item, error) {
	entry, err := e.api.DeleteEntry(ctx, e.noteID, id)
	if err != nil {
		return models.Item{}, fmt.Errorf("delete entry %s of note %s: %w", id, e.noteID, mapAdapterError(err))
	}
	return entryToItem(entry), nil
}

func (e *entriesCollection) Messages() listsync.Messages {
	return EntriesMessages
}

func (e *entriesCollection) entryDraft(draft models.Draft) models.EntryDraft {
	return models.EntryDraft{
		Content: TextToHTML(draft[models.FieldContent]),
		NoteID:  e.noteID,
	}
}
