package models

import (
	"strconv"
	"time"
)

// ItemID identifies a note or an entry on the server.
type ItemID int64

// String returns the decimal representation used in URL paths.
func (id ItemID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Display field names shared by the service and presentation layers.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldContent     = "content"
	FieldCreated     = "created"
)

// Item is the collection-agnostic view of a note or an entry: an identity plus
// already rendered display values.
type Item struct {
	ID          ItemID
	Fields      map[string]string
	LastUpdated time.Time
}

// Field returns the display value for name, or an empty string.
func (i Item) Field(name string) string {
	if i.Fields == nil {
		return ""
	}
	return i.Fields[name]
}

// WithFields returns a copy of i whose fields are overwritten by fields.
// Keys absent from fields keep their previous values.
func (i Item) WithFields(fields map[string]string) Item {
	merged := make(map[string]string, len(i.Fields)+len(fields))
	for k, v := range i.Fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	i.Fields = merged
	return i
}

// Cursor is an opaque page token issued by the server.
type Cursor string

// FirstCursor addresses the first page of any collection.
const FirstCursor Cursor = "1"

// CollectionPage is the result of one page fetch.
type CollectionPage struct {
	Items      []Item
	HasNext    bool
	NextCursor Cursor
}

// Draft carries the user-entered field values of a create or update
// mutation, keyed by the Field* names.
type Draft map[string]string
