package models

import "time"

// Note is a notebook record as returned by the keepno REST API.
type Note struct {
	// ID is the server-side identifier of the note.
	ID ItemID `json:"id"`

	// Title is the unique, non-empty note title.
	Title string `json:"title"`

	// Description is an optional short summary shown in the notes list.
	Description string `json:"description"`

	// Created is the creation timestamp.
	Created Timestamp `json:"created"`

	// Updated is the timestamp of the last modification. The server orders the
	// notes list by this field, newest first.
	Updated Timestamp `json:"updated"`
}

// Entry is a single entry of a note.
type Entry struct {
	// ID is the server-side identifier of the entry.
	ID ItemID `json:"id"`

	// NoteID references the note the entry belongs to.
	NoteID ItemID `json:"note_id"`

	// Content is the rich-text (HTML) body of the entry.
	Content string `json:"content"`

	// Created is the creation timestamp. The server orders entries by this
	// field, newest first.
	Created Timestamp `json:"created"`

	// Updated is the timestamp of the last modification.
	Updated Timestamp `json:"updated"`
}

// NoteDraft is the body of a create-note request.
type NoteDraft struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// EntryDraft is the body of a create- or update-entry request.
type EntryDraft struct {
	Content string `json:"content"`
	NoteID  ItemID `json:"note_id,omitempty"`
}

// Timestamp decodes the ISO-8601 timestamps produced by the server, which
// may come without a zone designator (naive UTC) or be null.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return &time.ParseError{Layout: time.RFC3339, Value: s, Message: ": timestamp must be a string"}
	}
	s = s[1 : len(s)-1]

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}
