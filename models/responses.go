package models

// NotesPage is one page of the notes list. The server orders notes by their
// last update, newest first.
type NotesPage struct {
	// Notes holds the notes of this page.
	Notes []Note `json:"notes"`

	// HasNext reports whether another page follows.
	HasNext bool `json:"has_next"`

	// NextNum is the number of the next page, null on the last page.
	NextNum *int `json:"next_num"`

	// Error is set instead of the fields above when the request failed.
	Error *ErrorDetail `json:"error,omitempty"`
}

// EntriesPage is one page of the entries of a note, newest first.
type EntriesPage struct {
	Entries []Entry      `json:"entries"`
	HasNext bool         `json:"has_next"`
	NextNum *int         `json:"next_num"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// NoteEnvelope wraps a single note returned by a mutation.
type NoteEnvelope struct {
	Note  *Note        `json:"note,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// EntryEnvelope wraps a single entry returned by a mutation. A delete answers
// with the entry as it was before removal.
type EntryEnvelope struct {
	Entry *Entry       `json:"entry,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}
