// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// keepno notes server.
//
// The primary abstraction is [NotesAPI], which decouples the service layer
// from the REST protocol. The package ships a resty-based implementation
// ([NewHTTPNotesAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401 or a login
// redirect). A structured "error" payload in the response body is returned as
// a [*models.ValidationError] that can be extracted with [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/keepno/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_api_mock.go -package=mock

// NotesAPI defines communication with the keepno server. Implementations are
// responsible for serialisation, session cookie management, and mapping
// transport-level errors to the sentinel values defined in this package.
type NotesAPI interface {
	// SetSession stores the session cookie attached to every subsequent
	// request. Accepts either the bare value or "name=value".
	SetSession(cookie string)

	// Session returns the current session cookie value. The server may
	// refresh it on any response.
	Session() string

	// ListNotes fetches one page of the current user's notes, newest first.
	ListNotes(ctx context.Context, page models.Cursor) (models.NotesPage, error)

	// CreateNote creates a note and returns it as stored by the server.
	CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)

	// ListEntries fetches one page of the entries of a note, newest first. A
	// note without entries yields an empty page with HasNext false.
	ListEntries(ctx context.Context, noteID models.ItemID, page models.Cursor) (models.EntriesPage, error)

	// CreateEntry adds an entry to a note.
	CreateEntry(ctx context.Context, noteID models.ItemID, draft models.EntryDraft) (models.Entry, error)

	// UpdateEntry replaces the content of an entry.
	UpdateEntry(ctx context.Context, noteID, entryID models.ItemID, draft models.EntryDraft) (models.Entry, error)

	// DeleteEntry removes an entry and returns it as it was before removal.
	DeleteEntry(ctx context.Context, noteID, entryID models.ItemID) (models.Entry, error)

	// ExportNote starts a background export of a note in the given format
	// and returns the handle of the started task.
	ExportNote(ctx context.Context, noteID models.ItemID, format string) (models.TaskHandle, error)

	// TaskStatus fetches the current status of a background task.
	TaskStatus(ctx context.Context, handle models.TaskHandle) (models.TaskStatus, error)

	// ResolveURL turns a server-relative path into an absolute URL.
	ResolveURL(path string) string
}
