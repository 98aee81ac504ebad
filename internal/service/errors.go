package service

import "errors"

var (
	ErrSessionExpired    = errors.New("session expired, sign in through the browser and pass the new session cookie")
	ErrNoSession         = errors.New("no session cookie configured")
	ErrNoteNotFound      = errors.New("note not found")
	ErrInvalidDraft      = errors.New("invalid draft")
	ErrInvalidNoteID     = errors.New("invalid note id")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
