package adapter

import "errors"

// Sentinel errors returned (wrapped) by [NotesAPI] implementations.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrTransport marks failures that happened before a usable response was
	// received: connection errors, timeouts, and undecodable bodies.
	ErrTransport = errors.New("transport failure")

	// ErrUnexpectedResponse indicates a well-formed response that does not
	// match the documented shape.
	ErrUnexpectedResponse = errors.New("unexpected response")
)
