package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/utils"
	"github.com/MKhiriev/keepno/models"
	"github.com/go-resty/resty/v2"
)

const (
	// SessionCookieName is the name of the Flask session cookie.
	SessionCookieName = "session"

	headerRequestID = "X-Request-ID"

	noEntriesMessage = "No entries."
)

type httpNotesAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	ids     *utils.UUIDGenerator

	mu      sync.RWMutex
	session string

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs the resty implementation of [NotesAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and installs the request id, session cookie and logging hooks.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPNotesAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (NotesAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpNotesAdapter{
		client:  utils.NewHTTPClient().StopRedirects(),
		baseURL: baseURL,
		ids:     utils.NewUUIDGenerator(),
		logger:  log.WithComponent("adapter"),
	}

	h.client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(h.beforeRequest).
		OnAfterResponse(h.afterResponse)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSession implements [NotesAPI].
func (h *httpNotesAdapter) SetSession(cookie string) {
	cookie = strings.TrimSpace(cookie)
	if name, value, ok := strings.Cut(cookie, "="); ok && name == SessionCookieName {
		cookie = value
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = cookie
}

// Session implements [NotesAPI].
func (h *httpNotesAdapter) Session() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

// ResolveURL implements [NotesAPI].
func (h *httpNotesAdapter) ResolveURL(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	return h.baseURL + "/" + strings.TrimLeft(path, "/")
}

// ListNotes implements [NotesAPI]. It GETs /api/notes?npage=<page>.
func (h *httpNotesAdapter) ListNotes(ctx context.Context, page models.Cursor) (models.NotesPage, error) {
	resp, err := h.request(ctx).
		SetQueryParam("npage", string(pageOrFirst(page))).
		Get("/api/notes")
	if err != nil {
		return models.NotesPage{}, transportError("list notes", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NotesPage{}, err
	}

	var notesPage models.NotesPage
	if err = decode(resp, &notesPage, "list notes"); err != nil {
		return models.NotesPage{}, err
	}
	if err = validationFromBody(resp.StatusCode(), notesPage.Error); err != nil {
		return models.NotesPage{}, err
	}

	return notesPage, nil
}

// CreateNote implements [NotesAPI]. It POSTs the draft to /api/notes.
func (h *httpNotesAdapter) CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, transportError("create note", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var envelope models.NoteEnvelope
	if err = decode(resp, &envelope, "create note"); err != nil {
		return models.Note{}, err
	}
	if err = validationFromBody(resp.StatusCode(), envelope.Error); err != nil {
		return models.Note{}, err
	}
	if envelope.Note == nil {
		return models.Note{}, fmt.Errorf("%w: create note: missing note", ErrUnexpectedResponse)
	}

	return *envelope.Note, nil
}

// ListEntries implements [NotesAPI]. It GETs
// /api/notes/{note}/entries?epage=<page>. The server answers a note without
// entries with 200 {"error": "No entries."}, which becomes a final empty page.
func (h *httpNotesAdapter) ListEntries(ctx context.Context, noteID models.ItemID, page models.Cursor) (models.EntriesPage, error) {
	resp, err := h.request(ctx).
		SetPathParam("note", noteID.String()).
		SetQueryParam("epage", string(pageOrFirst(page))).
		Get("/api/notes/{note}/entries")
	if err != nil {
		return models.EntriesPage{}, transportError("list entries", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntriesPage{}, err
	}

	var entriesPage models.EntriesPage
	if err = decode(resp, &entriesPage, "list entries"); err != nil {
		return models.EntriesPage{}, err
	}
	if entriesPage.Error != nil && entriesPage.Error.Message == noEntriesMessage {
		return models.EntriesPage{}, nil
	}
	if err = validationFromBody(resp.StatusCode(), entriesPage.Error); err != nil {
		return models.EntriesPage{}, err
	}

	return entriesPage, nil
}

// CreateEntry implements [NotesAPI]. It POSTs the draft to
// /api/notes/{note}/entries.
func (h *httpNotesAdapter) CreateEntry(ctx context.Context, noteID models.ItemID, draft models.EntryDraft) (models.Entry, error) {
	resp, err := h.request(ctx).
		SetPathParam("note", noteID.String()).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post("/api/notes/{note}/entries")
	if err != nil {
		return models.Entry{}, transportError("create entry", err)
	}

	return decodeEntry(resp, "create entry")
}

// UpdateEntry implements [NotesAPI]. It PUTs the draft to
// /api/notes/{note}/entries/{entry}.
func (h *httpNotesAdapter) UpdateEntry(ctx context.Context, noteID, entryID models.ItemID, draft models.EntryDraft) (models.Entry, error) {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"note": noteID.String(), "entry": entryID.String()}).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Put("/api/notes/{note}/entries/{entry}")
	if err != nil {
		return models.Entry{}, transportError("update entry", err)
	}

	return decodeEntry(resp, "update entry")
}

// DeleteEntry implements [NotesAPI]. It sends DELETE
// /api/notes/{note}/entries/{entry}.
func (h *httpNotesAdapter) DeleteEntry(ctx context.Context, noteID, entryID models.ItemID) (models.Entry, error) {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"note": noteID.String(), "entry": entryID.String()}).
		Delete("/api/notes/{note}/entries/{entry}")
	if err != nil {
		return models.Entry{}, transportError("delete entry", err)
	}

	return decodeEntry(resp, "delete entry")
}

// ExportNote implements [NotesAPI]. It GETs
// /api/notes/{note}/export/{format} and returns the started task.
func (h *httpNotesAdapter) ExportNote(ctx context.Context, noteID models.ItemID, format string) (models.TaskHandle, error) {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"note": noteID.String(), "format": format}).
		Get("/api/notes/{note}/export/{format}")
	if err != nil {
		return models.TaskHandle{}, transportError("export note", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TaskHandle{}, err
	}

	var export models.ExportResponse
	if err = decode(resp, &export, "export note"); err != nil {
		return models.TaskHandle{}, err
	}
	if err = validationFromBody(resp.StatusCode(), export.Error); err != nil {
		return models.TaskHandle{}, err
	}
	if export.ReportStatus != models.ExportStarted || export.TaskID == "" {
		return models.TaskHandle{}, fmt.Errorf("%w: export note: report status %q", ErrUnexpectedResponse, export.ReportStatus)
	}

	return models.TaskHandle{
		TaskID:    export.TaskID,
		StatusURL: "/api/task/" + url.PathEscape(export.TaskID),
	}, nil
}

// TaskStatus implements [NotesAPI]. It GETs the status URL of the handle.
func (h *httpNotesAdapter) TaskStatus(ctx context.Context, handle models.TaskHandle) (models.TaskStatus, error) {
	statusURL := handle.StatusURL
	if statusURL == "" {
		statusURL = "/api/task/" + url.PathEscape(handle.TaskID)
	}

	resp, err := h.request(ctx).Get(statusURL)
	if err != nil {
		return models.TaskStatus{}, transportError("task status", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TaskStatus{}, err
	}

	var status models.TaskStatus
	if err = decode(resp, &status, "task status"); err != nil {
		return models.TaskStatus{}, err
	}

	return status, nil
}

func (h *httpNotesAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if session := h.Session(); session != "" {
		req.SetCookie(&http.Cookie{Name: SessionCookieName, Value: session})
	}
	return req
}

func (h *httpNotesAdapter) beforeRequest(_ *resty.Client, req *resty.Request) error {
	id, ok := utils.GetRequestIDFromContext(req.Context())
	if !ok {
		id = h.ids.Generate()
	}
	req.SetHeader(headerRequestID, id)
	return nil
}

func (h *httpNotesAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookieName && cookie.Value != "" {
			h.SetSession(cookie.Value)
		}
	}

	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(headerRequestID)).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("keepno request")
	return nil
}

func decodeEntry(resp *resty.Response, op string) (models.Entry, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	var envelope models.EntryEnvelope
	if err := decode(resp, &envelope, op); err != nil {
		return models.Entry{}, err
	}
	if err := validationFromBody(resp.StatusCode(), envelope.Error); err != nil {
		return models.Entry{}, err
	}
	if envelope.Entry == nil {
		return models.Entry{}, fmt.Errorf("%w: %s: missing entry", ErrUnexpectedResponse, op)
	}

	return *envelope.Entry, nil
}

func decode(resp *resty.Response, v any, op string) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrTransport, op, err)
	}
	return nil
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
}

func pageOrFirst(page models.Cursor) models.Cursor {
	if page == "" {
		return models.FirstCursor
	}
	return page
}
