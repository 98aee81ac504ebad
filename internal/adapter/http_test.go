// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/utils"
	"github.com/MKhiriev/keepno/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpNotesAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpNotesAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPNotesAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpNotesAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:5000", want: "http://localhost:5000"},
		{name: "full url", raw: "https://notes.example.com/", want: "https://notes.example.com"},
		{name: "surrounding spaces", raw: "  127.0.0.1:80 ", want: "http://127.0.0.1:80"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPNotesAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPNotesAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestResolveURL(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:5000")

	assert.Equal(t, "http://localhost:5000/media/notes/pdf/x.pdf", a.ResolveURL("/media/notes/pdf/x.pdf"))
	assert.Equal(t, "https://cdn.example.com/x.pdf", a.ResolveURL("https://cdn.example.com/x.pdf"))
	assert.Empty(t, a.ResolveURL(""))
}

// ── session & request id ─────────────────────────────────────────────────────

func TestSetSession_AcceptsBareAndNamedValue(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:5000")

	a.SetSession("abc")
	assert.Equal(t, "abc", a.Session())

	a.SetSession(" session=def ")
	assert.Equal(t, "def", a.Session())
}

func TestRequest_SendsSessionCookieAndRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if assert.NoError(t, err) {
			assert.Equal(t, "abc", cookie.Value)
		}
		assert.Equal(t, "req-42", r.Header.Get(headerRequestID))
		writeJSON(t, w, http.StatusOK, `{"notes": [], "has_next": false, "next_num": null}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSession("abc")

	_, err := a.ListNotes(utils.WithRequestID(context.Background(), "req-42"), models.FirstCursor)
	require.NoError(t, err)
}

func TestRequest_GeneratesRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get(headerRequestID))
		writeJSON(t, w, http.StatusOK, `{"notes": [], "has_next": false, "next_num": null}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListNotes(context.Background(), "")
	require.NoError(t, err)
}

func TestResponse_RefreshesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "refreshed"})
		writeJSON(t, w, http.StatusOK, `{"notes": [], "has_next": false, "next_num": null}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSession("old")

	_, err := a.ListNotes(context.Background(), models.FirstCursor)
	require.NoError(t, err)
	assert.Equal(t, "refreshed", a.Session())
}

// ── ListNotes ────────────────────────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("npage"))
		writeJSON(t, w, http.StatusOK, `{
			"notes": [
				{"id": 7, "title": "Trip", "description": "Alps", "created": "2021-03-01T10:00:00", "updated": "2021-03-02T11:30:00"}
			],
			"has_next": true,
			"next_num": 3
		}`)
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).ListNotes(context.Background(), "2")

	require.NoError(t, err)
	require.Len(t, page.Notes, 1)
	assert.Equal(t, models.ItemID(7), page.Notes[0].ID)
	assert.Equal(t, "Trip", page.Notes[0].Title)
	assert.Equal(t, 2021, page.Notes[0].Updated.Year())
	assert.True(t, page.HasNext)
	require.NotNil(t, page.NextNum)
	assert.Equal(t, 3, *page.NextNum)
}

func TestListNotes_LoginRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/auth/login?next=%2Fapi%2Fnotes", http.StatusFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListNotes(context.Background(), models.FirstCursor)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListNotes_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ListNotes(context.Background(), models.FirstCursor)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestListNotes_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>login</html>"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListNotes(context.Background(), models.FirstCursor)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestListNotes_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListNotes(context.Background(), models.FirstCursor)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	var valErr *models.ValidationError
	assert.False(t, errors.As(err, &valErr))
}

// ── CreateNote ───────────────────────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var draft models.NoteDraft
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Trip", draft.Title)

		writeJSON(t, w, http.StatusOK, `{"note": {"id": 11, "title": "Trip", "description": ""}}`)
	}))
	defer srv.Close()

	note, err := newTestAdapter(t, srv.URL).CreateNote(context.Background(), models.NoteDraft{Title: "Trip"})

	require.NoError(t, err)
	assert.Equal(t, models.ItemID(11), note.ID)
}

func TestCreateNote_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, `{"error": {"title": ["Title must be unique."]}}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateNote(context.Background(), models.NoteDraft{Title: "Trip"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var valErr *models.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, http.StatusBadRequest, valErr.StatusCode)
	require.Len(t, valErr.Detail.Fields, 1)
	assert.Equal(t, "title", valErr.Detail.Fields[0].Field)
	assert.Equal(t, []string{"Title must be unique."}, valErr.Detail.Fields[0].Messages)
}

func TestCreateNote_MissingNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateNote(context.Background(), models.NoteDraft{Title: "Trip"})

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

// ── entries ──────────────────────────────────────────────────────────────────

func TestListEntries_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/7/entries", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("epage"))
		writeJSON(t, w, http.StatusOK, `{
			"entries": [{"id": 3, "note_id": 7, "content": "<p>day one</p>", "created": "2021-03-01T10:00:00.123456"}],
			"has_next": false,
			"next_num": null
		}`)
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).ListEntries(context.Background(), 7, models.FirstCursor)

	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "<p>day one</p>", page.Entries[0].Content)
	assert.False(t, page.HasNext)
	assert.Nil(t, page.NextNum)
}

func TestListEntries_NoEntriesIsEmptyFinalPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"error": "No entries."}`)
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).ListEntries(context.Background(), 7, models.FirstCursor)

	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.False(t, page.HasNext)
}

func TestListEntries_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, `{"error": "Note does not exist."}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListEntries(context.Background(), 99, models.FirstCursor)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	var valErr *models.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Note does not exist.", valErr.Detail.Message)
}

func TestCreateEntry_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes/7/entries", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"entry": {"id": 5, "note_id": 7, "content": "hi"}}`)
	}))
	defer srv.Close()

	entry, err := newTestAdapter(t, srv.URL).CreateEntry(context.Background(), 7, models.EntryDraft{Content: "hi"})

	require.NoError(t, err)
	assert.Equal(t, models.ItemID(5), entry.ID)
	assert.Equal(t, models.ItemID(7), entry.NoteID)
}

func TestUpdateEntry_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notes/7/entries/5", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"entry": {"id": 5, "note_id": 7, "content": "edited"}}`)
	}))
	defer srv.Close()

	entry, err := newTestAdapter(t, srv.URL).UpdateEntry(context.Background(), 7, 5, models.EntryDraft{Content: "edited"})

	require.NoError(t, err)
	assert.Equal(t, "edited", entry.Content)
}

func TestDeleteEntry_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(t, w, http.StatusBadRequest, `{"error": {"content": ["Content cannot be empty"]}}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DeleteEntry(context.Background(), 7, 5)

	var valErr *models.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Content cannot be empty", valErr.Detail.Fields[0].Messages[0])
}

func TestDeleteEntry_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/7/entries/5", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"entry": {"id": 5, "note_id": 7, "content": "gone"}}`)
	}))
	defer srv.Close()

	entry, err := newTestAdapter(t, srv.URL).DeleteEntry(context.Background(), 7, 5)

	require.NoError(t, err)
	assert.Equal(t, models.ItemID(5), entry.ID)
}

// ── export & task status ─────────────────────────────────────────────────────

func TestExportNote_Started(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/7/export/pdf", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"report_status": "started", "task_id": "42"}`)
	}))
	defer srv.Close()

	handle, err := newTestAdapter(t, srv.URL).ExportNote(context.Background(), 7, "pdf")

	require.NoError(t, err)
	assert.Equal(t, models.TaskHandle{TaskID: "42", StatusURL: "/api/task/42"}, handle)
}

func TestExportNote_Unexpected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"report_status": "queued"}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ExportNote(context.Background(), 7, "pdf")

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestExportNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, `{"error": "Note does not exist."}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ExportNote(context.Background(), 7, "pdf")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/task/42", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"progress": 100, "status": "SUCCESS", "result": "/files/42.pdf"}`)
	}))
	defer srv.Close()

	status, err := newTestAdapter(t, srv.URL).TaskStatus(context.Background(), models.TaskHandle{TaskID: "42"})

	require.NoError(t, err)
	assert.Equal(t, models.TaskStatus{State: models.TaskSuccess, Progress: 100, Result: "/files/42.pdf"}, status)
}

func TestTaskStatus_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"progress": 0, "status": "PROGRESS"}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).TaskStatus(ctx, models.TaskHandle{TaskID: "42", StatusURL: "/api/task/42"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}
