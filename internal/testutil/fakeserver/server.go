// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeserver is an in-memory keepno server for tests. It serves the
// same REST routes, pagination and error payloads as the real server and
// authenticates requests by the "session" cookie.
package fakeserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/keepno/models"
)

// Default page sizes of the keepno server.
const (
	DefaultNotesPerPage   = 5
	DefaultEntriesPerPage = 2
)

// Server messages.
const (
	MsgNoEntries       = "No entries."
	MsgNoteNotExist    = "Note does not exist."
	MsgEntryNotExist   = "Entry does not exist."
	MsgNoDataToAdd     = "No data to add."
	MsgMissingJSON     = "Missing JSON in request."
	MsgNoteNeedsTitle  = "Note must have title."
	MsgEntryNeedsBody  = "Entry must have content."
	sessionCookieName  = "session"
	loginPath          = "/accounts/login"
	pdfLocationPattern = "/media/notes/pdf/note_%d.pdf"
)

// Option configures a Server.
type Option func(*Server)

// WithSession requires every API request to carry the given session cookie.
// Requests without it are redirected to the login page.
func WithSession(cookie string) Option {
	return func(s *Server) { s.session = cookie }
}

// WithPageSizes overrides the notes and entries page sizes.
func WithPageSizes(notes, entries int) Option {
	return func(s *Server) {
		s.notesPerPage = notes
		s.entriesPerPage = entries
	}
}

// WithTaskProgress sets the progress values reported by export tasks before
// they succeed.
func WithTaskProgress(progress ...int) Option {
	return func(s *Server) { s.taskProgress = progress }
}

// WithFailingTasks makes every export task end in FAILURE.
func WithFailingTasks() Option {
	return func(s *Server) { s.failTasks = true }
}

type task struct {
	noteID models.ItemID
	polls  int
}

type injected struct {
	status int
	body   any
}

// Server is a running fake keepno server.
type Server struct {
	*httptest.Server

	mu             sync.Mutex
	session        string
	notesPerPage   int
	entriesPerPage int
	taskProgress   []int
	failTasks      bool
	nextID         int64
	notes          []models.Note
	entries        map[models.ItemID][]models.Entry
	tasks          map[string]*task
	failures       []injected
	hits           map[string]int
	requestIDs     []string
	now            time.Time
}

// New starts a Server. The caller must Close it.
func New(opts ...Option) *Server {
	s := &Server{
		notesPerPage:   DefaultNotesPerPage,
		entriesPerPage: DefaultEntriesPerPage,
		taskProgress:   []int{30},
		entries:        make(map[models.ItemID][]models.Entry),
		tasks:          make(map[string]*task),
		hits:           make(map[string]int),
		now:            time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.withRequestID)
	r.Use(s.count)
	r.Group(func(r chi.Router) {
		r.Use(s.requireSession, s.injectFailure)

		r.Get("/api/notes", s.listNotes)
		r.Post("/api/notes", s.createNote)
		r.Route("/api/notes/{note}", func(r chi.Router) {
			r.Get("/entries", s.listEntries)
			r.Post("/entries", s.createEntry)
			r.Put("/entries/{entry}", s.updateEntry)
			r.Delete("/entries/{entry}", s.deleteEntry)
			r.Get("/export/{format}", s.exportNote)
		})
		r.Get("/api/task/{task}", s.taskStatus)
	})
	r.Get(loginPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// AddNote stores a note and returns it. Later notes sort first.
func (s *Server) AddNote(title, description string) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNoteLocked(title, description)
}

// AddEntry stores an entry of a note and returns it. Later entries sort
// first.
func (s *Server) AddEntry(noteID models.ItemID, content string) models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addEntryLocked(noteID, content)
}

// Entries returns the stored entries of a note, newest first.
func (s *Server) Entries(noteID models.ItemID) []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries[noteID])
}

// FailNext makes the next API request answer with status and a JSON body.
// Calls queue up.
func (s *Server) FailNext(status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, injected{status: status, body: body})
}

// Hits returns how many requests reached the route pattern, such as
// "GET /api/task/{task}".
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

func (s *Server) tick() time.Time {
	s.now = s.now.Add(time.Minute)
	return s.now
}

func (s *Server) addNoteLocked(title, description string) models.Note {
	s.nextID++
	at := s.tick()
	note := models.Note{
		ID:          models.ItemID(s.nextID),
		Title:       title,
		Description: description,
		Created:     models.Timestamp{Time: at},
		Updated:     models.Timestamp{Time: at},
	}
	s.notes = slices.Insert(s.notes, 0, note)
	return note
}

func (s *Server) addEntryLocked(noteID models.ItemID, content string) models.Entry {
	s.nextID++
	at := s.tick()
	entry := models.Entry{
		ID:      models.ItemID(s.nextID),
		NoteID:  noteID,
		Content: content,
		Created: models.Timestamp{Time: at},
		Updated: models.Timestamp{Time: at},
	}
	s.entries[noteID] = slices.Insert(s.entries[noteID], 0, entry)
	s.touchNoteLocked(noteID, at)
	return entry
}

// touchNoteLocked moves a note to the head of the list.
func (s *Server) touchNoteLocked(noteID models.ItemID, at time.Time) {
	i := slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == noteID })
	if i < 0 {
		return
	}
	note := s.notes[i]
	note.Updated = models.Timestamp{Time: at}
	s.notes = slices.Delete(s.notes, i, i+1)
	s.notes = slices.Insert(s.notes, 0, note)
}

func (s *Server) findNoteLocked(r *http.Request) (models.ItemID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "note"), 10, 64)
	if err != nil {
		return 0, false
	}
	noteID := models.ItemID(id)
	return noteID, slices.ContainsFunc(s.notes, func(n models.Note) bool { return n.ID == noteID })
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		if pattern := chi.RouteContext(r.Context()).RoutePattern(); pattern != "" {
			s.mu.Lock()
			s.hits[r.Method+" "+pattern]++
			s.mu.Unlock()
		}
	})
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.session != "" {
			c, err := r.Cookie(sessionCookieName)
			if err != nil || c.Value != s.session {
				http.Redirect(w, r, loginPath+"?next="+r.URL.Path, http.StatusFound)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		if len(s.failures) == 0 {
			s.mu.Unlock()
			next.ServeHTTP(w, r)
			return
		}
		f := s.failures[0]
		s.failures = s.failures[1:]
		s.mu.Unlock()

		writeJSON(w, f.status, f.body)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"error": detail})
}

// paginate mirrors Flask-SQLAlchemy paginate(error_out=False).
func paginate[T any](items []T, r *http.Request, param string, perPage int) ([]T, bool, *int) {
	page, err := strconv.Atoi(r.URL.Query().Get(param))
	if err != nil || page < 1 {
		page = 1
	}
	start := min((page-1)*perPage, len(items))
	end := min(start+perPage, len(items))

	if page*perPage >= len(items) {
		return items[start:end], false, nil
	}
	next := page + 1
	return items[start:end], true, &next
}
