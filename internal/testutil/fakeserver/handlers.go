package fakeserver

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/keepno/models"
)

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	notes, hasNext, next := paginate(slices.Clone(s.notes), r, "npage", s.notesPerPage)
	s.mu.Unlock()

	if notes == nil {
		notes = []models.Note{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"notes": notes, "has_next": hasNext, "next_num": next})
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var draft models.NoteDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	if draft.Title == "" {
		writeError(w, http.StatusBadRequest, map[string][]string{"title": {MsgNoteNeedsTitle}})
		return
	}

	s.mu.Lock()
	note := s.addNoteLocked(draft.Title, draft.Description)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"note": note})
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	noteID, _ := s.findNoteLocked(r)
	all := slices.Clone(s.entries[noteID])
	s.mu.Unlock()

	if len(all) == 0 {
		writeError(w, http.StatusOK, MsgNoEntries)
		return
	}

	entries, hasNext, next := paginate(all, r, "epage", s.entriesPerPage)
	if entries == nil {
		entries = []models.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries, "has_next": hasNext, "next_num": next})
}

func (s *Server) createEntry(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	noteID, ok := s.findNoteLocked(r)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, MsgNoteNotExist)
		return
	}

	var draft models.EntryDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	if draft.Content == "" {
		writeError(w, http.StatusBadRequest, map[string][]string{"content": {MsgEntryNeedsBody}})
		return
	}

	s.mu.Lock()
	entry := s.addEntryLocked(noteID, draft.Content)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"entry": entry})
}

func (s *Server) updateEntry(w http.ResponseWriter, r *http.Request) {
	var draft models.EntryDraft
	s.mu.Lock()
	noteID, ok := s.findNoteLocked(r)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, MsgNoteNotExist)
		return
	}
	if !decodeBody(w, r, &draft) {
		return
	}
	if draft.Content == "" {
		writeError(w, http.StatusBadRequest, map[string][]string{"content": {MsgEntryNeedsBody}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entries[noteID]
	i := indexOfEntry(entries, chi.URLParam(r, "entry"))
	if i < 0 {
		writeError(w, http.StatusNotFound, MsgEntryNotExist)
		return
	}
	entries[i].Content = draft.Content
	entries[i].Updated = models.Timestamp{Time: s.tick()}
	s.touchNoteLocked(noteID, entries[i].Updated.Time)

	writeJSON(w, http.StatusOK, map[string]any{"entry": entries[i]})
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	noteID, ok := s.findNoteLocked(r)
	if !ok {
		writeError(w, http.StatusNotFound, MsgNoteNotExist)
		return
	}
	entries := s.entries[noteID]
	i := indexOfEntry(entries, chi.URLParam(r, "entry"))
	if i < 0 {
		writeError(w, http.StatusNotFound, MsgEntryNotExist)
		return
	}
	removed := entries[i]
	s.entries[noteID] = slices.Delete(entries, i, i+1)

	writeJSON(w, http.StatusOK, map[string]any{"entry": removed})
}

func (s *Server) exportNote(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	noteID, ok := s.findNoteLocked(r)
	if !ok {
		writeError(w, http.StatusNotFound, MsgNoteNotExist)
		return
	}
	if chi.URLParam(r, "format") != "pdf" {
		http.NotFound(w, r)
		return
	}

	id := "task-" + strconv.Itoa(len(s.tasks)+1)
	s.tasks[id] = &task{noteID: noteID}
	writeJSON(w, http.StatusOK, map[string]any{"report_status": models.ExportStarted, "task_id": id})
}

// taskStatus reports the configured progress values, one per poll, then the
// final state. Unknown tasks stay pending forever, which the server reports
// as PROGRESS with zero progress.
func (s *Server) taskStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[chi.URLParam(r, "task")]
	if !ok {
		writeJSON(w, http.StatusOK, models.TaskStatus{State: models.TaskProgress})
		return
	}

	t.polls++
	if t.polls <= len(s.taskProgress) {
		writeJSON(w, http.StatusOK, models.TaskStatus{State: models.TaskProgress, Progress: s.taskProgress[t.polls-1]})
		return
	}
	if s.failTasks {
		writeJSON(w, http.StatusOK, models.TaskStatus{State: models.TaskFailure})
		return
	}
	writeJSON(w, http.StatusOK, models.TaskStatus{
		State:    models.TaskSuccess,
		Progress: 100,
		Result:   fmt.Sprintf(pdfLocationPattern, t.noteID),
	})
}

func indexOfEntry(entries []models.Entry, raw string) int {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return -1
	}
	return slices.IndexFunc(entries, func(e models.Entry) bool { return e.ID == models.ItemID(id) })
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != "application/json" {
		writeError(w, http.StatusBadRequest, MsgMissingJSON)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, MsgNoDataToAdd)
		return false
	}
	return true
}
