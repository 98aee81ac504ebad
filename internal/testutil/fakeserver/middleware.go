package fakeserver

import (
	"net/http"
	"slices"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// withRequestID echoes the client's request id, or a fresh one when the
// request has none, and records it.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		s.mu.Lock()
		s.requestIDs = append(s.requestIDs, id)
		s.mu.Unlock()

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// RequestIDs returns the request ids seen so far in arrival order.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requestIDs)
}
