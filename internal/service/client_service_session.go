package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/keepno/internal/adapter"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/store"
	"github.com/MKhiriev/keepno/models"
)

type clientSessionService struct {
	state  store.StateRepository
	api    adapter.NotesAPI
	logger *logger.Logger
}

// NewClientSessionService returns a [ClientSessionService] that keeps its
// state in state and installs cookies on api.
func NewClientSessionService(state store.StateRepository, api adapter.NotesAPI, log *logger.Logger) ClientSessionService {
	return &clientSessionService{state: state, api: api, logger: log}
}

func (s *clientSessionService) Restore(ctx context.Context, configured string) error {
	if configured != "" {
		s.api.SetSession(configured)
		return s.Save(ctx)
	}

	stored, err := s.state.Get(ctx, store.StateKeySession)
	switch {
	case errors.Is(err, store.ErrStateNotFound):
		return ErrNoSession
	case err != nil:
		return fmt.Errorf("restore session: %w", err)
	}

	s.api.SetSession(stored)
	s.logger.Debug().Str("func", "clientSessionService.Restore").Msg("session restored from local store")
	return nil
}

func (s *clientSessionService) Save(ctx context.Context) error {
	cookie := s.api.Session()
	if cookie == "" {
		return nil
	}
	if err := s.state.Set(ctx, store.StateKeySession, cookie); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *clientSessionService) Forget(ctx context.Context) error {
	s.api.SetSession("")
	if err := s.state.Delete(ctx, store.StateKeySession); err != nil {
		return fmt.Errorf("forget session: %w", err)
	}
	return nil
}

func (s *clientSessionService) LastOpenedNote(ctx context.Context) (models.ItemID, bool) {
	raw, err := s.state.Get(ctx, store.StateKeyLastNote)
	if err != nil {
		if !errors.Is(err, store.ErrStateNotFound) {
			s.logger.Err(err).Str("func", "clientSessionService.LastOpenedNote").Msg("failed to read last opened note")
		}
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		s.logger.Warn().Str("func", "clientSessionService.LastOpenedNote").Str("value", raw).Msg("ignoring malformed last opened note")
		return 0, false
	}
	return models.ItemID(id), true
}

func (s *clientSessionService) RememberOpenedNote(ctx context.Context, id models.ItemID) error {
	if id <= 0 {
		return ErrInvalidNoteID
	}
	if err := s.state.Set(ctx, store.StateKeyLastNote, id.String()); err != nil {
		return fmt.Errorf("remember opened note: %w", err)
	}
	return nil
}
