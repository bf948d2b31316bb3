package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// Session is the editing controller. It owns the character collection and
// the single "current" character, which always points into the collection.
type Session struct {
	repo   ports.CharacterRepository
	logger *zap.Logger
	now    func() time.Time

	current   *domain.Character
	dirty     bool
	lastSaved time.Time
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithClock overrides the clock used for ids and save times
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession creates a session over repo
func NewSession(repo ports.CharacterRepository, logger *zap.Logger, opts ...SessionOption) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fills the collection from storage. A storage failure leaves an
// empty collection; the error is returned so the caller can warn.
func (s *Session) Load(ctx context.Context) error {
	s.current = nil
	s.dirty = false
	if err := s.repo.LoadAll(ctx); err != nil {
		s.logger.Warn("starting with an empty collection", zap.Error(err))
		return err
	}
	s.logger.Debug("collection loaded", zap.Int("characters", len(s.repo.ListAll())))
	return nil
}

// Characters returns the collection ordered by key
func (s *Session) Characters(key SortKey, locale string) []*domain.Character {
	return SortCharacters(s.repo.ListAll(), key, locale)
}

// Current returns the character being edited, or nil
func (s *Session) Current() *domain.Character {
	return s.current
}

// Dirty reports whether there are edits not yet persisted
func (s *Session) Dirty() bool {
	return s.dirty
}

// LastSaved returns the time of the last successful flush
func (s *Session) LastSaved() time.Time {
	return s.lastSaved
}

// Select makes the character with id current. Pending edits of the
// previous character are flushed first. An unknown id leaves the session
// unchanged and returns ErrNotFound. A failed flush does not prevent the
// switch; the edits stay pending and the storage error is returned.
func (s *Session) Select(ctx context.Context, id int64) error {
	if s.current != nil && s.current.ID == id {
		return nil
	}
	next, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	flushErr := s.Flush(ctx)
	s.current = next
	return flushErr
}

// Deselect flushes pending edits and clears the current character
func (s *Session) Deselect(ctx context.Context) error {
	err := s.Flush(ctx)
	s.current = nil
	return err
}

// Create adds a new character, makes it current and persists the collection
func (s *Session) Create(ctx context.Context) (*domain.Character, error) {
	if err := s.Flush(ctx); err != nil {
		s.logger.Warn("flush before create failed", zap.Error(err))
	}

	taken := make([]int64, 0, len(s.repo.ListAll()))
	for _, c := range s.repo.ListAll() {
		taken = append(taken, c.ID)
	}
	c := domain.NewCharacter(domain.NextCharacterID(s.now(), taken))
	if err := s.repo.Add(c); err != nil {
		return nil, err
	}

	s.current = c
	s.dirty = true
	s.logger.Info("character created", zap.Int64("id", c.ID))
	return c, s.Flush(ctx)
}

// Edit applies fn to the current character in place and marks the session
// dirty. fn must leave the character unchanged when it returns an error.
func (s *Session) Edit(fn func(c *domain.Character) error) error {
	if s.current == nil {
		return ErrNoSelection
	}
	if err := fn(s.current); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// Delete removes a character. When it is the current one the selection is
// cleared so nothing refers to the removed id.
func (s *Session) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Remove(id); err != nil {
		return err
	}
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.dirty = true
	s.logger.Info("character deleted", zap.Int64("id", id))
	return s.Flush(ctx)
}

// Flush persists the collection when there are pending edits
func (s *Session) Flush(ctx context.Context) error {
	if !s.dirty {
		return nil
	}
	if err := s.repo.Persist(ctx); err != nil {
		var storageErr *StorageError
		if !errors.As(err, &storageErr) {
			err = &StorageError{Op: "save", Err: err}
		}
		s.logger.Warn("persist failed", zap.Error(err))
		return err
	}
	s.dirty = false
	s.lastSaved = s.now()
	s.logger.Debug("collection persisted")
	return nil
}
