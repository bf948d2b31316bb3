// Package roster keeps the character collection in memory and persists it
// as a single JSON array under one key of a KeyValueStore.
package roster

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"herosheet/internal/application"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// DefaultKey is the storage key holding the character array
const DefaultKey = "characters"

// Repository implements ports.CharacterRepository
type Repository struct {
	store  ports.KeyValueStore
	key    string
	logger *zap.Logger
	chars  []*domain.Character
}

// Ensure Repository implements CharacterRepository
var _ ports.CharacterRepository = (*Repository)(nil)

// NewRepository creates a repository over store. An empty key uses DefaultKey.
func NewRepository(store ports.KeyValueStore, key string, logger *zap.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{
		store:  store,
		key:    key,
		logger: logger.With(zap.String("key", key)),
		chars:  []*domain.Character{},
	}
}

// LoadAll replaces the in-memory collection with the stored one. Each
// record is normalized and every repair is logged. When the blob cannot be
// read or decoded the collection is left empty and a StorageError returned.
func (r *Repository) LoadAll(ctx context.Context) error {
	r.chars = []*domain.Character{}

	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		return &application.StorageError{Op: "load", Err: err}
	}

	records, err := decodeCollection(data)
	if err != nil {
		return &application.StorageError{Op: "decode", Err: err}
	}

	seen := make(map[int64]bool, len(records))
	for _, rec := range records {
		c, repairs := domain.NormalizeCharacter(rec.raw())
		for _, rp := range repairs {
			r.logger.Info("repaired stored character",
				zap.Int64("id", c.ID),
				zap.String("field", rp.Field),
				zap.String("change", rp.Message),
			)
		}
		if seen[c.ID] {
			r.logger.Warn("skipping character with duplicate id", zap.Int64("id", c.ID))
			continue
		}
		seen[c.ID] = true
		r.chars = append(r.chars, c)
	}

	r.logger.Debug("loaded characters", zap.Int("count", len(r.chars)))
	return nil
}

// Persist writes the whole collection under the key
func (r *Repository) Persist(ctx context.Context) error {
	data, err := encodeCollection(r.chars)
	if err != nil {
		return &application.StorageError{Op: "encode", Err: err}
	}
	if err := r.store.Put(ctx, r.key, data); err != nil {
		return &application.StorageError{Op: "save", Err: err}
	}
	return nil
}

// ListAll returns the collection in insertion order. The slice is a copy;
// the characters are shared.
func (r *Repository) ListAll() []*domain.Character {
	return slices.Clone(r.chars)
}

// FindByID returns the character with id
func (r *Repository) FindByID(id int64) (*domain.Character, error) {
	for _, c := range r.chars {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, &application.NotFoundError{ID: id}
}

// Add appends a character. Ids must be unique.
func (r *Repository) Add(c *domain.Character) error {
	if c == nil {
		return &application.ValidationError{Field: "character", Message: "character is required"}
	}
	if _, err := r.FindByID(c.ID); err == nil {
		return fmt.Errorf("%w: %d", application.ErrDuplicateID, c.ID)
	}
	r.chars = append(r.chars, c)
	return nil
}

// Remove deletes the character with id
func (r *Repository) Remove(id int64) error {
	i := slices.IndexFunc(r.chars, func(c *domain.Character) bool { return c.ID == id })
	if i < 0 {
		return &application.NotFoundError{ID: id}
	}
	r.chars = slices.Delete(r.chars, i, i+1)
	return nil
}
