package ports

import (
	"context"

	"herosheet/internal/domain"
)

// CharacterRepository holds the character collection. Characters returned
// by ListAll and FindByID point into the collection; mutating them mutates
// the stored record, which is written out on the next Persist.
type CharacterRepository interface {
	// Lifecycle
	LoadAll(ctx context.Context) error
	Persist(ctx context.Context) error

	// Queries
	ListAll() []*domain.Character
	FindByID(id int64) (*domain.Character, error)

	// Mutations
	Add(c *domain.Character) error
	Remove(id int64) error
}
