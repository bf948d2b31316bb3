package commands

import (
	"context"

	"herosheet/internal/application"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// ListCharactersCommand lists the collection in a chosen order
type ListCharactersCommand struct {
	repo    ports.CharacterRepository
	SortKey string
	Locale  string
}

// NewListCharactersCommand creates a new ListCharactersCommand
func NewListCharactersCommand(repo ports.CharacterRepository, sortKey, locale string) *ListCharactersCommand {
	return &ListCharactersCommand{
		repo:    repo,
		SortKey: sortKey,
		Locale:  locale,
	}
}

// Execute runs the list command
func (c *ListCharactersCommand) Execute(ctx context.Context) ([]*domain.Character, error) {
	key := application.ParseSortKey(c.SortKey)
	return application.SortCharacters(c.repo.ListAll(), key, c.Locale), nil
}
