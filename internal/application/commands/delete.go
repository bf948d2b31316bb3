package commands

import (
	"context"
	"fmt"

	"herosheet/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID int64
	Message   string
}

// DeleteCharacterCommand removes a character by ID
type DeleteCharacterCommand struct {
	repo ports.CharacterRepository
	ID   string
}

// NewDeleteCharacterCommand creates a new DeleteCharacterCommand
func NewDeleteCharacterCommand(repo ports.CharacterRepository, id string) *DeleteCharacterCommand {
	return &DeleteCharacterCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCharacterCommand) Validate() error {
	return validateID(c.ID)
}

// Execute runs the delete command
func (c *DeleteCharacterCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ch, err := findCharacter(c.repo, c.ID)
	if err != nil {
		return nil, err
	}
	name := ch.DisplayName()

	if err := c.repo.Remove(ch.ID); err != nil {
		return nil, fmt.Errorf("failed to delete %d: %w", ch.ID, err)
	}
	if err := persist(ctx, c.repo); err != nil {
		return nil, err
	}

	return &DeleteResult{
		DeletedID: ch.ID,
		Message:   fmt.Sprintf("Deleted %d %s", ch.ID, name),
	}, nil
}
