package commands

import (
	"context"

	"herosheet/internal/application"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// ShowProfileResult holds a character and its computed stat profiles
type ShowProfileResult struct {
	Character *domain.Character
	Profiles  []domain.StatProfile
}

// ShowProfileCommand computes the heroic and meat profiles of a character
type ShowProfileCommand struct {
	repo ports.CharacterRepository
	ID   string
}

// NewShowProfileCommand creates a new ShowProfileCommand
func NewShowProfileCommand(repo ports.CharacterRepository, id string) *ShowProfileCommand {
	return &ShowProfileCommand{repo: repo, ID: id}
}

// Validate checks if the show operation is valid
func (c *ShowProfileCommand) Validate() error {
	return validateID(c.ID)
}

// Execute runs the show command
func (c *ShowProfileCommand) Execute(ctx context.Context) (*ShowProfileResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ch, err := findCharacter(c.repo, c.ID)
	if err != nil {
		return nil, err
	}
	return &ShowProfileResult{
		Character: ch,
		Profiles:  application.Profiles(ch),
	}, nil
}
