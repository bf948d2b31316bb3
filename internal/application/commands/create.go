package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"herosheet/internal/application"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// CreateCharacterResult contains the result of creating a character
type CreateCharacterResult struct {
	Character *domain.Character
	Message   string
}

// CreateCharacterCommand adds a new character with every stat at F
type CreateCharacterCommand struct {
	repo               ports.CharacterRepository
	clock              func() time.Time
	Name               string
	Profession         string
	AdvancedProfession string
}

// NewCreateCharacterCommand creates a new CreateCharacterCommand. A nil
// clock uses time.Now.
func NewCreateCharacterCommand(repo ports.CharacterRepository, name, profession, advancedProfession string, clock func() time.Time) *CreateCharacterCommand {
	if clock == nil {
		clock = time.Now
	}
	return &CreateCharacterCommand{
		repo:               repo,
		clock:              clock,
		Name:               name,
		Profession:         profession,
		AdvancedProfession: advancedProfession,
	}
}

// Validate checks if the create operation is valid
func (c *CreateCharacterCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the create command
func (c *CreateCharacterCommand) Execute(ctx context.Context) (*CreateCharacterResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	existing := c.repo.ListAll()
	taken := make([]int64, 0, len(existing))
	for _, ch := range existing {
		taken = append(taken, ch.ID)
	}

	ch := domain.NewCharacter(domain.NextCharacterID(c.clock(), taken))
	ch.Name = strings.TrimSpace(c.Name)
	ch.Profession = strings.TrimSpace(c.Profession)
	ch.AdvancedProfession = strings.TrimSpace(c.AdvancedProfession)

	if err := c.repo.Add(ch); err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	if err := persist(ctx, c.repo); err != nil {
		return nil, err
	}

	return &CreateCharacterResult{
		Character: ch,
		Message:   fmt.Sprintf("Created character: %d %s", ch.ID, ch.DisplayName()),
	}, nil
}
