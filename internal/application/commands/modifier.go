package commands

import (
	"context"
	"fmt"

	"herosheet/internal/application"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// ModifierResult contains the result of a modifier operation
type ModifierResult struct {
	Character *domain.Character
	Message   string
}

// AddModifierCommand attaches a modifier to an item or note. A second
// modifier for the same category and set is rejected and nothing changes.
type AddModifierCommand struct {
	repo     ports.CharacterRepository
	ID       string
	Kind     string
	Index    int
	Set      string
	Category string
	Value    int
}

// NewAddModifierCommand creates a new AddModifierCommand
func NewAddModifierCommand(repo ports.CharacterRepository, id, kind string, index int, set, category string, value int) *AddModifierCommand {
	return &AddModifierCommand{
		repo:     repo,
		ID:       id,
		Kind:     kind,
		Index:    index,
		Set:      set,
		Category: category,
		Value:    value,
	}
}

// Validate checks if the add modifier operation is valid
func (c *AddModifierCommand) Validate() error {
	if err := validateID(c.ID); err != nil {
		return err
	}
	if _, err := validateSource(c.Kind, c.Index); err != nil {
		return err
	}
	if _, _, err := validateSetCategory(c.Set, c.Category); err != nil {
		return err
	}
	if c.Value < domain.MinModifier || c.Value > domain.MaxModifier {
		return &application.ValidationError{
			Field:   "modifier",
			Message: fmt.Sprintf("modifier must be between %d and %d, got %d", domain.MinModifier, domain.MaxModifier, c.Value),
		}
	}
	return nil
}

// Execute runs the add modifier command
func (c *AddModifierCommand) Execute(ctx context.Context) (*ModifierResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ch, src, err := resolveSource(c.repo, c.ID, c.Kind, c.Index)
	if err != nil {
		return nil, err
	}
	set, cat, _ := validateSetCategory(c.Set, c.Category)

	if err := src.AddModifier(set, cat, c.Value); err != nil {
		return nil, err
	}
	if err := persist(ctx, c.repo); err != nil {
		return nil, err
	}

	return &ModifierResult{
		Character: ch,
		Message:   fmt.Sprintf("Added %s modifier %+d to %s", set, c.Value, cat),
	}, nil
}

// RemoveModifierCommand detaches a modifier from an item or note
type RemoveModifierCommand struct {
	repo     ports.CharacterRepository
	ID       string
	Kind     string
	Index    int
	Set      string
	Category string
}

// NewRemoveModifierCommand creates a new RemoveModifierCommand
func NewRemoveModifierCommand(repo ports.CharacterRepository, id, kind string, index int, set, category string) *RemoveModifierCommand {
	return &RemoveModifierCommand{
		repo:     repo,
		ID:       id,
		Kind:     kind,
		Index:    index,
		Set:      set,
		Category: category,
	}
}

// Validate checks if the remove modifier operation is valid
func (c *RemoveModifierCommand) Validate() error {
	if err := validateID(c.ID); err != nil {
		return err
	}
	if _, err := validateSource(c.Kind, c.Index); err != nil {
		return err
	}
	_, _, err := validateSetCategory(c.Set, c.Category)
	return err
}

// Execute runs the remove modifier command
func (c *RemoveModifierCommand) Execute(ctx context.Context) (*ModifierResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ch, src, err := resolveSource(c.repo, c.ID, c.Kind, c.Index)
	if err != nil {
		return nil, err
	}
	set, cat, _ := validateSetCategory(c.Set, c.Category)

	if !src.RemoveModifier(set, cat) {
		return nil, &application.ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("no %s modifier for %s", set, cat),
		}
	}
	if err := persist(ctx, c.repo); err != nil {
		return nil, err
	}

	return &ModifierResult{
		Character: ch,
		Message:   fmt.Sprintf("Removed %s modifier from %s", set, cat),
	}, nil
}

func resolveSource(repo ports.CharacterRepository, id, kind string, index int) (*domain.Character, *domain.ModifierSet, error) {
	ch, err := findCharacter(repo, id)
	if err != nil {
		return nil, nil, err
	}
	k, _ := validateSource(kind, index)
	if err := application.ValidateIndex("index", index, sourceCount(ch, k)); err != nil {
		return nil, nil, err
	}
	src, err := ch.Source(k, index)
	if err != nil {
		return nil, nil, err
	}
	return ch, src, nil
}
