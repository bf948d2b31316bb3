package commands

import (
	"context"
	"fmt"

	"herosheet/internal/application"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// validateID checks that id is present and numeric
func validateID(id string) error {
	if err := application.ValidateRequired("id", id); err != nil {
		return err
	}
	_, err := application.ParseID(id)
	return err
}

// findCharacter resolves a textual id to the stored character
func findCharacter(repo ports.CharacterRepository, id string) (*domain.Character, error) {
	n, err := application.ParseID(id)
	if err != nil {
		return nil, err
	}
	return repo.FindByID(n)
}

// persist saves the collection after a mutation
func persist(ctx context.Context, repo ports.CharacterRepository) error {
	if err := repo.Persist(ctx); err != nil {
		return fmt.Errorf("failed to save characters: %w", err)
	}
	return nil
}

// validateSetCategory parses a stat set name and a category label within it
func validateSetCategory(set, category string) (domain.StatSet, domain.Category, error) {
	s, err := domain.ParseStatSet(set)
	if err != nil {
		return 0, "", &application.ValidationError{Field: "set", Message: err.Error()}
	}
	c, err := domain.ParseCategory(s, category)
	if err != nil {
		return 0, "", &application.ValidationError{Field: "category", Message: err.Error()}
	}
	return s, c, nil
}

// validateSource parses a source kind. Index bounds are checked against
// the character at execution time.
func validateSource(kind string, index int) (domain.SourceKind, error) {
	k, err := domain.ParseSourceKind(kind)
	if err != nil {
		return 0, &application.ValidationError{Field: "kind", Message: err.Error()}
	}
	if index < 0 {
		return 0, &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("index must not be negative, got %d", index),
		}
	}
	return k, nil
}

// sourceCount returns how many items or notes a character has
func sourceCount(c *domain.Character, kind domain.SourceKind) int {
	if kind == domain.SourceNote {
		return len(c.Notes)
	}
	return len(c.Items)
}
