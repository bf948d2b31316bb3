package commands

import (
	"context"
	"fmt"
	"strings"

	"herosheet/internal/application"
	"herosheet/internal/ports"
)

// Editable text fields of a character
const (
	FieldName               = "name"
	FieldProfession         = "profession"
	FieldAdvancedProfession = "advanced-profession"
)

// Fields returns the editable field names
func Fields() []string {
	return []string{FieldName, FieldProfession, FieldAdvancedProfession}
}

func normalizeField(field string) string {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "name":
		return FieldName
	case "profession":
		return FieldProfession
	case "advanced-profession", "advancedprofession", "advanced_profession":
		return FieldAdvancedProfession
	default:
		return ""
	}
}

// UpdateResult contains the result of an update operation
type UpdateResult struct {
	ID       int64
	Field    string
	OldValue string
	NewValue string
	Message  string
}

// UpdateCharacterCommand replaces a text field of a character. An empty
// value clears the field.
type UpdateCharacterCommand struct {
	repo  ports.CharacterRepository
	ID    string
	Field string
	Value string
}

// NewUpdateCharacterCommand creates a new UpdateCharacterCommand
func NewUpdateCharacterCommand(repo ports.CharacterRepository, id, field, value string) *UpdateCharacterCommand {
	return &UpdateCharacterCommand{
		repo:  repo,
		ID:    id,
		Field: field,
		Value: value,
	}
}

// Validate checks if the update operation is valid
func (c *UpdateCharacterCommand) Validate() error {
	if err := validateID(c.ID); err != nil {
		return err
	}
	if normalizeField(c.Field) == "" {
		return &application.ValidationError{
			Field:   "field",
			Message: fmt.Sprintf("unknown field %q (expected one of %s)", c.Field, strings.Join(Fields(), ", ")),
		}
	}
	return nil
}

// Execute runs the update command
func (c *UpdateCharacterCommand) Execute(ctx context.Context) (*UpdateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ch, err := findCharacter(c.repo, c.ID)
	if err != nil {
		return nil, err
	}

	field := normalizeField(c.Field)
	value := strings.TrimSpace(c.Value)
	var target *string
	switch field {
	case FieldName:
		target = &ch.Name
	case FieldProfession:
		target = &ch.Profession
	case FieldAdvancedProfession:
		target = &ch.AdvancedProfession
	}

	old := *target
	if old == value {
		return &UpdateResult{
			ID:       ch.ID,
			Field:    field,
			OldValue: old,
			NewValue: value,
			Message:  fmt.Sprintf("No change: %s is already %q", field, value),
		}, nil
	}

	*target = value
	if err := persist(ctx, c.repo); err != nil {
		return nil, err
	}

	return &UpdateResult{
		ID:       ch.ID,
		Field:    field,
		OldValue: old,
		NewValue: value,
		Message:  fmt.Sprintf("Updated %s of %d: %q -> %q", field, ch.ID, old, value),
	}, nil
}
