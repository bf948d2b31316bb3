package commands

import (
	"context"
	"fmt"

	"herosheet/internal/application"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// SetGradeResult contains the result of setting a grade
type SetGradeResult struct {
	Character *domain.Character
	Set       domain.StatSet
	Category  domain.Category
	Old       domain.Grade
	New       domain.Grade
	Message   string
}

// SetGradeCommand assigns a base grade to one category
type SetGradeCommand struct {
	repo     ports.CharacterRepository
	ID       string
	Set      string
	Category string
	Grade    string
}

// NewSetGradeCommand creates a new SetGradeCommand
func NewSetGradeCommand(repo ports.CharacterRepository, id, set, category, grade string) *SetGradeCommand {
	return &SetGradeCommand{
		repo:     repo,
		ID:       id,
		Set:      set,
		Category: category,
		Grade:    grade,
	}
}

// Validate checks if the grade operation is valid
func (c *SetGradeCommand) Validate() error {
	if err := validateID(c.ID); err != nil {
		return err
	}
	if _, _, err := validateSetCategory(c.Set, c.Category); err != nil {
		return err
	}
	if _, err := domain.ParseGrade(c.Grade); err != nil {
		return &application.ValidationError{Field: "grade", Message: err.Error()}
	}
	return nil
}

// Execute runs the grade command
func (c *SetGradeCommand) Execute(ctx context.Context) (*SetGradeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ch, err := findCharacter(c.repo, c.ID)
	if err != nil {
		return nil, err
	}
	set, cat, _ := validateSetCategory(c.Set, c.Category)
	g, _ := domain.ParseGrade(c.Grade)

	old := ch.StatBlock(set).Ordered(set)[indexOf(set, cat)]
	if err := ch.SetGrade(set, cat, g); err != nil {
		return nil, err
	}
	if err := persist(ctx, c.repo); err != nil {
		return nil, err
	}

	return &SetGradeResult{
		Character: ch,
		Set:       set,
		Category:  cat,
		Old:       old,
		New:       g,
		Message:   fmt.Sprintf("%s %s: %s -> %s", set.Title(), cat, old, g),
	}, nil
}

func indexOf(set domain.StatSet, cat domain.Category) int {
	for i, c := range set.Categories() {
		if c == cat {
			return i
		}
	}
	return 0
}
