package commands

import (
	"context"
	"fmt"
	"strings"

	"herosheet/internal/application"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// SourceResult contains the result of an item or note operation
type SourceResult struct {
	Character *domain.Character
	Kind      domain.SourceKind
	Index     int
	Message   string
}

// AddItemCommand attaches a magical item to a character
type AddItemCommand struct {
	repo        ports.CharacterRepository
	ID          string
	Name        string
	Description string
}

// NewAddItemCommand creates a new AddItemCommand
func NewAddItemCommand(repo ports.CharacterRepository, id, name, description string) *AddItemCommand {
	return &AddItemCommand{
		repo:        repo,
		ID:          id,
		Name:        name,
		Description: description,
	}
}

// Validate checks if the add item operation is valid
func (c *AddItemCommand) Validate() error {
	if err := validateID(c.ID); err != nil {
		return err
	}
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the add item command
func (c *AddItemCommand) Execute(ctx context.Context) (*SourceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ch, err := findCharacter(c.repo, c.ID)
	if err != nil {
		return nil, err
	}
	ch.Items = append(ch.Items, domain.NewItem(strings.TrimSpace(c.Name), c.Description))
	if err := persist(ctx, c.repo); err != nil {
		return nil, err
	}

	index := len(ch.Items) - 1
	return &SourceResult{
		Character: ch,
		Kind:      domain.SourceItem,
		Index:     index,
		Message:   fmt.Sprintf("Added item %d: %s", index, ch.Items[index].Name),
	}, nil
}

// AddNoteCommand attaches a note to a character
type AddNoteCommand struct {
	repo    ports.CharacterRepository
	ID      string
	Title   string
	Content string
}

// NewAddNoteCommand creates a new AddNoteCommand
func NewAddNoteCommand(repo ports.CharacterRepository, id, title, content string) *AddNoteCommand {
	return &AddNoteCommand{
		repo:    repo,
		ID:      id,
		Title:   title,
		Content: content,
	}
}

// Validate checks if the add note operation is valid
func (c *AddNoteCommand) Validate() error {
	if err := validateID(c.ID); err != nil {
		return err
	}
	return application.ValidateRequired("title", c.Title)
}

// Execute runs the add note command
func (c *AddNoteCommand) Execute(ctx context.Context) (*SourceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ch, err := findCharacter(c.repo, c.ID)
	if err != nil {
		return nil, err
	}
	ch.Notes = append(ch.Notes, domain.NewNote(strings.TrimSpace(c.Title), c.Content))
	if err := persist(ctx, c.repo); err != nil {
		return nil, err
	}

	index := len(ch.Notes) - 1
	return &SourceResult{
		Character: ch,
		Kind:      domain.SourceNote,
		Index:     index,
		Message:   fmt.Sprintf("Added note %d: %s", index, ch.Notes[index].Title),
	}, nil
}

// RemoveSourceCommand deletes an item or note by position
type RemoveSourceCommand struct {
	repo  ports.CharacterRepository
	ID    string
	Kind  string
	Index int
}

// NewRemoveSourceCommand creates a new RemoveSourceCommand
func NewRemoveSourceCommand(repo ports.CharacterRepository, id, kind string, index int) *RemoveSourceCommand {
	return &RemoveSourceCommand{
		repo:  repo,
		ID:    id,
		Kind:  kind,
		Index: index,
	}
}

// Validate checks if the remove operation is valid
func (c *RemoveSourceCommand) Validate() error {
	if err := validateID(c.ID); err != nil {
		return err
	}
	_, err := validateSource(c.Kind, c.Index)
	return err
}

// Execute runs the remove command
func (c *RemoveSourceCommand) Execute(ctx context.Context) (*SourceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ch, err := findCharacter(c.repo, c.ID)
	if err != nil {
		return nil, err
	}
	kind, _ := validateSource(c.Kind, c.Index)
	if err := application.ValidateIndex("index", c.Index, sourceCount(ch, kind)); err != nil {
		return nil, err
	}

	label := ch.Modifiables()[modifiableIndex(ch, kind, c.Index)].Label()
	if err := ch.RemoveSource(kind, c.Index); err != nil {
		return nil, err
	}
	if err := persist(ctx, c.repo); err != nil {
		return nil, err
	}

	return &SourceResult{
		Character: ch,
		Kind:      kind,
		Index:     c.Index,
		Message:   fmt.Sprintf("Removed %s %d: %s", kind, c.Index, label),
	}, nil
}

// modifiableIndex maps a kind-relative index to a position in Modifiables
func modifiableIndex(ch *domain.Character, kind domain.SourceKind, index int) int {
	if kind == domain.SourceNote {
		return len(ch.Items) + index
	}
	return index
}
