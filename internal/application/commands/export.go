package commands

import (
	"context"
	"fmt"
	"time"

	"herosheet/internal/application"
	"herosheet/internal/ports"
)

// ExportResult contains the result of an export
type ExportResult struct {
	Path    string
	Message string
}

// ExportCommand writes a static document of a character's profile
type ExportCommand struct {
	repo     ports.CharacterRepository
	exporter ports.Exporter
	clock    func() time.Time
	ID       string
	Dir      string
}

// NewExportCommand creates a new ExportCommand. An empty dir uses the
// exporter's configured directory.
func NewExportCommand(repo ports.CharacterRepository, exporter ports.Exporter, id, dir string) *ExportCommand {
	return &ExportCommand{
		repo:     repo,
		exporter: exporter,
		clock:    time.Now,
		ID:       id,
		Dir:      dir,
	}
}

// Validate checks if the export operation is valid
func (c *ExportCommand) Validate() error {
	return validateID(c.ID)
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.exporter == nil || !c.exporter.IsAvailable() {
		return nil, &application.ExportError{Reason: "no exporter available"}
	}

	ch, err := findCharacter(c.repo, c.ID)
	if err != nil {
		return nil, err
	}

	path, err := c.exporter.Export(ctx, ports.ExportDocument{
		Character:  ch,
		Profiles:   application.Profiles(ch),
		ExportedAt: c.clock(),
		Dir:        c.Dir,
	})
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Path:    path,
		Message: fmt.Sprintf("Exported %s to %s", ch.DisplayName(), path),
	}, nil
}
