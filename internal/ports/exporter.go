package ports

import (
	"context"
	"time"

	"herosheet/internal/domain"
)

// ExportDocument is a static snapshot of a character's visible profile
type ExportDocument struct {
	Character  *domain.Character
	Profiles   []domain.StatProfile
	ExportedAt time.Time
	// Dir overrides the exporter's output directory when non-empty.
	Dir string
}

// Exporter renders a profile snapshot to a portable document
type Exporter interface {
	// Export writes the document and returns the path of the file created.
	// On failure no partial file is left behind.
	Export(ctx context.Context, doc ExportDocument) (string, error)

	// IsAvailable returns true if the exporter can currently write documents
	IsAvailable() bool
}
