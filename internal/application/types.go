package application

import "herosheet/internal/domain"

// Re-export domain types for use by adapters
type (
	Character   = domain.Character
	Grade       = domain.Grade
	StatSet     = domain.StatSet
	Category    = domain.Category
	SourceKind  = domain.SourceKind
	StatProfile = domain.StatProfile
)

const (
	Heroic = domain.Heroic
	Meat   = domain.Meat

	SourceItem = domain.SourceItem
	SourceNote = domain.SourceNote
)

// ParseGrade converts a grade letter
func ParseGrade(s string) (Grade, error) {
	return domain.ParseGrade(s)
}

// ParseStatSet converts "heroic" or "meat"
func ParseStatSet(s string) (StatSet, error) {
	return domain.ParseStatSet(s)
}

// ParseSourceKind converts "item" or "note"
func ParseSourceKind(s string) (SourceKind, error) {
	return domain.ParseSourceKind(s)
}

// Profiles builds the heroic and meat profiles of a character
func Profiles(c *Character) []StatProfile {
	return []StatProfile{
		domain.BuildStatProfile(c, domain.Heroic),
		domain.BuildStatProfile(c, domain.Meat),
	}
}
