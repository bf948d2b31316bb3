package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownCategory is returned when a category does not belong to a stat set
var ErrUnknownCategory = errors.New("unknown category")

// StatSet identifies one of the two fixed category sets
type StatSet int

const (
	Heroic StatSet = iota
	Meat
)

// StatSets returns both stat sets in display order
func StatSets() []StatSet {
	return []StatSet{Heroic, Meat}
}

// String returns the lowercase name used in storage and on the command line
func (s StatSet) String() string {
	switch s {
	case Heroic:
		return "heroic"
	case Meat:
		return "meat"
	default:
		return fmt.Sprintf("StatSet(%d)", int(s))
	}
}

// Title returns the capitalized name shown in the UI
func (s StatSet) Title() string {
	switch s {
	case Heroic:
		return "Heroic"
	case Meat:
		return "Meat"
	default:
		return s.String()
	}
}

// ParseStatSet converts "heroic" or "meat" into a StatSet
func ParseStatSet(s string) (StatSet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heroic":
		return Heroic, nil
	case "meat":
		return Meat, nil
	default:
		return 0, fmt.Errorf("unknown stat set %q (expected heroic or meat)", s)
	}
}

// Category is a labeled stat axis
type Category string

const (
	DamageOutput        Category = "Damage Output"
	FightingProwess     Category = "Fighting Prowess"
	AccessibleResources Category = "Accessible Resources"
	Likeability         Category = "Likeability"
	Allies              Category = "Allies"
	Stealth             Category = "Stealth"
	Magic               Category = "Magic"
	Tactics             Category = "Tactics"
	Intelligence        Category = "Intelligence"
	Durability          Category = "Durability"
	Speed               Category = "Speed"
	Range               Category = "Range"
)

var heroicCategories = []Category{
	DamageOutput,
	AccessibleResources,
	Allies,
	Stealth,
	Magic,
	Tactics,
	Durability,
	Range,
}

var meatCategories = []Category{
	FightingProwess,
	AccessibleResources,
	Likeability,
	Allies,
	Stealth,
	Magic,
	Tactics,
	Intelligence,
	Durability,
	Speed,
	Range,
}

// Categories returns the ordered axis labels of the set. The slice is a
// copy and may be modified by the caller.
func (s StatSet) Categories() []Category {
	switch s {
	case Heroic:
		return slices.Clone(heroicCategories)
	case Meat:
		return slices.Clone(meatCategories)
	default:
		return nil
	}
}

// Has reports whether c is part of the set
func (s StatSet) Has(c Category) bool {
	switch s {
	case Heroic:
		return slices.Contains(heroicCategories, c)
	case Meat:
		return slices.Contains(meatCategories, c)
	default:
		return false
	}
}

// ParseCategory resolves a label within a set, ignoring case and
// surrounding whitespace.
func ParseCategory(set StatSet, s string) (Category, error) {
	want := strings.TrimSpace(s)
	for _, c := range set.Categories() {
		if strings.EqualFold(string(c), want) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not a %s category", ErrUnknownCategory, s, set)
}

// Kind groups categories for display
type Kind int

const (
	Physical Kind = iota
	Social
)

func (k Kind) String() string {
	if k == Social {
		return "social"
	}
	return "physical"
}

var socialCategories = map[Category]bool{
	AccessibleResources: true,
	Likeability:         true,
	Allies:              true,
	Tactics:             true,
	Intelligence:        true,
}

// Kind returns the fixed classification tag of the category
func (c Category) Kind() Kind {
	if socialCategories[c] {
		return Social
	}
	return Physical
}
