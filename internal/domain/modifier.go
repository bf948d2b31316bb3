package domain

import (
	"errors"
	"fmt"
	"maps"
)

var (
	ErrDuplicateModifier  = errors.New("duplicate modifier")
	ErrModifierOutOfRange = errors.New("modifier out of range")
)

const (
	MinModifier = -2
	MaxModifier = 2
)

// Modifiers maps a category to a signed adjustment in [MinModifier, MaxModifier]
type Modifiers map[Category]int

// Clone returns an independent copy
func (m Modifiers) Clone() Modifiers {
	if m == nil {
		return Modifiers{}
	}
	return maps.Clone(m)
}

// ModifierSet holds the heroic and meat modifiers of a single source.
// Item and Note embed it.
type ModifierSet struct {
	Heroic Modifiers
	Meat   Modifiers
}

// Modifiers returns the map for the given set. Absent maps read as empty.
func (s *ModifierSet) Modifiers(set StatSet) Modifiers {
	switch set {
	case Heroic:
		return s.Heroic
	case Meat:
		return s.Meat
	default:
		return nil
	}
}

func (s *ModifierSet) target(set StatSet) (*Modifiers, error) {
	switch set {
	case Heroic:
		return &s.Heroic, nil
	case Meat:
		return &s.Meat, nil
	default:
		return nil, fmt.Errorf("unknown stat set %d", int(set))
	}
}

func validateModifier(set StatSet, c Category, value int) error {
	if !set.Has(c) {
		return fmt.Errorf("%w: %q is not a %s category", ErrUnknownCategory, c, set)
	}
	if value < MinModifier || value > MaxModifier {
		return fmt.Errorf("%w: %d (allowed %d..%d)", ErrModifierOutOfRange, value, MinModifier, MaxModifier)
	}
	return nil
}

// AddModifier attaches a new modifier. A second modifier for the same
// category and set is rejected with ErrDuplicateModifier and the map is
// left unchanged.
func (s *ModifierSet) AddModifier(set StatSet, c Category, value int) error {
	if err := validateModifier(set, c, value); err != nil {
		return err
	}
	m, err := s.target(set)
	if err != nil {
		return err
	}
	if _, exists := (*m)[c]; exists {
		return fmt.Errorf("%w: %s %s", ErrDuplicateModifier, set, c)
	}
	if *m == nil {
		*m = Modifiers{}
	}
	(*m)[c] = value
	return nil
}

// SetModifier creates or replaces a modifier
func (s *ModifierSet) SetModifier(set StatSet, c Category, value int) error {
	if err := validateModifier(set, c, value); err != nil {
		return err
	}
	m, err := s.target(set)
	if err != nil {
		return err
	}
	if *m == nil {
		*m = Modifiers{}
	}
	(*m)[c] = value
	return nil
}

// RemoveModifier deletes a modifier and reports whether one existed
func (s *ModifierSet) RemoveModifier(set StatSet, c Category) bool {
	m, err := s.target(set)
	if err != nil {
		return false
	}
	if _, ok := (*m)[c]; !ok {
		return false
	}
	delete(*m, c)
	return true
}

// Modifiable is anything that carries free text and modifiers
type Modifiable interface {
	Label() string
	Text() string
	Modifiers(set StatSet) Modifiers
}

// SourceKind distinguishes items from notes
type SourceKind int

const (
	SourceItem SourceKind = iota
	SourceNote
)

func (k SourceKind) String() string {
	if k == SourceNote {
		return "note"
	}
	return "item"
}

// ParseSourceKind converts "item" or "note" into a SourceKind
func ParseSourceKind(s string) (SourceKind, error) {
	switch s {
	case "item", "items":
		return SourceItem, nil
	case "note", "notes":
		return SourceNote, nil
	default:
		return 0, fmt.Errorf("unknown source kind %q (expected item or note)", s)
	}
}

// Item is a magical item carried by a character
type Item struct {
	ModifierSet
	Name        string
	Description string
}

// NewItem creates an item with empty modifier maps
func NewItem(name, description string) Item {
	return Item{
		ModifierSet: ModifierSet{Heroic: Modifiers{}, Meat: Modifiers{}},
		Name:        name,
		Description: description,
	}
}

func (i *Item) Label() string { return i.Name }
func (i *Item) Text() string  { return i.Description }

// Note is a free-form note attached to a character
type Note struct {
	ModifierSet
	Title   string
	Content string
}

// NewNote creates a note with empty modifier maps
func NewNote(title, content string) Note {
	return Note{
		ModifierSet: ModifierSet{Heroic: Modifiers{}, Meat: Modifiers{}},
		Title:       title,
		Content:     content,
	}
}

func (n *Note) Label() string { return n.Title }
func (n *Note) Text() string  { return n.Content }

var (
	_ Modifiable = (*Item)(nil)
	_ Modifiable = (*Note)(nil)
)
