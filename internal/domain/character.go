package domain

import (
	"fmt"
	"time"
)

// UnnamedCharacter is shown wherever a character has no name yet
const UnnamedCharacter = "Unnamed Character"

// StatBlock maps every category of one stat set to a grade
type StatBlock map[Category]Grade

// NewStatBlock returns a block with every category of the set at F
func NewStatBlock(set StatSet) StatBlock {
	block := make(StatBlock)
	for _, c := range set.Categories() {
		block[c] = GradeF
	}
	return block
}

// Ordered returns the grades of the block in the set's axis order.
// Missing categories read as F.
func (b StatBlock) Ordered(set StatSet) []Grade {
	cats := set.Categories()
	out := make([]Grade, len(cats))
	for i, c := range cats {
		g, ok := b[c]
		if !ok || !g.Valid() {
			g = GradeF
		}
		out[i] = g
	}
	return out
}

// Character is a single sheet in the collection
type Character struct {
	ID                 int64
	Name               string
	Profession         string
	AdvancedProfession string
	Heroic             StatBlock
	Meat               StatBlock
	Items              []Item
	Notes              []Note
}

// NewCharacter creates a character with every stat at F and no items or notes
func NewCharacter(id int64) *Character {
	return &Character{
		ID:     id,
		Heroic: NewStatBlock(Heroic),
		Meat:   NewStatBlock(Meat),
		Items:  []Item{},
		Notes:  []Note{},
	}
}

// NextCharacterID derives an id from the clock, moving past any id already
// taken so that two characters created in the same millisecond stay distinct.
func NextCharacterID(now time.Time, taken []int64) int64 {
	id := now.UnixMilli()
	for _, t := range taken {
		if t >= id {
			id = t + 1
		}
	}
	return id
}

// DisplayName returns the name or a placeholder when empty
func (c *Character) DisplayName() string {
	if c.Name == "" {
		return UnnamedCharacter
	}
	return c.Name
}

// StatBlock returns the block for the given set
func (c *Character) StatBlock(set StatSet) StatBlock {
	if set == Meat {
		return c.Meat
	}
	return c.Heroic
}

// SetGrade assigns a grade to a category of the given set
func (c *Character) SetGrade(set StatSet, cat Category, g Grade) error {
	if !set.Has(cat) {
		return fmt.Errorf("%w: %q is not a %s category", ErrUnknownCategory, cat, set)
	}
	if !g.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidGrade, int(g))
	}
	block := c.StatBlock(set)
	if block == nil {
		block = NewStatBlock(set)
		if set == Meat {
			c.Meat = block
		} else {
			c.Heroic = block
		}
	}
	block[cat] = g
	return nil
}

// Modifiables returns items followed by notes. The returned values point
// into the character's slices.
func (c *Character) Modifiables() []Modifiable {
	out := make([]Modifiable, 0, len(c.Items)+len(c.Notes))
	for i := range c.Items {
		out = append(out, &c.Items[i])
	}
	for i := range c.Notes {
		out = append(out, &c.Notes[i])
	}
	return out
}

// Source returns the modifier set of an item or note by position
func (c *Character) Source(kind SourceKind, index int) (*ModifierSet, error) {
	switch kind {
	case SourceItem:
		if index < 0 || index >= len(c.Items) {
			return nil, fmt.Errorf("item index %d out of range (have %d)", index, len(c.Items))
		}
		return &c.Items[index].ModifierSet, nil
	case SourceNote:
		if index < 0 || index >= len(c.Notes) {
			return nil, fmt.Errorf("note index %d out of range (have %d)", index, len(c.Notes))
		}
		return &c.Notes[index].ModifierSet, nil
	default:
		return nil, fmt.Errorf("unknown source kind %d", int(kind))
	}
}

// RemoveSource deletes an item or note by position
func (c *Character) RemoveSource(kind SourceKind, index int) error {
	if _, err := c.Source(kind, index); err != nil {
		return err
	}
	if kind == SourceNote {
		c.Notes = append(c.Notes[:index], c.Notes[index+1:]...)
	} else {
		c.Items = append(c.Items[:index], c.Items[index+1:]...)
	}
	return nil
}
