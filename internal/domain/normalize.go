package domain

import "fmt"

// RawCharacter is a character as it was found in storage, before any
// schema checks. Grades are letters and category keys are free strings.
type RawCharacter struct {
	ID                 int64
	Name               string
	Profession         string
	AdvancedProfession string
	HeroicStats        map[string]string
	MeatStats          map[string]string
	Items              []RawSource
	Notes              []RawSource
}

// RawSource is an item or note as found in storage
type RawSource struct {
	Label           string
	Text            string
	HeroicModifiers map[string]int
	MeatModifiers   map[string]int
}

// Repair records one change made while normalizing a stored record
type Repair struct {
	Field   string
	Message string
}

func (r Repair) String() string {
	return fmt.Sprintf("%s: %s", r.Field, r.Message)
}

// NormalizeCharacter turns a stored record into a fully populated character:
// missing categories become F, categories outside the current sets are
// dropped, unknown grade letters become F, and modifiers are limited to
// known categories and clamped to the allowed range. Every change is
// reported so the caller can log it.
func NormalizeCharacter(raw RawCharacter) (*Character, []Repair) {
	var repairs []Repair

	c := &Character{
		ID:                 raw.ID,
		Name:               raw.Name,
		Profession:         raw.Profession,
		AdvancedProfession: raw.AdvancedProfession,
		Items:              make([]Item, 0, len(raw.Items)),
		Notes:              make([]Note, 0, len(raw.Notes)),
	}

	var r []Repair
	c.Heroic, r = normalizeStatBlock(Heroic, raw.HeroicStats)
	repairs = append(repairs, r...)
	c.Meat, r = normalizeStatBlock(Meat, raw.MeatStats)
	repairs = append(repairs, r...)

	for i, src := range raw.Items {
		field := fmt.Sprintf("magicalItems[%d]", i)
		set, r := normalizeModifierSet(field, src)
		repairs = append(repairs, r...)
		c.Items = append(c.Items, Item{ModifierSet: set, Name: src.Label, Description: src.Text})
	}
	for i, src := range raw.Notes {
		field := fmt.Sprintf("notes[%d]", i)
		set, r := normalizeModifierSet(field, src)
		repairs = append(repairs, r...)
		c.Notes = append(c.Notes, Note{ModifierSet: set, Title: src.Label, Content: src.Text})
	}

	return c, repairs
}

func normalizeStatBlock(set StatSet, raw map[string]string) (StatBlock, []Repair) {
	var repairs []Repair
	field := set.String() + "Stats"
	block := NewStatBlock(set)

	for _, cat := range set.Categories() {
		letter, ok := raw[string(cat)]
		if !ok {
			repairs = append(repairs, Repair{Field: field, Message: fmt.Sprintf("missing %q, set to F", cat)})
			continue
		}
		g, err := ParseGrade(letter)
		if err != nil {
			repairs = append(repairs, Repair{Field: field, Message: fmt.Sprintf("%q has %v, set to F", cat, err)})
			continue
		}
		block[cat] = g
	}

	for key := range raw {
		if !set.Has(Category(key)) {
			repairs = append(repairs, Repair{Field: field, Message: fmt.Sprintf("dropped unknown category %q", key)})
		}
	}

	return block, repairs
}

func normalizeModifierSet(field string, src RawSource) (ModifierSet, []Repair) {
	var repairs []Repair
	out := ModifierSet{Heroic: Modifiers{}, Meat: Modifiers{}}

	for _, set := range StatSets() {
		raw := src.HeroicModifiers
		if set == Meat {
			raw = src.MeatModifiers
		}
		target := out.Modifiers(set)
		for key, v := range raw {
			cat := Category(key)
			if !set.Has(cat) {
				repairs = append(repairs, Repair{
					Field:   field,
					Message: fmt.Sprintf("dropped %s modifier for unknown category %q", set, key),
				})
				continue
			}
			clamped := clamp(v, MinModifier, MaxModifier)
			if clamped != v {
				repairs = append(repairs, Repair{
					Field:   field,
					Message: fmt.Sprintf("%s modifier %q clamped from %d to %d", set, key, v, clamped),
				})
			}
			target[cat] = clamped
		}
	}

	return out, repairs
}
