package application

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"herosheet/internal/domain"
)

// SortKey selects the field the character list is ordered by
type SortKey string

const (
	SortByName               SortKey = "name"
	SortByProfession         SortKey = "profession"
	SortByAdvancedProfession SortKey = "advancedProfession"
)

var sortKeys = []SortKey{SortByName, SortByProfession, SortByAdvancedProfession}

// ParseSortKey converts a key name, falling back to SortByName
func ParseSortKey(s string) SortKey {
	for _, k := range sortKeys {
		if string(k) == s {
			return k
		}
	}
	return SortByName
}

// Next cycles to the following sort key
func (k SortKey) Next() SortKey {
	i := slices.Index(sortKeys, k)
	return sortKeys[(i+1)%len(sortKeys)]
}

// Label returns a human-readable name for the key
func (k SortKey) Label() string {
	switch k {
	case SortByProfession:
		return "profession"
	case SortByAdvancedProfession:
		return "advanced profession"
	default:
		return "name"
	}
}

func (k SortKey) field(c *domain.Character) string {
	switch k {
	case SortByProfession:
		return c.Profession
	case SortByAdvancedProfession:
		return c.AdvancedProfession
	default:
		return c.Name
	}
}

// SortCharacters returns a sorted copy of chars, comparing the chosen field
// with the collation rules of locale. Equal fields keep their insertion order.
func SortCharacters(chars []*domain.Character, key SortKey, locale string) []*domain.Character {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	col := collate.New(tag, collate.IgnoreCase)

	out := slices.Clone(chars)
	slices.SortStableFunc(out, func(a, b *domain.Character) int {
		return col.CompareString(key.field(a), key.field(b))
	})
	return out
}
