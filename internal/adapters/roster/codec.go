package roster

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"herosheet/internal/domain"
)

// characterRecord is the persisted shape of one character
type characterRecord struct {
	ID                 int64                  `json:"id"`
	Name               string                 `json:"name"`
	Profession         string                 `json:"profession"`
	AdvancedProfession string                 `json:"advancedProfession"`
	HeroicStats        map[string]looseString `json:"heroicStats"`
	MeatStats          map[string]looseString `json:"meatStats"`
	MagicalItems       []itemRecord           `json:"magicalItems"`
	Notes              []noteRecord           `json:"notes"`
}

type itemRecord struct {
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	HeroicModifiers map[string]looseInt `json:"heroicModifiers"`
	MeatModifiers   map[string]looseInt `json:"meatModifiers"`
}

type noteRecord struct {
	Title           string              `json:"title"`
	Content         string              `json:"content"`
	HeroicModifiers map[string]looseInt `json:"heroicModifiers"`
	MeatModifiers   map[string]looseInt `json:"meatModifiers"`
}

// looseString accepts any JSON scalar. Non-strings keep their literal text
// so normalization can report them as unknown grades.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
		return nil
	}
	*s = looseString(strings.TrimSpace(string(data)))
	return nil
}

// looseInt accepts integers, floats and numeric strings. Anything else
// reads as zero.
type looseInt int

func (n *looseInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = roundLoose(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*n = roundLoose(f)
			return nil
		}
	}
	*n = 0
	return nil
}

// roundLoose rounds to the nearest integer within the int32 range. NaN
// reads as zero.
func roundLoose(f float64) looseInt {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Round(f)))
	return looseInt(f)
}

func decodeCollection(data []byte) ([]characterRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var records []characterRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func encodeCollection(chars []*domain.Character) ([]byte, error) {
	records := make([]characterRecord, 0, len(chars))
	for _, c := range chars {
		records = append(records, toRecord(c))
	}
	return json.Marshal(records)
}

func (r characterRecord) raw() domain.RawCharacter {
	raw := domain.RawCharacter{
		ID:                 r.ID,
		Name:               r.Name,
		Profession:         r.Profession,
		AdvancedProfession: r.AdvancedProfession,
		HeroicStats:        stringMap(r.HeroicStats),
		MeatStats:          stringMap(r.MeatStats),
		Items:              make([]domain.RawSource, 0, len(r.MagicalItems)),
		Notes:              make([]domain.RawSource, 0, len(r.Notes)),
	}
	for _, it := range r.MagicalItems {
		raw.Items = append(raw.Items, domain.RawSource{
			Label:           it.Name,
			Text:            it.Description,
			HeroicModifiers: intMap(it.HeroicModifiers),
			MeatModifiers:   intMap(it.MeatModifiers),
		})
	}
	for _, n := range r.Notes {
		raw.Notes = append(raw.Notes, domain.RawSource{
			Label:           n.Title,
			Text:            n.Content,
			HeroicModifiers: intMap(n.HeroicModifiers),
			MeatModifiers:   intMap(n.MeatModifiers),
		})
	}
	return raw
}

func toRecord(c *domain.Character) characterRecord {
	rec := characterRecord{
		ID:                 c.ID,
		Name:               c.Name,
		Profession:         c.Profession,
		AdvancedProfession: c.AdvancedProfession,
		HeroicStats:        statRecord(domain.Heroic, c.Heroic),
		MeatStats:          statRecord(domain.Meat, c.Meat),
		MagicalItems:       make([]itemRecord, 0, len(c.Items)),
		Notes:              make([]noteRecord, 0, len(c.Notes)),
	}
	for i := range c.Items {
		it := &c.Items[i]
		rec.MagicalItems = append(rec.MagicalItems, itemRecord{
			Name:            it.Name,
			Description:     it.Description,
			HeroicModifiers: modifierRecord(it.Heroic),
			MeatModifiers:   modifierRecord(it.Meat),
		})
	}
	for i := range c.Notes {
		n := &c.Notes[i]
		rec.Notes = append(rec.Notes, noteRecord{
			Title:           n.Title,
			Content:         n.Content,
			HeroicModifiers: modifierRecord(n.Heroic),
			MeatModifiers:   modifierRecord(n.Meat),
		})
	}
	return rec
}

func statRecord(set domain.StatSet, block domain.StatBlock) map[string]looseString {
	out := make(map[string]looseString, len(set.Categories()))
	grades := block.Ordered(set)
	for i, cat := range set.Categories() {
		out[string(cat)] = looseString(grades[i].String())
	}
	return out
}

func modifierRecord(m domain.Modifiers) map[string]looseInt {
	out := make(map[string]looseInt, len(m))
	for cat, v := range m {
		out[string(cat)] = looseInt(v)
	}
	return out
}

func stringMap(m map[string]looseString) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = string(v)
	}
	return out
}

func intMap(m map[string]looseInt) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = int(v)
	}
	return out
}
