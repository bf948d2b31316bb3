package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"herosheet/internal/domain"
)

func named(id int64, name, profession, advanced string) *domain.Character {
	c := domain.NewCharacter(id)
	c.Name = name
	c.Profession = profession
	c.AdvancedProfession = advanced
	return c
}

func ids(chars []*domain.Character) []int64 {
	out := make([]int64, len(chars))
	for i, c := range chars {
		out[i] = c.ID
	}
	return out
}

func TestSortCharacters(t *testing.T) {
	chars := []*domain.Character{
		named(1, "zora", "Witch", "Hexblade"),
		named(2, "Ängel", "Bard", "Skald"),
		named(3, "Bram", "Alchemist", "Artificer"),
	}

	tests := []struct {
		name string
		key  SortKey
		want []int64
	}{
		{"by name, locale aware", SortByName, []int64{2, 3, 1}},
		{"by profession", SortByProfession, []int64{3, 2, 1}},
		{"by advanced profession", SortByAdvancedProfession, []int64{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SortCharacters(chars, tt.key, "en")))
		})
	}

	assert.Equal(t, []int64{1, 2, 3}, ids(chars), "input must not be reordered")
}

func TestSortCharacters_StableForTies(t *testing.T) {
	chars := []*domain.Character{
		named(5, "", "Knight", ""),
		named(4, "", "Knight", ""),
		named(6, "", "Archer", ""),
	}
	assert.Equal(t, []int64{6, 5, 4}, ids(SortCharacters(chars, SortByProfession, "en")))
}

func TestSortCharacters_BadLocaleFallsBack(t *testing.T) {
	chars := []*domain.Character{named(1, "b", "", ""), named(2, "a", "", "")}
	assert.Equal(t, []int64{2, 1}, ids(SortCharacters(chars, SortByName, "!!")))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByProfession, ParseSortKey("profession"))
	assert.Equal(t, SortByAdvancedProfession, ParseSortKey("advancedProfession"))
	assert.Equal(t, SortByName, ParseSortKey(""))
	assert.Equal(t, SortByName, ParseSortKey("level"))

	assert.Equal(t, SortByProfession, SortByName.Next())
	assert.Equal(t, SortByName, SortByAdvancedProfession.Next())
}
