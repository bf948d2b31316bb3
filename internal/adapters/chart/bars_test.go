package chart

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herosheet/internal/domain"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRender_OneBarPerAxisInOrder(t *testing.T) {
	axes := domain.Heroic.Categories()
	values := make([]int, len(axes))
	for i := range values {
		values[i] = 1
	}
	values[3] = 8 // Stealth

	out := NewBarChart(1).Render("Heroic", axes, values)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(axes)+2, "title, ticks and one line per axis")

	for i, axis := range axes {
		assert.True(t, strings.HasPrefix(lines[i+2], string(axis)), "line %d should start with %s", i+2, axis)
	}
	assert.Equal(t, 8*minCellWidth, strings.Count(lines[5], filled))
	assert.True(t, strings.HasSuffix(lines[5], "SS"))
}

func TestRender_ClampsValues(t *testing.T) {
	axes := []domain.Category{domain.Speed, domain.Range}
	out := NewBarChart(5).Render("", axes, []int{14, -3})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, 45, strings.Count(lines[1], filled))
	assert.True(t, strings.HasSuffix(lines[1], "SSS"))
	assert.Equal(t, 5, strings.Count(lines[2], filled))
	assert.True(t, strings.HasSuffix(lines[2], "F"))
}

func TestRender_MissingValuesReadAsF(t *testing.T) {
	out := NewBarChart(1).Render("", []domain.Category{domain.Magic}, nil)
	assert.Contains(t, out, "Magic "+filled)
}

func TestTicks(t *testing.T) {
	assert.Equal(t, "   F   E   D   C   B   A   S  SS SSS", NewBarChart(4).ticks())
	assert.Equal(t, NewBarChart(4).ticks(), NewBarChart(1).ticks(), "narrow cells are widened")
	assert.Equal(t, "    F    E    D    C    B    A    S   SS  SSS", NewBarChart(5).ticks())
}

func TestTicks_LabelsNeverTouch(t *testing.T) {
	for _, width := range []int{0, 1, 2, 3, 4, 6} {
		fields := strings.Fields(NewBarChart(width).ticks())
		require.Len(t, fields, domain.MaxGradeValue, "width %d", width)
		for i, g := range domain.Grades() {
			assert.Equal(t, g.String(), fields[i], "width %d", width)
		}
	}
}

func TestTicks_AlignWithBarEnds(t *testing.T) {
	axes := []domain.Category{domain.Speed}
	for _, g := range domain.Grades() {
		out := NewBarChart(4).Render("", axes, []int{int(g)})
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		tickEnd := strings.Index(lines[0], " "+g.String()+" ")
		if tickEnd < 0 {
			tickEnd = len(lines[0]) - len(g.String()) - 1
		}
		tickEnd += 1 + len(g.String())
		barEnd := strings.LastIndex(lines[1], filled) + len(filled)
		assert.Equal(t, tickEnd, runeColumn(lines[1], barEnd), "grade %s", g)
	}
}

func runeColumn(s string, byteOffset int) int {
	return len([]rune(s[:byteOffset]))
}
