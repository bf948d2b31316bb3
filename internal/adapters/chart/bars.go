// Package chart draws stat profiles as horizontal bar charts for the terminal.
package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"herosheet/internal/adapters/tui/styles"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

const (
	// minCellWidth fits the longest grade letter plus one separating column
	minCellWidth = 4
	filled           = "█"
	empty            = "·"
)

// BarChart implements ports.ChartRenderer with one bar per axis on a
// fixed 0..9 scale labelled with grade letters.
type BarChart struct {
	cellWidth int
}

// Ensure BarChart implements ChartRenderer
var _ ports.ChartRenderer = (*BarChart)(nil)

// NewBarChart creates a chart renderer. cellWidth is the number of columns
// per grade step and is raised to minCellWidth so tick labels never touch.
func NewBarChart(cellWidth int) *BarChart {
	return &BarChart{cellWidth: max(cellWidth, minCellWidth)}
}

// Render draws the axes in the order given. Values are clamped to the
// grade scale.
func (b *BarChart) Render(title string, axes []domain.Category, values []int) string {
	labelWidth := 0
	for _, a := range axes {
		labelWidth = max(labelWidth, lipgloss.Width(string(a)))
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(styles.Section.Render(title))
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(" ", labelWidth+1))
	sb.WriteString(styles.MutedText.Render(b.ticks()))
	sb.WriteString("\n")

	for i, axis := range axes {
		v := domain.MinGradeValue
		if i < len(values) {
			v = min(max(values[i], domain.MinGradeValue), domain.MaxGradeValue)
		}
		g := domain.ValueToGrade(v)

		label := lipgloss.NewStyle().Width(labelWidth).Render(string(axis))
		bar := lipgloss.NewStyle().Foreground(styles.KindColor(axis.Kind())).
			Render(strings.Repeat(filled, v*b.cellWidth))
		rest := styles.MutedText.Render(strings.Repeat(empty, (domain.MaxGradeValue-v)*b.cellWidth))

		sb.WriteString(label)
		sb.WriteString(" ")
		sb.WriteString(bar)
		sb.WriteString(rest)
		sb.WriteString(" ")
		sb.WriteString(styles.GradeBadge(g))
		if i < len(axes)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ticks returns the scale line with each grade letter right-aligned at
// the end of its cell.
func (b *BarChart) ticks() string {
	var sb strings.Builder
	for _, g := range domain.Grades() {
		letter := g.String()
		sb.WriteString(strings.Repeat(" ", b.cellWidth-len(letter)))
		sb.WriteString(letter)
	}
	return sb.String()
}
