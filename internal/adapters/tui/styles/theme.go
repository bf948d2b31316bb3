package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"herosheet/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Axis colors
	PhysicalAxis = lipgloss.Color("#F97316") // Orange
	SocialAxis   = lipgloss.Color("#60A5FA") // Blue

	// Grade tiers
	GradeLow  = lipgloss.Color("#9CA3AF") // Gray
	GradeMid  = lipgloss.Color("#10B981") // Green
	GradeHigh = lipgloss.Color("#8B5CF6") // Violet
	GradeTop  = lipgloss.Color("#EC4899") // Pink

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	SectionFocused = lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Background(Secondary).
			Padding(0, 1)

	// List row styles
	RowName = lipgloss.NewStyle().
		Bold(true)

	RowDetail = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Cursor = "▶ "
	NoCur  = "  "

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Warning)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// KindColor returns the color for physical or social axes
func KindColor(k domain.Kind) lipgloss.Color {
	if k == domain.Social {
		return SocialAxis
	}
	return PhysicalAxis
}

// GradeColor returns the color for a grade tier
func GradeColor(g domain.Grade) lipgloss.Color {
	switch {
	case g >= domain.GradeSS:
		return GradeTop
	case g >= domain.GradeA:
		return GradeHigh
	case g >= domain.GradeC:
		return GradeMid
	default:
		return GradeLow
	}
}

// GradeBadge renders a grade letter in its tier color
func GradeBadge(g domain.Grade) string {
	return lipgloss.NewStyle().Bold(true).Foreground(GradeColor(g)).Render(g.String())
}

// ModifierText renders a signed modifier, or nothing for zero
func ModifierText(v int) string {
	switch {
	case v > 0:
		return lipgloss.NewStyle().Foreground(Secondary).Render(signed(v))
	case v < 0:
		return lipgloss.NewStyle().Foreground(Error).Render(signed(v))
	default:
		return ""
	}
}

func signed(v int) string {
	return fmt.Sprintf("%+d", v)
}
