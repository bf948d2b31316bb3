package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"herosheet/internal/adapters/tui/styles"
	"herosheet/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("herosheet Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Character sheets with heroic and meat stats"))
	b.WriteString("\n\n")

	// Roster section
	b.WriteString(styles.InputLabel.Render("Roster"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / PgUp / PgDn", "Previous/next page"))
	b.WriteString(helpLine("Enter", "Open character"))
	b.WriteString(helpLine("n", "New character"))
	b.WriteString(helpLine("d", "Delete character"))
	b.WriteString(helpLine("s", "Cycle sort: name, profession, advanced profession"))
	b.WriteString(helpLine("y", "Copy summary to clipboard"))
	b.WriteString("\n")

	// Profile section
	b.WriteString(styles.InputLabel.Render("Character"))
	b.WriteString("\n")
	b.WriteString(helpLine("Tab / Shift+Tab", "Next/previous section"))
	b.WriteString(helpLine("h / l", "Lower/raise the selected grade"))
	b.WriteString(helpLine("e", "Edit name and professions"))
	b.WriteString(helpLine("i / o", "Add magical item / note"))
	b.WriteString(helpLine("m / M", "Add/remove a modifier on the selected item or note"))
	b.WriteString(helpLine("x", "Remove the selected item or note"))
	b.WriteString(helpLine("E", "Edit description or content in $EDITOR"))
	b.WriteString(helpLine("p / P", "Export to Markdown / export and open"))
	b.WriteString(helpLine("Esc", "Back to roster"))
	b.WriteString("\n")

	// General section
	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Save and quit"))
	b.WriteString("\n")

	// Grade scale
	b.WriteString(styles.InputLabel.Render("Grades"))
	b.WriteString("\n")
	for _, g := range domain.Grades() {
		b.WriteString("  ")
		b.WriteString(styles.GradeBadge(g))
		b.WriteString(strings.Repeat(" ", 4-len(g.String())))
		b.WriteString(styles.MutedText.Render(g.Description()))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("  Items and notes add %d..%+d per category; charts show the result,", domain.MinModifier, domain.MaxModifier)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  the overall rating uses base grades only."))
	b.WriteString("\n\n")

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
