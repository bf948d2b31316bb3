package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"herosheet/internal/adapters/tui/styles"
	"herosheet/internal/application"
	"herosheet/internal/domain"
)

// RosterKeyMap defines key bindings for the roster view
type RosterKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Open     key.Binding
	New      key.Binding
	Delete   key.Binding
	Sort     key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var RosterKeys = RosterKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// rosterChrome is the number of lines around the list (title, footer, help)
const rosterChrome = 10

// RosterModel lists every character
type RosterModel struct {
	ViewState
	session   *application.Session
	locale    string
	sortKey   application.SortKey
	paginator *Paginator
	chars     []*domain.Character
}

// NewRosterModel creates a new roster view model
func NewRosterModel(session *application.Session, sortKey application.SortKey, locale string) *RosterModel {
	m := &RosterModel{
		session:   session,
		locale:    locale,
		sortKey:   sortKey,
		paginator: NewPaginator(10),
	}
	m.Reload()
	return m
}

// Init initializes the roster view
func (m *RosterModel) Init() tea.Cmd {
	return nil
}

// Reload re-reads and re-sorts the collection, keeping the cursor on the
// same character when it still exists.
func (m *RosterModel) Reload() {
	var keep int64
	if c := m.Selected(); c != nil {
		keep = c.ID
	}

	m.chars = m.session.Characters(m.sortKey, m.locale)
	m.paginator.SetTotal(len(m.chars))

	for i, c := range m.chars {
		if c.ID == keep {
			m.paginator.SetCursor(i)
			return
		}
	}
}

// SortKey returns the active sort key
func (m *RosterModel) SortKey() application.SortKey {
	return m.sortKey
}

// Selected returns the character under the cursor
func (m *RosterModel) Selected() *domain.Character {
	if m.paginator == nil {
		return nil
	}
	i := m.paginator.Cursor()
	if i >= 0 && i < len(m.chars) {
		return m.chars[i]
	}
	return nil
}

// Update handles messages for the roster view
func (m *RosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, RosterKeys.Quit):
			return m, func() tea.Msg { return QuitRequestMsg{} }

		case key.Matches(msg, RosterKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, RosterKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, RosterKeys.PrevPage):
			m.paginator.PrevPage()
			return m, nil

		case key.Matches(msg, RosterKeys.NextPage):
			m.paginator.NextPage()
			return m, nil

		case key.Matches(msg, RosterKeys.Open):
			if c := m.Selected(); c != nil {
				id := c.ID
				return m, func() tea.Msg { return SwitchToProfileMsg{ID: id} }
			}
			return m, nil

		case key.Matches(msg, RosterKeys.New):
			c, err := m.session.Create(context.Background())
			if c == nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			if err != nil {
				m.SetMessage(err.Error(), true)
			}
			m.Reload()
			id := c.ID
			return m, func() tea.Msg { return SwitchToProfileMsg{ID: id} }

		case key.Matches(msg, RosterKeys.Delete):
			if c := m.Selected(); c != nil {
				return m, func() tea.Msg { return SwitchToDeleteMsg{Character: c} }
			}
			return m, nil

		case key.Matches(msg, RosterKeys.Sort):
			m.sortKey = m.sortKey.Next()
			m.Reload()
			m.SetMessage("Sorted by "+m.sortKey.Label(), false)
			return m, nil

		case key.Matches(msg, RosterKeys.Copy):
			if c := m.Selected(); c != nil {
				text := Summary(c)
				return m, func() tea.Msg { return CopySummaryMsg{Text: text} }
			}
			return m, nil

		case key.Matches(msg, RosterKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

// SetSize updates the view dimensions and the page size
func (m *RosterModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	if height > rosterChrome {
		m.paginator.SetPageSize(height - rosterChrome)
	}
}

// View renders the roster view
func (m *RosterModel) View() string {
	vb := NewViewBuilder().
		Title("herosheet").
		Subtitle(fmt.Sprintf("%d characters, sorted by %s", len(m.chars), m.sortKey.Label()))

	if len(m.chars) == 0 {
		vb.Muted("No characters yet. Press n to create one.").BlankLine()
	} else {
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			vb.Line(m.renderRow(m.chars[i], i == m.paginator.Cursor()))
		}
		vb.BlankLine()
		if m.paginator.TotalPages() > 1 {
			vb.Muted(m.paginator.PageLabel()).BlankLine()
		}
	}

	return vb.Message(m.Message, m.MessageErr).
		Help(RosterKeys.Up, RosterKeys.Down, RosterKeys.Open, RosterKeys.New,
			RosterKeys.Delete, RosterKeys.Sort, RosterKeys.Copy, RosterKeys.Help, RosterKeys.Quit).
		String()
}

func (m *RosterModel) renderRow(c *domain.Character, selected bool) string {
	prefix := styles.NoCur
	if selected {
		prefix = styles.Cursor
	}

	name := c.DisplayName()
	if selected {
		name = styles.RowSelected.Render(name)
	} else {
		name = styles.RowName.Render(name)
	}

	ratings := strings.Join([]string{
		"H " + styles.GradeBadge(domain.AverageGrade(c.Heroic)),
		"M " + styles.GradeBadge(domain.AverageGrade(c.Meat)),
	}, "  ")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		prefix,
		lipgloss.NewStyle().Width(28).Render(name),
		lipgloss.NewStyle().Width(32).Render(styles.RowDetail.Render(professions(c))),
		ratings,
	)
}
