package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"herosheet/internal/adapters/tui/styles"
	"herosheet/internal/application"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// ProfileKeyMap defines key bindings for the profile view
type ProfileKeyMap struct {
	NextSection    key.Binding
	PrevSection    key.Binding
	Up             key.Binding
	Down           key.Binding
	Lower          key.Binding
	Raise          key.Binding
	EditFields     key.Binding
	AddItem        key.Binding
	AddNote        key.Binding
	AddModifier    key.Binding
	RemoveModifier key.Binding
	RemoveSource   key.Binding
	EditText       key.Binding
	Export         key.Binding
	ExportOpen     key.Binding
	Help           key.Binding
	Back           key.Binding
}

var ProfileKeys = ProfileKeyMap{
	NextSection: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "section"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev section"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Lower: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "lower"),
	),
	Raise: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "raise"),
	),
	EditFields: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	AddItem: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "item"),
	),
	AddNote: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "note"),
	),
	AddModifier: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "modifier"),
	),
	RemoveModifier: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "drop modifier"),
	),
	RemoveSource: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove"),
	),
	EditText: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "$EDITOR"),
	),
	Export: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "export"),
	),
	ExportOpen: key.NewBinding(
		key.WithKeys("P"),
		key.WithHelp("P", "export & open"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// Section is a focusable block of the profile view
type Section int

const (
	SectionFields Section = iota
	SectionHeroic
	SectionMeat
	SectionItems
	SectionNotes
	sectionCount
)

func (s Section) title() string {
	switch s {
	case SectionFields:
		return "Character"
	case SectionHeroic:
		return "Heroic Stats"
	case SectionMeat:
		return "Meat Stats"
	case SectionItems:
		return "Magical Items"
	case SectionNotes:
		return "Notes"
	default:
		return ""
	}
}

// ProfileModel shows and edits the current character
type ProfileModel struct {
	ViewState
	session *application.Session
	chart   ports.ChartRenderer
	section Section
	cursors [sectionCount]int
}

// NewProfileModel creates a new profile view model
func NewProfileModel(session *application.Session, chart ports.ChartRenderer) *ProfileModel {
	return &ProfileModel{
		session: session,
		chart:   chart,
	}
}

// Init initializes the profile view
func (m *ProfileModel) Init() tea.Cmd {
	return nil
}

// Reset moves focus back to the top for a newly opened character
func (m *ProfileModel) Reset() {
	m.section = SectionFields
	m.cursors = [sectionCount]int{}
	m.ClearMessage()
}

// Section returns the focused section
func (m *ProfileModel) Section() Section {
	return m.section
}

// Cursor returns the row focused within the current section
func (m *ProfileModel) Cursor() int {
	return m.cursors[m.section]
}

func (m *ProfileModel) rows(s Section) int {
	c := m.session.Current()
	if c == nil {
		return 0
	}
	switch s {
	case SectionFields:
		return 3
	case SectionHeroic:
		return len(domain.Heroic.Categories())
	case SectionMeat:
		return len(domain.Meat.Categories())
	case SectionItems:
		return len(c.Items)
	case SectionNotes:
		return len(c.Notes)
	default:
		return 0
	}
}

func (m *ProfileModel) clampCursor() {
	n := m.rows(m.section)
	if m.cursors[m.section] >= n {
		m.cursors[m.section] = max(n-1, 0)
	}
}

// selectedSource returns the item or note under the cursor
func (m *ProfileModel) selectedSource() (SourceRef, bool) {
	if m.rows(m.section) == 0 {
		return SourceRef{}, false
	}
	switch m.section {
	case SectionItems:
		return SourceRef{Kind: domain.SourceItem, Index: m.cursors[m.section]}, true
	case SectionNotes:
		return SourceRef{Kind: domain.SourceNote, Index: m.cursors[m.section]}, true
	default:
		return SourceRef{}, false
	}
}

func (m *ProfileModel) statSet() (domain.StatSet, bool) {
	switch m.section {
	case SectionHeroic:
		return domain.Heroic, true
	case SectionMeat:
		return domain.Meat, true
	default:
		return 0, false
	}
}

func edited() tea.Msg { return EditedMsg{} }

// Update handles messages for the profile view
func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		c := m.session.Current()
		if c == nil {
			return m, func() tea.Msg { return SwitchToRosterMsg{} }
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, ProfileKeys.Back):
			return m, func() tea.Msg { return SwitchToRosterMsg{} }

		case key.Matches(msg, ProfileKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, ProfileKeys.NextSection):
			m.section = (m.section + 1) % sectionCount
			m.clampCursor()
			return m, nil

		case key.Matches(msg, ProfileKeys.PrevSection):
			m.section = (m.section + sectionCount - 1) % sectionCount
			m.clampCursor()
			return m, nil

		case key.Matches(msg, ProfileKeys.Up):
			if m.cursors[m.section] > 0 {
				m.cursors[m.section]--
			}
			return m, nil

		case key.Matches(msg, ProfileKeys.Down):
			if m.cursors[m.section] < m.rows(m.section)-1 {
				m.cursors[m.section]++
			}
			return m, nil

		case key.Matches(msg, ProfileKeys.Lower), key.Matches(msg, ProfileKeys.Raise):
			set, ok := m.statSet()
			if !ok {
				return m, nil
			}
			raise := key.Matches(msg, ProfileKeys.Raise)
			return m, m.stepGrade(set, raise)

		case key.Matches(msg, ProfileKeys.EditFields):
			return m, switchToForm(FormFields, SourceRef{})

		case key.Matches(msg, ProfileKeys.AddItem):
			return m, switchToForm(FormItem, SourceRef{})

		case key.Matches(msg, ProfileKeys.AddNote):
			return m, switchToForm(FormNote, SourceRef{})

		case key.Matches(msg, ProfileKeys.AddModifier), key.Matches(msg, ProfileKeys.RemoveModifier):
			src, ok := m.selectedSource()
			if !ok {
				m.SetMessage("Select an item or note first", true)
				return m, nil
			}
			kind := FormAddModifier
			if key.Matches(msg, ProfileKeys.RemoveModifier) {
				kind = FormRemoveModifier
			}
			return m, switchToForm(kind, src)

		case key.Matches(msg, ProfileKeys.RemoveSource):
			src, ok := m.selectedSource()
			if !ok {
				m.SetMessage("Select an item or note first", true)
				return m, nil
			}
			if err := m.session.Edit(func(c *domain.Character) error {
				return c.RemoveSource(src.Kind, src.Index)
			}); err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			m.clampCursor()
			m.SetMessage(fmt.Sprintf("Removed %s", src.Kind), false)
			return m, edited

		case key.Matches(msg, ProfileKeys.EditText):
			src, ok := m.selectedSource()
			if !ok {
				m.SetMessage("Select an item or note first", true)
				return m, nil
			}
			return m, func() tea.Msg { return OpenEditorMsg{Source: src} }

		case key.Matches(msg, ProfileKeys.Export):
			id := c.ID
			return m, func() tea.Msg { return ExportRequestMsg{ID: id} }

		case key.Matches(msg, ProfileKeys.ExportOpen):
			id := c.ID
			return m, func() tea.Msg { return ExportRequestMsg{ID: id, Open: true} }
		}
	}

	return m, nil
}

func (m *ProfileModel) stepGrade(set domain.StatSet, raise bool) tea.Cmd {
	cat := set.Categories()[m.cursors[m.section]]
	var next domain.Grade
	err := m.session.Edit(func(c *domain.Character) error {
		current := c.StatBlock(set)[cat]
		next = current.Lower()
		if raise {
			next = current.Raise()
		}
		if next == current {
			return errUnchanged
		}
		return c.SetGrade(set, cat, next)
	})
	switch {
	case errors.Is(err, errUnchanged):
		return nil
	case err != nil:
		m.SetMessage(err.Error(), true)
		return nil
	}
	return edited
}

var errUnchanged = errors.New("grade unchanged")

func switchToForm(kind FormKind, src SourceRef) tea.Cmd {
	return func() tea.Msg { return SwitchToFormMsg{Kind: kind, Source: src} }
}

// View renders the profile view
func (m *ProfileModel) View() string {
	c := m.session.Current()
	if c == nil {
		return NewViewBuilder().Muted("No character selected").String()
	}

	vb := NewViewBuilder().Title(c.DisplayName())

	vb.Line(m.sectionHeader(SectionFields))
	fields := []struct{ label, value string }{
		{"Name", c.Name},
		{"Profession", c.Profession},
		{"Advanced Profession", c.AdvancedProfession},
	}
	for i, f := range fields {
		value := f.value
		if value == "" {
			value = RenderMuted("-")
		}
		vb.Line(m.marker(SectionFields, i) + RenderLabelValue(f.label, value))
	}
	vb.BlankLine()

	for _, p := range application.Profiles(c) {
		section := SectionHeroic
		if p.Set == domain.Meat {
			section = SectionMeat
		}
		vb.Raw(m.renderProfile(section, p)).BlankLine().BlankLine()
	}

	vb.Line(m.sectionHeader(SectionItems))
	if len(c.Items) == 0 {
		vb.Muted("  none")
	}
	for i := range c.Items {
		vb.Line(m.marker(SectionItems, i) + renderSource(&c.Items[i], c.Items[i].ModifierSet))
	}
	vb.BlankLine()

	vb.Line(m.sectionHeader(SectionNotes))
	if len(c.Notes) == 0 {
		vb.Muted("  none")
	}
	for i := range c.Notes {
		vb.Line(m.marker(SectionNotes, i) + renderSource(&c.Notes[i], c.Notes[i].ModifierSet))
	}
	vb.BlankLine()

	return vb.Message(m.Message, m.MessageErr).
		Help(m.helpBindings()...).
		String()
}

func (m *ProfileModel) helpBindings() []key.Binding {
	bindings := []key.Binding{ProfileKeys.NextSection, ProfileKeys.Up, ProfileKeys.Down}
	switch m.section {
	case SectionHeroic, SectionMeat:
		bindings = append(bindings, ProfileKeys.Lower, ProfileKeys.Raise)
	case SectionItems, SectionNotes:
		bindings = append(bindings, ProfileKeys.AddModifier, ProfileKeys.RemoveModifier,
			ProfileKeys.RemoveSource, ProfileKeys.EditText)
	}
	return append(bindings, ProfileKeys.EditFields, ProfileKeys.AddItem, ProfileKeys.AddNote,
		ProfileKeys.Export, ProfileKeys.ExportOpen, ProfileKeys.Help, ProfileKeys.Back)
}

func (m *ProfileModel) sectionHeader(s Section) string {
	if s == m.section {
		return styles.SectionFocused.Render(s.title())
	}
	return styles.Section.Render(s.title())
}

func (m *ProfileModel) marker(s Section, row int) string {
	if s == m.section && m.cursors[s] == row {
		return styles.Cursor
	}
	return styles.NoCur
}

// renderProfile draws the chart of display values and annotates each axis
// with its base grade and modifier sum. The overall rating comes from base
// grades only.
func (m *ProfileModel) renderProfile(section Section, p domain.StatProfile) string {
	var b strings.Builder
	b.WriteString(m.sectionHeader(section))
	b.WriteString("  ")
	b.WriteString(RenderLabelValue("Overall", styles.GradeBadge(p.Overall)+" "+RenderMuted(p.Overall.Description())))
	b.WriteString("\n")

	lines := strings.Split(m.chart.Render("", p.Axes, p.Display), "\n")
	for i, line := range lines {
		axis := i - 1 // first line is the scale
		if axis < 0 || axis >= len(p.Axes) {
			b.WriteString(styles.NoCur + line)
		} else {
			b.WriteString(m.marker(section, axis))
			b.WriteString(line)
			b.WriteString(RenderMuted(fmt.Sprintf("  base %s", p.Base[axis])))
			if mod := styles.ModifierText(p.Modifiers[axis]); mod != "" {
				b.WriteString(" ")
				b.WriteString(mod)
			}
		}
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderSource(src domain.Modifiable, mods domain.ModifierSet) string {
	var b strings.Builder
	label := src.Label()
	if label == "" {
		label = "(untitled)"
	}
	b.WriteString(styles.RowName.Render(label))
	if text := firstLine(src.Text()); text != "" {
		b.WriteString(" ")
		b.WriteString(RenderMuted(text))
	}
	for _, set := range domain.StatSets() {
		values := mods.Modifiers(set)
		for _, cat := range set.Categories() {
			if v, ok := values[cat]; ok {
				b.WriteString(fmt.Sprintf("  [%s %s %+d]", set.Title(), cat, v))
			}
		}
	}
	return b.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}
