package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"herosheet/internal/application"
	"herosheet/internal/domain"
)

// FormKind selects what a form edits
type FormKind int

const (
	FormFields FormKind = iota
	FormItem
	FormNote
	FormAddModifier
	FormRemoveModifier
)

func (k FormKind) title() string {
	switch k {
	case FormFields:
		return "Edit Character"
	case FormItem:
		return "New Magical Item"
	case FormNote:
		return "New Note"
	case FormAddModifier:
		return "Add Modifier"
	case FormRemoveModifier:
		return "Remove Modifier"
	default:
		return ""
	}
}

func (k FormKind) submitText() string {
	switch k {
	case FormFields:
		return "save"
	case FormRemoveModifier:
		return "remove"
	default:
		return "add"
	}
}

// FormModel edits the current character through an InputForm
type FormModel struct {
	ViewState
	session *application.Session
	kind    FormKind
	source  SourceRef
	form    *InputForm
}

// NewFormModel creates a new form view model
func NewFormModel(session *application.Session) *FormModel {
	return &FormModel{session: session}
}

// Kind returns the kind of the open form
func (m *FormModel) Kind() FormKind {
	return m.kind
}

// Form returns the underlying input form
func (m *FormModel) Form() *InputForm {
	return m.form
}

// Open builds the fields for kind. Field edits start from current values.
func (m *FormModel) Open(kind FormKind, src SourceRef) tea.Cmd {
	m.kind = kind
	m.source = src
	m.ClearMessage()

	switch kind {
	case FormFields:
		m.form = NewInputForm(
			NewInputField("Name", domain.UnnamedCharacter, 80),
			NewInputField("Profession", "e.g. Knight", 80),
			NewInputField("Advanced Profession", "e.g. Paladin", 80),
		)
		if c := m.session.Current(); c != nil {
			m.form.Prefill(c.Name, c.Profession, c.AdvancedProfession)
		}
	case FormItem:
		m.form = NewInputForm(
			NewInputField("Name", "Ring of Shadows", 80),
			NewInputField("Description", "What it does", 500),
		)
	case FormNote:
		m.form = NewInputForm(
			NewInputField("Title", "Oath", 80),
			NewInputField("Content", "Free text", 500),
		)
	case FormAddModifier:
		m.form = NewInputForm(
			NewInputField("Stat Set", "heroic or meat", 10),
			NewInputField("Category", "e.g. Stealth", 40),
			NewInputField("Value", fmt.Sprintf("%d..%d", domain.MinModifier, domain.MaxModifier), 2),
		)
	case FormRemoveModifier:
		m.form = NewInputForm(
			NewInputField("Stat Set", "heroic or meat", 10),
			NewInputField("Category", "e.g. Stealth", 40),
		)
	}
	return m.form.Init()
}

// Init initializes the form view
func (m *FormModel) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Update handles messages for the form view
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, m.back()
		case key.Matches(msg, m.form.Keys.Submit):
			if err := m.submit(); err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			return m, tea.Batch(edited, m.back())
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *FormModel) back() tea.Cmd {
	var id int64
	if c := m.session.Current(); c != nil {
		id = c.ID
	}
	return func() tea.Msg { return SwitchToProfileMsg{ID: id} }
}

// submit applies the form to the current character. The character is left
// unchanged when an error is returned.
func (m *FormModel) submit() error {
	v := m.form.Values()

	switch m.kind {
	case FormFields:
		return m.session.Edit(func(c *domain.Character) error {
			c.Name, c.Profession, c.AdvancedProfession = v[0], v[1], v[2]
			return nil
		})

	case FormItem:
		if err := application.ValidateRequired("name", v[0]); err != nil {
			return err
		}
		return m.session.Edit(func(c *domain.Character) error {
			c.Items = append(c.Items, domain.NewItem(v[0], v[1]))
			return nil
		})

	case FormNote:
		if err := application.ValidateRequired("title", v[0]); err != nil {
			return err
		}
		return m.session.Edit(func(c *domain.Character) error {
			c.Notes = append(c.Notes, domain.NewNote(v[0], v[1]))
			return nil
		})

	case FormAddModifier:
		set, cat, err := parseSetCategory(v[0], v[1])
		if err != nil {
			return err
		}
		value, err := strconv.Atoi(strings.TrimPrefix(v[2], "+"))
		if err != nil {
			return &application.ValidationError{Field: "modifier", Message: fmt.Sprintf("not a number: %q", v[2])}
		}
		return m.session.Edit(func(c *domain.Character) error {
			src, err := c.Source(m.source.Kind, m.source.Index)
			if err != nil {
				return err
			}
			return src.AddModifier(set, cat, value)
		})

	case FormRemoveModifier:
		set, cat, err := parseSetCategory(v[0], v[1])
		if err != nil {
			return err
		}
		return m.session.Edit(func(c *domain.Character) error {
			src, err := c.Source(m.source.Kind, m.source.Index)
			if err != nil {
				return err
			}
			if !src.RemoveModifier(set, cat) {
				return fmt.Errorf("no %s modifier for %s", set, cat)
			}
			return nil
		})
	}
	return nil
}

func parseSetCategory(set, category string) (domain.StatSet, domain.Category, error) {
	s, err := domain.ParseStatSet(set)
	if err != nil {
		return 0, "", err
	}
	c, err := domain.ParseCategory(s, category)
	if err != nil {
		return 0, "", err
	}
	return s, c, nil
}

// View renders the form view
func (m *FormModel) View() string {
	if m.form == nil {
		return ""
	}

	vb := NewViewBuilder().Title(m.kind.title())
	if c := m.session.Current(); c != nil {
		sub := c.DisplayName()
		if m.kind == FormAddModifier || m.kind == FormRemoveModifier {
			sub += fmt.Sprintf(", %s %d", m.source.Kind, m.source.Index+1)
		}
		vb.Subtitle(sub)
	}

	return vb.Raw(m.form.RenderFields()).
		BlankLine().BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp(m.kind.submitText())).
		String()
}
