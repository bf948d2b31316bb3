package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"herosheet/internal/adapters/tui/styles"
	"herosheet/internal/application"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
	session *application.Session
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(session *application.Session) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		session:           session,
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return m.doDelete() },
			func() tea.Msg { return SwitchToRosterMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

// doDelete runs from a tea.Cmd but the session is only touched by the
// app once the result message arrives.
func (m *DeleteModel) doDelete() tea.Msg {
	if m.Target == nil {
		return DeleteErrMsg{Err: fmt.Errorf("no character selected")}
	}
	return DeleteConfirmedMsg{ID: m.Target.ID, Name: m.Target.DisplayName()}
}

// Apply removes the confirmed character through the session
func (m *DeleteModel) Apply(ctx context.Context, msg DeleteConfirmedMsg) tea.Msg {
	if err := m.session.Delete(ctx, msg.ID); err != nil {
		return DeleteErrMsg{Err: err}
	}
	return DeleteSuccessMsg{
		Message: fmt.Sprintf("Deleted %s", msg.Name),
	}
}

// DeleteConfirmedMsg carries a confirmed deletion back to the update loop
type DeleteConfirmedMsg struct {
	ID   int64
	Name string
}

// DeleteSuccessMsg indicates successful deletion
type DeleteSuccessMsg struct {
	Message string
}

// DeleteErrMsg indicates an error during deletion
type DeleteErrMsg struct {
	Err error
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	vb := NewViewBuilder().
		Title("Delete Confirmation").
		Raw(styles.ErrorMsg.Render("This action cannot be undone!")).
		BlankLine().BlankLine().
		Raw(RenderTargetInfo(m.Target, "Delete")).
		BlankLine().BlankLine()

	if m.Target != nil && len(m.Target.Items)+len(m.Target.Notes) > 0 {
		vb.Muted("  Its items and notes will be deleted too.").BlankLine()
	}

	return vb.Message(m.Message, m.MessageErr).
		Raw(RenderConfirmPrompt("Are you sure?")).
		String()
}
