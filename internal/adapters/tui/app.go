package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"herosheet/internal/adapters/tui/views"
	"herosheet/internal/application"
	"herosheet/internal/application/commands"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewRoster ViewState = iota
	ViewProfile
	ViewForm
	ViewDelete
	ViewHelp
)

// Options wires the app to its collaborators
type Options struct {
	Session       *application.Session
	Repo          ports.CharacterRepository
	Exporter      ports.Exporter
	Editor        ports.TextEditor
	Viewer        ports.DocumentViewer
	Chart         ports.ChartRenderer
	Logger        *zap.Logger
	AutosaveDelay time.Duration
	Sort          application.SortKey
	Locale        string
	// CopyText defaults to the system clipboard
	CopyText func(string) error
	// Now defaults to time.Now
	Now func() time.Time
}

// App is the main TUI application model
type App struct {
	ctx      context.Context
	session  *application.Session
	repo     ports.CharacterRepository
	exporter ports.Exporter
	editor   ports.TextEditor
	viewer   ports.DocumentViewer
	logger   *zap.Logger
	autosave *Autosaver
	copyText func(string) error
	now      func() time.Time

	state    ViewState
	previous ViewState
	roster   *views.RosterModel
	profile  *views.ProfileModel
	form     *views.FormModel
	delete   *views.DeleteModel
	help     *views.HelpModel

	status    string
	statusErr bool

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CopyText == nil {
		opts.CopyText = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &App{
		ctx:      context.Background(),
		session:  opts.Session,
		repo:     opts.Repo,
		exporter: opts.Exporter,
		editor:   opts.Editor,
		viewer:   opts.Viewer,
		logger:   opts.Logger,
		autosave: NewAutosaver(opts.AutosaveDelay),
		copyText: opts.CopyText,
		now:      opts.Now,
		state:    ViewRoster,
		roster:   views.NewRosterModel(opts.Session, opts.Sort, opts.Locale),
		profile:  views.NewProfileModel(opts.Session, opts.Chart),
		form:     views.NewFormModel(opts.Session),
		delete:   views.NewDeleteModel(opts.Session),
		help:     views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.roster.Init()
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}

// flush persists pending edits and reports failures on the status line
func (a *App) flush() {
	a.autosave.Cancel()
	if err := a.session.Flush(a.ctx); err != nil {
		a.logger.Warn("save failed", zap.Error(err))
		a.setStatus(err.Error(), true)
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.roster.SetSize(msg.Width, msg.Height)
		a.profile.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, a.quit()
		}
		a.status = ""

	case views.QuitRequestMsg:
		return a, a.quit()

	// View switching messages
	case views.SwitchToRosterMsg:
		if err := a.session.Deselect(a.ctx); err != nil {
			a.setStatus(err.Error(), true)
		}
		a.autosave.Cancel()
		a.roster.Reload()
		a.state = ViewRoster
		return a, nil

	case views.SwitchToProfileMsg:
		a.autosave.Cancel()
		err := a.session.Select(a.ctx, msg.ID)
		switch {
		case errors.Is(err, application.ErrNotFound):
			a.setStatus(err.Error(), true)
			a.roster.Reload()
			a.state = ViewRoster
			return a, nil
		case err != nil:
			a.setStatus(err.Error(), true)
		}
		if a.state == ViewRoster {
			a.profile.Reset()
		}
		a.state = ViewProfile
		return a, nil

	case views.SwitchToFormMsg:
		a.state = ViewForm
		return a, a.form.Open(msg.Kind, msg.Source)

	case views.SwitchToDeleteMsg:
		a.delete.SetTarget(msg.Character)
		a.state = ViewDelete
		return a, nil

	case views.SwitchToHelpMsg:
		a.previous = a.state
		a.state = ViewHelp
		return a, nil

	case views.CloseHelpMsg:
		a.state = a.previous
		return a, nil

	// Edits and persistence
	case views.EditedMsg:
		return a, a.autosave.Schedule()

	case AutosaveTickMsg:
		if a.autosave.Due(msg) {
			if err := a.session.Flush(a.ctx); err != nil {
				a.logger.Warn("autosave failed", zap.Error(err))
				a.setStatus(err.Error(), true)
			}
		}
		return a, nil

	case views.DeleteConfirmedMsg:
		// The session is only touched from Update; the result comes back as a message
		result := a.delete.Apply(a.ctx, msg)
		return a, func() tea.Msg { return result }

	case views.DeleteSuccessMsg:
		a.autosave.Cancel()
		a.roster.Reload()
		a.roster.SetMessage(msg.Message, false)
		a.state = ViewRoster
		return a, nil

	case views.DeleteErrMsg:
		a.delete.SetMessage(msg.Err.Error(), true)
		return a, nil

	// Side effects
	case views.CopySummaryMsg:
		if err := a.copyText(msg.Text); err != nil {
			a.setStatus(fmt.Sprintf("clipboard unavailable: %v", err), true)
		} else {
			a.setStatus("Copied to clipboard", false)
		}
		return a, nil

	case views.ExportRequestMsg:
		a.flush()
		res, err := commands.NewExportCommand(a.repo, a.exporter, fmt.Sprint(msg.ID), "").Execute(a.ctx)
		if err != nil {
			a.logger.Warn("export failed", zap.Int64("id", msg.ID), zap.Error(err))
			a.setStatus(err.Error(), true)
			return a, nil
		}
		a.setStatus(res.Message, false)
		if msg.Open && a.viewer != nil {
			if err := a.viewer.Open(res.Path); err != nil {
				a.setStatus(fmt.Sprintf("exported to %s but could not open it: %v", res.Path, err), true)
			}
		}
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Source)

	case editorFinishedMsg:
		return a, a.finishEditor(msg)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewRoster:
		_, cmd = a.roster.Update(msg)
	case ViewProfile:
		_, cmd = a.profile.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) quit() tea.Cmd {
	a.flush()
	return tea.Quit
}

// editorFinishedMsg is sent when the external editor exits
type editorFinishedMsg struct {
	source views.SourceRef
	edit   ports.TextEdit
	err    error
}

func sourceText(c *domain.Character, src views.SourceRef) (string, bool) {
	switch src.Kind {
	case domain.SourceItem:
		if src.Index >= 0 && src.Index < len(c.Items) {
			return c.Items[src.Index].Description, true
		}
	case domain.SourceNote:
		if src.Index >= 0 && src.Index < len(c.Notes) {
			return c.Notes[src.Index].Content, true
		}
	}
	return "", false
}

func (a *App) openEditor(src views.SourceRef) tea.Cmd {
	if a.editor == nil {
		a.setStatus("no editor configured", true)
		return nil
	}
	c := a.session.Current()
	if c == nil {
		a.setStatus(application.ErrNoSelection.Error(), true)
		return nil
	}
	text, ok := sourceText(c, src)
	if !ok {
		a.setStatus(fmt.Sprintf("%s %d no longer exists", src.Kind, src.Index+1), true)
		return nil
	}

	edit, err := a.editor.Edit(text)
	if err != nil {
		a.setStatus(err.Error(), true)
		return nil
	}
	return tea.ExecProcess(edit.Command(), func(err error) tea.Msg {
		return editorFinishedMsg{source: src, edit: edit, err: err}
	})
}

func (a *App) finishEditor(msg editorFinishedMsg) tea.Cmd {
	text, err := msg.edit.Finish()
	if msg.err != nil {
		a.setStatus(fmt.Sprintf("editor exited: %v", msg.err), true)
		return nil
	}
	if err != nil {
		a.setStatus(err.Error(), true)
		return nil
	}

	err = a.session.Edit(func(c *domain.Character) error {
		switch msg.source.Kind {
		case domain.SourceItem:
			if msg.source.Index < len(c.Items) {
				c.Items[msg.source.Index].Description = text
				return nil
			}
		case domain.SourceNote:
			if msg.source.Index < len(c.Notes) {
				c.Notes[msg.source.Index].Content = text
				return nil
			}
		}
		return fmt.Errorf("%s %d no longer exists", msg.source.Kind, msg.source.Index+1)
	})
	if err != nil {
		a.setStatus(err.Error(), true)
		return nil
	}
	a.setStatus("Text updated", false)
	return a.autosave.Schedule()
}

// View renders the application
func (a *App) View() string {
	var body string
	switch a.state {
	case ViewRoster:
		body = a.roster.View()
	case ViewProfile:
		body = a.profile.View()
	case ViewForm:
		body = a.form.View()
	case ViewDelete:
		body = a.delete.View()
	case ViewHelp:
		body = a.help.View()
	}

	return body + "\n" + a.statusLine()
}

func (a *App) statusLine() string {
	saved := views.RenderSaveStatus(a.session.Dirty(), a.session.LastSaved(), a.now())
	line := views.RenderStatusBar("herosheet", saved)
	if a.status != "" {
		line += "  " + views.RenderMessage(a.status, a.statusErr)
	}
	return line
}
