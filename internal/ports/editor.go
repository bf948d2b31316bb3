package ports

import "os/exec"

// TextEdit is one round trip of free text through an external editor
type TextEdit interface {
	// Command returns the process to run; it is meant for bubbletea's ExecProcess
	Command() *exec.Cmd

	// Finish reads back the edited text and removes the scratch file
	Finish() (string, error)
}

// TextEditor opens free text in the user's preferred editor
type TextEditor interface {
	// Edit writes text to a scratch file and prepares the editor process.
	// It uses $EDITOR, then $VISUAL, falling back to common editors.
	Edit(text string) (TextEdit, error)
}
