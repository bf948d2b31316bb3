package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"herosheet/internal/ports"
)

// Opener implements ports.TextEditor
type Opener struct {
	lookup func(string) string
}

// Ensure Opener implements TextEditor
var _ ports.TextEditor = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookup: os.Getenv}
}

// Available reports whether an editor could be found
func (o *Opener) Available() bool {
	return o.findEditor() != ""
}

// Edit writes text to a scratch file and returns the pending edit
func (o *Opener) Edit(text string) (ports.TextEdit, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	f, err := os.CreateTemp("", "herosheet-*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}

	// $EDITOR may carry flags, e.g. "code --wait"
	fields := strings.Fields(editor)
	args := append(fields[1:], f.Name())
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return &textEdit{cmd: cmd, path: f.Name()}, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if editor := o.lookup("EDITOR"); editor != "" {
		return editor
	}

	if visual := o.lookup("VISUAL"); visual != "" {
		return visual
	}

	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}

type textEdit struct {
	cmd  *exec.Cmd
	path string
}

func (e *textEdit) Command() *exec.Cmd {
	return e.cmd
}

func (e *textEdit) Finish() (string, error) {
	defer os.Remove(e.path)

	content, err := os.ReadFile(e.path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited text: %w", err)
	}
	return strings.TrimRight(string(content), "\n"), nil
}
