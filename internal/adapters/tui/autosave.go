package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AutosaveTickMsg fires when an autosave delay has elapsed
type AutosaveTickMsg struct {
	Seq uint64
}

// Autosaver debounces persistence. Every edit schedules a tick tagged with
// a fresh sequence number; only the tick carrying the latest number is due.
type Autosaver struct {
	delay time.Duration
	seq   uint64
}

// NewAutosaver creates an autosaver with the given delay
func NewAutosaver(delay time.Duration) *Autosaver {
	return &Autosaver{delay: delay}
}

// Schedule supersedes any pending tick and returns the new one
func (a *Autosaver) Schedule() tea.Cmd {
	a.seq++
	seq := a.seq
	if a.delay <= 0 {
		return func() tea.Msg { return AutosaveTickMsg{Seq: seq} }
	}
	return tea.Tick(a.delay, func(time.Time) tea.Msg {
		return AutosaveTickMsg{Seq: seq}
	})
}

// Due reports whether msg is the latest scheduled tick
func (a *Autosaver) Due(msg AutosaveTickMsg) bool {
	return msg.Seq == a.seq
}

// Cancel makes every pending tick stale
func (a *Autosaver) Cancel() {
	a.seq++
}
