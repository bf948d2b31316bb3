package views

import "herosheet/internal/domain"

// SourceRef addresses an item or note of the current character
type SourceRef struct {
	Kind  domain.SourceKind
	Index int
}

// Messages for view switching
type SwitchToRosterMsg struct{}

type SwitchToProfileMsg struct {
	ID int64
}

type SwitchToHelpMsg struct{}

type CloseHelpMsg struct{}

type SwitchToDeleteMsg struct {
	Character *domain.Character
}

type SwitchToFormMsg struct {
	Kind   FormKind
	Source SourceRef
}

// EditedMsg reports that the current character changed in memory
type EditedMsg struct{}

// QuitRequestMsg asks the app to flush pending edits and exit
type QuitRequestMsg struct{}

// CopySummaryMsg asks the app to put text on the clipboard
type CopySummaryMsg struct {
	Text string
}

// ExportRequestMsg asks the app to export a character
type ExportRequestMsg struct {
	ID int64
	// Open shows the written document in the system viewer
	Open bool
}

// OpenEditorMsg asks the app to edit the text of a source in $EDITOR
type OpenEditorMsg struct {
	Source SourceRef
}
