package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"calnote/internal/notes"
)

// EditorResultMsg is sent when the note editor is saved or cancelled
type EditorResultMsg struct {
	Date      string
	Title     string
	Saved     bool
	Cancelled bool
}

// ConfirmationResultMsg is sent when the user confirms or cancels
type ConfirmationResultMsg struct {
	Confirmed bool
	Cancelled bool
}

// ExportRequestMsg asks the app to export a snapshot of the store
type ExportRequestMsg struct {
	Notes notes.Store
}

// ExportDoneMsg reports where an export landed
type ExportDoneMsg struct {
	Path string
	Err  error
}

// StatusMsg shows a one-line message in the status bar
type StatusMsg struct {
	Text    string
	IsError bool
}

// Status returns a command that posts a status line
func Status(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}
