package month

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"calnote/internal/notes"
	"calnote/internal/tui/messages"
	"calnote/internal/tui/theme"
)

var (
	confirmBoxStyle   = theme.ModalBox
	confirmTitleStyle = theme.Title
	confirmDateStyle  = theme.Subtitle
	confirmYesStyle   = theme.Ok
	confirmNoStyle    = theme.Error
)

// DeleteConfirm asks before a note is removed
type DeleteConfirm struct {
	Note  notes.Note
	Width int
}

// NewDeleteConfirm creates the confirmation for n
func NewDeleteConfirm(n notes.Note, width int) *DeleteConfirm {
	return &DeleteConfirm{Note: n, Width: width}
}

// Update maps y/enter and n/esc to a ConfirmationResultMsg; other keys are ignored
func (c *DeleteConfirm) Update(msg tea.KeyMsg) tea.Cmd {
	var result messages.ConfirmationResultMsg
	switch msg.String() {
	case "y", "Y", "enter":
		result.Confirmed = true
	case "n", "N", "esc":
		result.Cancelled = true
	default:
		return nil
	}
	return func() tea.Msg { return result }
}

// View renders the confirmation box
func (c *DeleteConfirm) View() string {
	var sb strings.Builder
	sb.WriteString(confirmTitleStyle.Render("Delete this note?") + "\n\n")
	sb.WriteString(confirmDateStyle.Render(c.Note.Date.Format("Mon, Jan 2 2006")) + "\n")

	title := c.Note.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	sb.WriteString(title + "\n\n")

	sb.WriteString(confirmYesStyle.Render("[y]") + " Yes  ")
	sb.WriteString(confirmNoStyle.Render("[n/esc]") + " No")

	return confirmBoxStyle.Width(c.Width).Render(sb.String())
}
