package month

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calnote/internal/notes"
	"calnote/internal/session"
	"calnote/internal/tui/messages"
	"calnote/internal/tui/theme"
)

var (
	editorTitleStyle = theme.ModalTitle
	editorLabelStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Width(7)
	editorErrorStyle = lipgloss.NewStyle().Foreground(theme.Danger)
	editorHelpStyle  = theme.ModalHelp
	editorBoxStyle   = theme.ModalBox
)

const (
	fieldDate = iota
	fieldTitle
	fieldCount
)

// EditorModel is the add/edit note form
type EditorModel struct {
	mode   session.ModalMode
	inputs [fieldCount]textinput.Model
	focus  int
	Error  string
	Width  int
}

// NewEditor builds the form from the session's modal, pre-filling its fields
func NewEditor(modal session.Modal) *EditorModel {
	date := textinput.New()
	date.Placeholder = "yyyy-MM-dd"
	date.CharLimit = 10
	date.Width = 12
	date.Prompt = ""
	date.SetValue(modal.Date)

	title := textinput.New()
	title.Placeholder = "What is happening?"
	title.CharLimit = 256
	title.Width = 40
	title.Prompt = ""
	title.SetValue(modal.Title)

	m := &EditorModel{
		mode:   modal.Mode,
		inputs: [fieldCount]textinput.Model{date, title},
		focus:  fieldTitle,
		Width:  60,
	}
	m.inputs[fieldTitle].Focus()
	return m
}

// Init implements tea.Model
func (m *EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys; enter and esc produce an EditorResultMsg
func (m *EditorModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			date, title := m.Values()
			return func() tea.Msg {
				return messages.EditorResultMsg{Date: date, Title: title, Saved: true}
			}
		case "esc":
			return func() tea.Msg {
				return messages.EditorResultMsg{Cancelled: true}
			}
		case "tab", "down":
			return m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		}
		// Clear error when user types
		m.Error = ""
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *EditorModel) setFocus(field int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = field
	return m.inputs[m.focus].Focus()
}

// SetError shows a save failure; validation errors also move focus to their field
func (m *EditorModel) SetError(err error) {
	if err == nil {
		m.Error = ""
		return
	}
	m.Error = err.Error()

	var verr *notes.ValidationError
	if errors.As(err, &verr) {
		switch verr.Field {
		case "date":
			m.setFocus(fieldDate)
		case "title":
			m.setFocus(fieldTitle)
		}
	}
}

// Values returns the current date and title fields
func (m *EditorModel) Values() (string, string) {
	return m.inputs[fieldDate].Value(), m.inputs[fieldTitle].Value()
}

// View renders the editor box
func (m *EditorModel) View() string {
	var sb strings.Builder

	heading := "Add New Note"
	if m.mode == session.ModalEdit {
		heading = "Edit Note"
	}
	sb.WriteString(editorTitleStyle.Render(heading))
	sb.WriteString("\n\n")

	sb.WriteString(editorLabelStyle.Render("Date") + m.inputs[fieldDate].View() + "\n")
	sb.WriteString(editorLabelStyle.Render("Title") + m.inputs[fieldTitle].View() + "\n")

	if m.Error != "" {
		sb.WriteString("\n" + editorErrorStyle.Render("Error: "+m.Error) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(editorHelpStyle.Render("[tab] next field  [enter] save  [esc] cancel"))

	return editorBoxStyle.Width(m.Width).Render(sb.String())
}
