package month

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calnote/internal/calendar"
	"calnote/internal/notes"
	"calnote/internal/session"
	"calnote/internal/tui/messages"
	"calnote/internal/tui/shared"
)

// MonthModel is the month calendar with a notes panel for the selected day
type MonthModel struct {
	state session.State
	today calendar.Date

	// Detail panel: notes for the selected day
	detailIdx int
	inDetail  bool

	editor  *EditorModel
	confirm *DeleteConfirm

	width  int
	height int
}

// NewMonthModel creates the month view over an initial session state
func NewMonthModel(state session.State, today calendar.Date) MonthModel {
	return MonthModel{state: state, today: today}
}

// State returns the current session state
func (m MonthModel) State() session.State {
	return m.state
}

// SetSize updates the view dimensions
func (m *MonthModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInModalState reports whether the editor or a confirmation owns the keyboard
func (m MonthModel) IsInModalState() bool {
	return m.editor != nil || m.confirm != nil
}

// InDetail reports whether keys navigate the notes panel
func (m MonthModel) InDetail() bool {
	return m.inDetail
}

func (m *MonthModel) clampDetail() {
	count := len(m.state.SelectedNotes())
	if m.detailIdx >= count {
		m.detailIdx = max(0, count-1)
	}
	if count == 0 {
		m.inDetail = false
	}
}

func (m MonthModel) selectedNote() (notes.Note, bool) {
	list := m.state.SelectedNotes()
	if m.detailIdx < 0 || m.detailIdx >= len(list) {
		return notes.Note{}, false
	}
	return list[m.detailIdx], true
}

// Update handles messages for the month view
func (m MonthModel) Update(msg tea.Msg) (MonthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.EditorResultMsg:
		return m.handleEditorResult(msg)

	case messages.ConfirmationResultMsg:
		return m.handleConfirmation(msg)

	case tea.KeyMsg:
		if m.editor != nil {
			return m, m.editor.Update(msg)
		}
		if m.confirm != nil {
			return m, m.confirm.Update(msg)
		}
		if m.inDetail {
			return m.updateDetail(msg)
		}
		return m.updateCalendar(msg)
	}

	// Cursor blink and friends go to the open editor
	if m.editor != nil {
		return m, m.editor.Update(msg)
	}
	return m, nil
}

func (m MonthModel) handleEditorResult(msg messages.EditorResultMsg) (MonthModel, tea.Cmd) {
	if m.editor == nil {
		return m, nil
	}

	if msg.Cancelled {
		m.state = m.state.Cancel()
		m.editor = nil
		return m, nil
	}

	editing := m.state.Modal.Mode == session.ModalEdit
	m.state = m.state.SetForm(msg.Date, msg.Title)
	next, err := m.state.Save()
	if err != nil {
		m.editor.SetError(err)
		return m, nil
	}

	m.state = next
	m.editor = nil
	m.clampDetail()

	if editing {
		return m, messages.Status("Note updated")
	}
	return m, messages.Status("Note added")
}

func (m MonthModel) handleConfirmation(msg messages.ConfirmationResultMsg) (MonthModel, tea.Cmd) {
	if m.confirm == nil {
		return m, nil
	}
	target := m.confirm.Note
	m.confirm = nil

	if !msg.Confirmed {
		return m, nil
	}

	var ok bool
	m.state, ok = m.state.Delete(target)
	m.clampDetail()
	if !ok {
		return m, messages.Status("Note was already gone")
	}
	return m, messages.Status("Note deleted")
}

func (m MonthModel) updateCalendar(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		return m.moveSelection(-1)
	case "l", "right":
		return m.moveSelection(1)
	case "k", "up":
		return m.moveSelection(-calendar.DaysPerWeek)
	case "j", "down":
		return m.moveSelection(calendar.DaysPerWeek)
	case "H", "[":
		return m.stepMonth(-1)
	case "L", "]":
		return m.stepMonth(1)
	case "t":
		m.state = m.state.Today(m.today)
		m.detailIdx = 0
	case "a", "n":
		return m.openCreate()
	case "enter":
		// Enter detail panel if there are notes
		if len(m.state.SelectedNotes()) > 0 {
			m.inDetail = true
			m.detailIdx = 0
		}
	case "x":
		store := m.state.Notes
		return m, func() tea.Msg {
			return messages.ExportRequestMsg{Notes: store}
		}
	}
	return m, nil
}

func (m MonthModel) updateDetail(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.detailIdx < len(m.state.SelectedNotes())-1 {
			m.detailIdx++
		}
	case "k", "up":
		if m.detailIdx > 0 {
			m.detailIdx--
		}
	case "esc":
		m.inDetail = false
	case "e", "enter":
		if n, ok := m.selectedNote(); ok {
			m.state = m.state.OpenEdit(n)
			m.editor = NewEditor(m.state.Modal)
			m.editor.Width = m.modalWidth()
			return m, m.editor.Init()
		}
	case "d":
		if n, ok := m.selectedNote(); ok {
			m.confirm = NewDeleteConfirm(n, m.modalWidth())
		}
	case "a", "n":
		return m.openCreate()
	}
	return m, nil
}

func (m MonthModel) moveSelection(days int) (MonthModel, tea.Cmd) {
	next, ok := m.state.MoveSelection(days)
	if !ok {
		return m, clampStatus(days)
	}
	m.state = next
	m.detailIdx = 0
	return m, nil
}

func (m MonthModel) stepMonth(direction int) (MonthModel, tea.Cmd) {
	next, ok := m.state.StepMonth(direction)
	if !ok {
		return m, clampStatus(direction)
	}
	m.state = next
	m.detailIdx = 0
	return m, nil
}

func clampStatus(direction int) tea.Cmd {
	text := "Already at the last month"
	if direction < 0 {
		text = "Already at the first month"
	}
	return func() tea.Msg {
		return messages.StatusMsg{Text: text, IsError: true}
	}
}

func (m MonthModel) openCreate() (MonthModel, tea.Cmd) {
	m.state = m.state.OpenCreate()
	m.editor = NewEditor(m.state.Modal)
	m.editor.Width = m.modalWidth()
	return m, m.editor.Init()
}

func (m MonthModel) modalWidth() int {
	if m.width > 0 && m.width < 64 {
		return max(30, m.width-4)
	}
	return 60
}

// View renders the month view, or the open modal on top of it
func (m MonthModel) View() string {
	if m.editor != nil {
		return shared.Overlay(m.editor.View(), m.width, m.height)
	}
	if m.confirm != nil {
		return shared.Overlay(m.confirm.View(), m.width, m.height)
	}

	var sb strings.Builder

	// Title line
	title := calMonthTitleStyle.Render(" " + m.state.Month.Format("January 2006"))
	nav := navHintStyle.Render("[h/l: day] [k/j: week] [H/L: month] [t: today] [a: add] [enter: notes]")

	titleLine := title
	padding := m.width - lipgloss.Width(title) - lipgloss.Width(nav) - 1
	if padding > 0 {
		titleLine += strings.Repeat(" ", padding) + nav
	}
	sb.WriteString(titleLine)
	sb.WriteString("\n\n")

	sb.WriteString(m.renderCalendar())
	sb.WriteString("\n")

	sb.WriteString(m.renderDetailPanel())

	return sb.String()
}

func (m MonthModel) renderCalendar() string {
	var sb strings.Builder

	grid := m.state.Grid()
	for _, d := range calendar.WeekdayHeaders(grid.WeekStart) {
		sb.WriteString(calDayHeaderStyle.Render(d))
	}
	sb.WriteString("\n")

	cursor := grid.Index(m.state.Selected)
	for w, week := range grid.Weeks() {
		for d, cell := range week {
			sb.WriteString(m.renderCell(cell, w*calendar.DaysPerWeek+d == cursor))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m MonthModel) renderCell(cell calendar.Cell, selected bool) string {
	count := len(m.state.NotesFor(cell.Date))

	dayStr := fmt.Sprintf("%2d", cell.Date.Day)
	if count > 0 {
		dayStr = fmt.Sprintf("%2d*", cell.Date.Day)
	}

	switch {
	case selected:
		return calCursorStyle.Render(dayStr)
	case cell.Date == m.today:
		return calTodayStyle.Render(dayStr)
	case !cell.InMonth:
		return calOverflowStyle.Render(dayStr)
	case count > 0:
		return calHasNotesStyle.Render(dayStr)
	default:
		return calDayStyle.Render(dayStr)
	}
}

func (m MonthModel) renderDetailPanel() string {
	var sb strings.Builder

	header := detailHeaderStyle.Render(" " + m.state.Selected.Format("Mon, Jan 2"))
	list := m.state.SelectedNotes()

	if len(list) == 0 {
		sb.WriteString(header)
		sb.WriteString("  ")
		sb.WriteString(emptyStyle.Render("No notes"))
		sb.WriteString("\n")
		return sb.String()
	}

	countStr := noteCountStyle.Render(fmt.Sprintf("(%d notes)", len(list)))
	if len(list) == 1 {
		countStr = noteCountStyle.Render("(1 note)")
	}
	sb.WriteString(header + " " + countStr)
	if m.inDetail {
		sb.WriteString("  " + navHintStyle.Render("[j/k: navigate] [e: edit] [d: delete] [esc: back]"))
	}
	sb.WriteString("\n")

	for i, n := range list {
		sb.WriteString("     ")
		sb.WriteString(m.renderNoteLine(n, m.inDetail && i == m.detailIdx))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m MonthModel) renderNoteLine(n notes.Note, selected bool) string {
	title := n.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	if selected {
		return cursorStyle.Render("> ") + selectedStyle.Render(title)
	}
	return "  " + normalStyle.Render(title)
}
