package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calnote/internal/calendar"
	"calnote/internal/config"
	"calnote/internal/logs"
	"calnote/internal/notes"
	"calnote/internal/session"
	"calnote/internal/tui/messages"
	monthview "calnote/internal/tui/month"
	"calnote/internal/tui/shared"
)

const statusHint = "a:add | enter:notes | x:export | ?:help | q:quit"

// AppModel is the root model: it owns the month view, the help overlay and the status bar
type AppModel struct {
	cfg       *config.Config
	monthView monthview.MonthModel
	showHelp  bool
	status    string
	statusErr bool
	now       func() time.Time
	width     int
	height    int
	ready     bool
}

// NewAppModel creates the root application model with an empty note store
func NewAppModel(cfg *config.Config, today calendar.Date) AppModel {
	state := session.New(cfg.Calculator(), today, notes.NewStore(), session.Options{
		StrictTitles: cfg.StrictTitles,
	})
	return AppModel{
		cfg:       cfg,
		monthView: monthview.NewMonthModel(state, today),
		now:       time.Now,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

// State returns the session state behind the month view
func (m AppModel) State() session.State {
	return m.monthView.State()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.monthView.SetSize(msg.Width, contentHeight)
		return m, nil

	case messages.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsError
		return m, nil

	case messages.ExportRequestMsg:
		m.status = "Exporting..."
		m.statusErr = false
		return m, m.exportCmd(msg.Notes)

	case messages.ExportDoneMsg:
		if msg.Err != nil {
			logs.Logger.Printf("Error exporting notes: %v", msg.Err)
			m.status = "Export failed: " + msg.Err.Error()
			m.statusErr = true
			return m, nil
		}
		logs.Logger.Printf("Exported notes to %s", msg.Path)
		m.status = "Exported to " + msg.Path
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Let an open editor or confirmation handle every key
		if !m.monthView.IsInModalState() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}

		// A key press clears the last status line
		m.status = ""
		m.statusErr = false
	}

	var cmd tea.Cmd
	m.monthView, cmd = m.monthView.Update(msg)
	return m, cmd
}

func (m AppModel) exportCmd(store notes.Store) tea.Cmd {
	dir := m.cfg.ExportDir
	format := m.cfg.ExportFormat
	generated := m.now()
	return func() tea.Msg {
		path, err := notes.ExportFile(dir, store, format, generated)
		return messages.ExportDoneMsg{Path: path, Err: err}
	}
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections(), m.width, m.height)
	}

	statusText := HelpStyle.Render(statusHint)
	if m.status != "" {
		style := StatusOkStyle
		if m.statusErr {
			style = StatusErrorStyle
		}
		statusText = style.Render(m.status)
	}

	statusBar := StatusBarStyle.Width(m.width).Render(statusText)

	return lipgloss.JoinVertical(lipgloss.Left, m.monthView.View(), statusBar)
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "calnote - Keyboard Shortcuts",
			Binds: []shared.HelpBind{
				{Key: "?", Desc: "Show this help"},
				{Key: "q", Desc: "Quit"},
				{Key: "ctrl+c", Desc: "Force quit"},
			},
		},
		{
			Title: "Calendar",
			Binds: []shared.HelpBind{
				{Key: "h / l", Desc: "Previous / next day"},
				{Key: "k / j", Desc: "Previous / next week"},
				{Key: "H / L, [ / ]", Desc: "Previous / next month"},
				{Key: "t", Desc: "Jump to today"},
				{Key: "a / n", Desc: "Add note on selected day"},
				{Key: "enter", Desc: "Enter notes panel"},
				{Key: "x", Desc: "Export notes"},
			},
		},
		{
			Title: "Notes Panel",
			Binds: []shared.HelpBind{
				{Key: "j / k", Desc: "Navigate notes"},
				{Key: "e / enter", Desc: "Edit note"},
				{Key: "d", Desc: "Delete note"},
				{Key: "a", Desc: "Add note"},
				{Key: "esc", Desc: "Back to calendar"},
			},
		},
		{
			Title: "Note Editor",
			Binds: []shared.HelpBind{
				{Key: "tab", Desc: "Next field"},
				{Key: "enter", Desc: "Save"},
				{Key: "esc", Desc: "Cancel"},
			},
		},
	}
}
