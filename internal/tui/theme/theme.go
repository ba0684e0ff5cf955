package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Color palette: ANSI 0-15 plus one 256-color accent
// ---------------------------------------------------------------------------

var (
	Text       = lipgloss.Color("7")
	TextMuted  = lipgloss.Color("8")
	TextBright = lipgloss.Color("15")

	Primary       = lipgloss.Color("4")   // blue
	Secondary     = lipgloss.Color("6")   // cyan
	Success       = lipgloss.Color("2")   // green
	Warning       = lipgloss.Color("3")   // yellow
	Danger        = lipgloss.Color("1")   // red
	Surface       = lipgloss.Color("236") // dark bg
	Border        = lipgloss.Color("8")   // dim
	BorderFocused = lipgloss.Color("4")   // blue
)

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	Muted    = lipgloss.NewStyle().Foreground(TextMuted)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	Ok    = lipgloss.NewStyle().Bold(true).Foreground(Success)

	SelectedBg = lipgloss.NewStyle().Foreground(TextBright).Background(Surface)
)

// ---------------------------------------------------------------------------
// Calendar cells; every cell is the same width so the grid lines up
// ---------------------------------------------------------------------------

const CellWidth = 5

var (
	CalDayHeader = lipgloss.NewStyle().Bold(true).Foreground(TextMuted).Width(CellWidth).Align(lipgloss.Center)
	CalDay       = lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center)
	CalOverflow  = lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center).Foreground(TextMuted)
	CalToday     = lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center).Bold(true).Foreground(Success)
	CalCursor    = lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center).Bold(true).Foreground(TextBright).Background(Primary)
	CalHasNotes  = lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center).Foreground(Warning)
	CalMonth     = lipgloss.NewStyle().Bold(true).Foreground(Primary)
)

// ---------------------------------------------------------------------------
// Reusable component helpers
// ---------------------------------------------------------------------------

var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	ModalHelp = lipgloss.NewStyle().Foreground(TextMuted)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)
)
