package month

import (
	"github.com/charmbracelet/lipgloss"

	"calnote/internal/tui/theme"
)

// -- month.go styles --
var (
	calDayHeaderStyle  = theme.CalDayHeader
	calDayStyle        = theme.CalDay
	calOverflowStyle   = theme.CalOverflow
	calTodayStyle      = theme.CalToday
	calCursorStyle     = theme.CalCursor
	calHasNotesStyle   = theme.CalHasNotes
	calMonthTitleStyle = theme.CalMonth
	detailHeaderStyle  = theme.Subtitle
	navHintStyle       = theme.HelpHint
	noteCountStyle     = theme.Muted
	emptyStyle         = lipgloss.NewStyle().Foreground(theme.TextMuted).Italic(true)
	selectedStyle      = lipgloss.NewStyle().Bold(true).Foreground(theme.TextBright).Background(theme.Primary)
	cursorStyle        = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	normalStyle        = lipgloss.NewStyle()
)
