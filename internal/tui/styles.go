package tui

import (
	"github.com/charmbracelet/lipgloss"

	"calnote/internal/tui/theme"
)

var (
	TitleStyle = theme.Title

	// Status bar
	StatusBarStyle = theme.StatusBar

	// Help text
	HelpStyle = theme.HelpHint

	StatusErrorStyle = lipgloss.NewStyle().Foreground(theme.Danger)
	StatusOkStyle    = lipgloss.NewStyle().Foreground(theme.Success)
)
