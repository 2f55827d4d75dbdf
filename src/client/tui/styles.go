package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Dracula palette
var (
	foreground = lipgloss.Color("#f8f8f2")
	comment    = lipgloss.Color("#6272a4")
	cyan       = lipgloss.Color("#8be9fd")
	green      = lipgloss.Color("#50fa7b")
	orange     = lipgloss.Color("#ffb86c")
	pink       = lipgloss.Color("#ff79c6")
	purple     = lipgloss.Color("#bd93f9")
	red        = lipgloss.Color("#ff5555")
	yellow     = lipgloss.Color("#f1fa8c")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(purple).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(foreground)

	labelStyle = lipgloss.NewStyle().
			Foreground(comment).
			Width(11)

	valueStyle = lipgloss.NewStyle().
			Foreground(foreground)

	countStyle = lipgloss.NewStyle().
			Foreground(orange)

	urlStyle = lipgloss.NewStyle().
			Foreground(cyan)

	promptStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(pink).
			Bold(true)

	answerStyle = lipgloss.NewStyle().
			Foreground(cyan)

	helpStyle = lipgloss.NewStyle().
			Foreground(comment)

	warnStyle = lipgloss.NewStyle().
			Foreground(yellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(red)
)

// DisableColor forces plain output for every style
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
