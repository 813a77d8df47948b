package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette using standard terminal colors for better compatibility
var (
	primaryColor   = lipgloss.Color("14") // Bright Cyan
	secondaryColor = lipgloss.Color("12") // Bright Blue
	accentColor    = lipgloss.Color("10") // Bright Green
	errorColor     = lipgloss.Color("9")  // Bright Red
	warningColor   = lipgloss.Color("11") // Bright Yellow

	bgDark    = lipgloss.Color("235")
	bgLighter = lipgloss.Color("241")

	textPrimary = lipgloss.Color("15")
	textMuted   = lipgloss.Color("8")
)

const sidebarWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(bgLighter).
			Padding(0, 1).
			Width(sidebarWidth)

	sidebarFocusedStyle = sidebarStyle.
				BorderForeground(primaryColor)

	sidebarHeaderStyle = lipgloss.NewStyle().
				Foreground(textPrimary).
				Bold(true).
				MarginBottom(1)

	modeItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	modeItemSelectedStyle = modeItemStyle.
				Background(primaryColor).
				Foreground(bgDark).
				Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(textMuted).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			MarginRight(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(bgLighter).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	statusBarStyle = lipgloss.NewStyle().
			Background(bgDark).
			Foreground(textMuted).
			Padding(0, 1)
)

const (
	userIcon    = "👤"
	botIcon     = "🤖"
	productIcon = "🔎"
	orderIcon   = "📦"
	errorIcon   = "✗"
	bulletIcon  = "•"
)

// getEntryIcon returns the icon shown in an entry's header
func getEntryIcon(kind entryKind) string {
	switch kind {
	case queryEntry:
		return userIcon
	case replyEntry:
		return botIcon
	case productEntry:
		return productIcon
	case orderEntry:
		return orderIcon
	case diagnosticEntry:
		return errorIcon
	default:
		return bulletIcon
	}
}
