package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"halalfull-support/internal/config"
	"halalfull-support/internal/modes"
)

// renderEntries renders the output area
func (m *model) renderEntries() string {
	if len(m.entries) == 0 {
		return m.renderWelcome()
	}

	blocks := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		blocks = append(blocks, m.renderEntry(e))
	}
	return strings.Join(blocks, "\n")
}

// renderEntry renders one output entry as a card
func (m *model) renderEntry(e entry) string {
	var (
		label   string
		color   lipgloss.TerminalColor
		content string
	)

	switch e.kind {
	case queryEntry:
		label, color = "You", primaryColor
		content = e.content
	case replyEntry:
		label, color = "Bot Response", secondaryColor
		content = m.renderMarkdown(e.content)
	case productEntry:
		label, color = "Products", accentColor
		content = e.content
	case orderEntry:
		label, color = "Order Status", accentColor
		if e.order != nil {
			content = m.renderMarkdown(formatOrderMarkdown(*e.order))
		} else {
			content = e.content
		}
	case diagnosticEntry:
		return errorStyle.Width(m.cardWidth()).Render(getEntryIcon(e.kind) + " " + e.content)
	}

	header := labelStyle.Foreground(color).Render(getEntryIcon(e.kind) + " " + label)
	if m.prefs.ShowTimestamps && !e.at.IsZero() {
		header += footerStyle.Render(e.at.Format("15:04:05"))
	}

	return cardStyle.
		BorderForeground(color).
		Width(m.cardWidth()).
		Render(header + "\n" + content)
}

func (m *model) cardWidth() int {
	w := m.viewport.Width - 2
	if w < 10 {
		w = 10
	}
	return w
}

// renderMarkdown renders markdown content, or returns it unchanged without a renderer
func (m *model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}

	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}

// renderWelcome renders the greeting shown before the first request
func (m *model) renderWelcome() string {
	mode := m.currentMode()
	text := fmt.Sprintf("Welcome! You are in %s mode.\n%s\n\nPress Tab to switch to the sidebar and pick another support option.",
		mode.Name, mode.Description)

	return cardStyle.
		BorderForeground(accentColor).
		BorderStyle(lipgloss.DoubleBorder()).
		Width(m.cardWidth()).
		Render(lipgloss.NewStyle().Foreground(textMuted).Render(text))
}

// titleView renders the application heading
func (m *model) titleView() string {
	return titleStyle.Render(config.AppTitle)
}

// sidebarView renders the support mode selector and the contact footer
func (m *model) sidebarView() string {
	items := make([]string, 0, len(modes.AvailableModes))
	for i, mode := range modes.AvailableModes {
		style := modeItemStyle
		prefix := "  "
		if i == m.selected {
			style = modeItemSelectedStyle
			prefix = "▶ "
		}
		items = append(items, style.Render(prefix+mode.Name))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		sidebarHeaderStyle.Render("Support Options"),
		strings.Join(items, "\n"),
		"",
		strings.Repeat("─", sidebarWidth-4),
		footerStyle.Width(sidebarWidth-4).Render(config.ContactFooter),
	)

	style := sidebarStyle
	if m.focus == focusSidebar {
		style = sidebarFocusedStyle
	}
	if m.height > 2 {
		style = style.Height(m.height - 3)
	}
	return style.Render(content)
}

// inputView renders the mode prompt and either the input field or the spinner
func (m *model) inputView() string {
	mode := m.currentMode()
	label := promptStyle.Render(mode.Prompt)

	if m.busy {
		return lipgloss.JoinVertical(lipgloss.Left, label, m.spinner.View()+" Working on it...")
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, m.input.View())
}

// statusBarView renders the key help line
func (m *model) statusBarView() string {
	mode := m.currentMode()
	var help string
	if m.focus == focusSidebar {
		help = "↑↓ Select mode • Enter/Tab Back to input • Esc Quit"
	} else {
		help = fmt.Sprintf("Enter %s • Tab Modes • Ctrl+L Clear • Esc Quit", mode.Action)
	}

	return statusBarStyle.Width(m.width).Render(help)
}
