package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"halalfull-support/internal/catalog"
	"halalfull-support/internal/config"
	"halalfull-support/internal/modes"
	"halalfull-support/internal/support"
)

// Support is the set of operations the terminal widget dispatches to
type Support interface {
	GenerateResponse(ctx context.Context, userQuery string) support.Reply
	SearchProducts(query string) string
	TrackOrder(orderNumber string) catalog.OrderRecord
}

type (
	entryKind int
	focusArea int

	entry struct {
		kind    entryKind
		mode    string
		content string
		order   *catalog.OrderRecord
		at      time.Time
	}
)

const (
	queryEntry entryKind = iota
	replyEntry
	productEntry
	orderEntry
	diagnosticEntry
)

const (
	focusInput focusArea = iota
	focusSidebar
)

// resultMsg carries the outcome of one dispatched support operation
type resultMsg struct {
	mode    string
	entries []entry
}

type model struct {
	ctx      context.Context
	svc      Support
	prefs    *config.Preferences
	renderer *glamour.TermRenderer

	selected int
	focus    focusArea
	busy     bool

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	entries       []entry
	width, height int
}

func newModel(ctx context.Context, svc Support, prefs *config.Preferences) *model {
	ti := textinput.New()
	ti.Placeholder = "Type here and press Enter..."
	ti.Prompt = "> "
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	vp := viewport.New(80, 20)

	m := &model{
		ctx:      ctx,
		svc:      svc,
		prefs:    prefs,
		selected: modes.IndexOf(prefs.LastSupportMode),
		focus:    focusInput,
		input:    ti,
		viewport: vp,
		spinner:  s,
	}
	m.renderer = newRenderer(vp.Width)
	m.refreshViewport()
	return m
}

func newRenderer(width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		log.Warn().Err(err).Msg("markdown renderer unavailable, falling back to plain text")
		return nil
	}
	return r
}

func (m *model) currentMode() modes.Mode {
	return modes.AvailableModes[m.selected]
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case resultMsg:
		m.busy = false
		m.entries = append(m.entries, msg.entries...)
		m.input.Focus()
		m.focus = focusInput
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, textinput.Blink

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+l":
		m.entries = nil
		m.refreshViewport()
		return m, nil
	case "tab", "shift+tab":
		m.toggleFocus()
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.focus == focusSidebar {
		switch msg.String() {
		case "up", "k":
			m.selectMode(m.selected - 1)
		case "down", "j":
			m.selectMode(m.selected + 1)
		case "enter":
			m.toggleFocus()
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m, nil
		}
		mode := m.currentMode()
		m.entries = append(m.entries, entry{kind: queryEntry, mode: mode.ID, content: query, at: time.Now()})
		m.input.Reset()
		m.input.Blur()
		m.busy = true
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, tea.Batch(m.spinner.Tick, m.dispatch(mode.ID, query))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch runs the support operation bound to modeID off the UI loop
func (m *model) dispatch(modeID, query string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		log.Info().Str("mode", modeID).Msg("dispatching support request")

		switch modeID {
		case modes.ProductSearch:
			return resultMsg{mode: modeID, entries: []entry{
				{kind: productEntry, mode: modeID, content: svc.SearchProducts(query), at: time.Now()},
			}}
		case modes.OrderTracking:
			rec := svc.TrackOrder(query)
			return resultMsg{mode: modeID, entries: []entry{
				{kind: orderEntry, mode: modeID, content: rec.String(), order: &rec, at: time.Now()},
			}}
		default:
			reply := svc.GenerateResponse(ctx, query)
			var out []entry
			if reply.Failed() {
				out = append(out, entry{kind: diagnosticEntry, mode: modeID, content: reply.Diagnostic, at: time.Now()})
			}
			out = append(out, entry{kind: replyEntry, mode: modeID, content: reply.Text, at: time.Now()})
			return resultMsg{mode: modeID, entries: out}
		}
	}
}

func (m *model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusSidebar
		m.input.Blur()
		return
	}
	m.focus = focusInput
	if !m.busy {
		m.input.Focus()
	}
}

func (m *model) selectMode(index int) {
	if index < 0 || index >= len(modes.AvailableModes) || index == m.selected {
		return
	}
	m.selected = index
	mode := m.currentMode()
	m.input.Reset()
	if err := m.prefs.UpdateSupportMode(mode.ID); err != nil {
		log.Warn().Err(err).Str("mode", mode.ID).Msg("failed to save preferences")
	}
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height

	contentWidth := width - sidebarWidth - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	m.input.Width = contentWidth - 4

	// title + prompt label + input + status bar
	chrome := lipgloss.Height(m.titleView()) + 2 + lipgloss.Height(m.statusBarView())
	vpHeight := height - chrome
	if vpHeight < 3 {
		vpHeight = 3
	}

	m.viewport.Width = contentWidth
	m.viewport.Height = vpHeight
	m.renderer = newRenderer(contentWidth)
	m.refreshViewport()
}

func (m *model) refreshViewport() {
	m.viewport.SetContent(m.renderEntries())
}

func (m *model) View() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.titleView(),
		m.viewport.View(),
		m.inputView(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), content)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBarView())
}

// Start runs the terminal widget until the user quits
func Start(ctx context.Context, svc Support, prefs *config.Preferences) error {
	p := tea.NewProgram(newModel(ctx, svc, prefs), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run terminal UI")
	}
	return nil
}
