package help

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/toyrobot/internal/render"
)

const (
	width         = 72
	height        = 22
	pageChrome    = 3 // top bar, title and footer
	glamourGutter = 2
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	viewport viewport.Model
}

type CloseHelpMsg struct{}

func closeHelpCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseHelpMsg{}
	}
}

// New renders the markdown once and pages it in a viewport.
func New(markdown []byte) Model {
	w := max(width, lipgloss.Width(footer))
	vp := viewport.New(w, height-pageChrome)
	vp.Style = lipgloss.NewStyle()
	vp.SetContent(glamContent(string(markdown), w, vp.Style.GetHorizontalFrameSize(), glamourGutter))

	return Model{
		width:    w,
		height:   height,
		viewport: vp,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	if height > 0 && height < m.height {
		m.viewport.Height = max(height-pageChrome, 1)
	} else {
		m.viewport.Height = max(m.height-pageChrome, 1)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "f1", "q":
			return m, closeHelpCmd()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

const footer = "↑ ↓ — scroll, esc — back, ctrl+c — quit"

func (m Model) View() string {
	return render.Page("Help", m.viewport.View(), footer, m.width, m.viewport.Height+pageChrome, m.termWidth, m.termHeight)
}

func glamContent(content string, width, frame, gutter int) string {
	renderWidth := width - frame - gutter
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("pink"),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		return content //noop
	}
	str, err := r.Render(content)
	if err != nil {
		return content //noop
	}
	return str
}
