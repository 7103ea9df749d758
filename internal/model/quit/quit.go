package quit

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/toyrobot/internal/render"
	"github.com/vinser/toyrobot/internal/style"
)

const quitPeriod = 1500 * time.Millisecond

type Model struct {
	quitUntil  time.Time
	summary    string
	termWidth  int
	termHeight int
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New returns the goodbye screen showing summary, usually the session tally.
func New(summary string) Model {
	return Model{
		quitUntil: time.Now().Add(quitPeriod),
		summary:   summary,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	view := "\n" + style.StatusLine.Render(m.summary) + "\n\n" + style.Output.Render("The robot is parked. Bye!") + "\n"
	return render.Center(view, m.termWidth, m.termHeight)
}
