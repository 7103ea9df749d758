package tips

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const fallback = "Type HELP for the command list."

// Model scrolls a random tip through a fixed-width frame, then picks another
// one after interval.
type Model struct {
	msgs       []string
	style      lipgloss.Style
	frameWidth int
	repeats    int
	interval   time.Duration

	current   string
	offset    int
	doneCount int
	lastShown time.Time
	rng       *rand.Rand
}

type TickMsg struct{}

func Tick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

type tipsFile struct {
	Tips []string `json:"tips"`
}

// Parse reads the tips from a JSON document of the form {"tips": [...]}.
func Parse(data []byte) ([]string, error) {
	var f tipsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Tips, nil
}

func New(msgs []string, frameWidth, repeats int, interval time.Duration, seed int64) Model {
	if len(msgs) == 0 {
		msgs = []string{fallback}
	}
	rng := rand.New(rand.NewSource(seed))

	return Model{
		msgs:       msgs,
		style:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		frameWidth: frameWidth,
		repeats:    repeats,
		interval:   interval,
		current:    msgs[rng.Intn(len(msgs))],
		lastShown:  time.Now(),
		rng:        rng,
	}
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case TickMsg:
		if m.doneCount >= m.repeats {
			if time.Since(m.lastShown) >= m.interval {
				m.current = m.msgs[m.rng.Intn(len(m.msgs))]
				m.lastShown = time.Now()
				m.doneCount = 0
				m.offset = 0
			}
		} else {
			m.offset++
			if m.offset >= len([]rune(m.current))+m.frameWidth {
				m.offset = 0
				m.doneCount++
			}
		}
		return m, Tick()
	}
	return m, nil
}

// Current returns the tip being shown.
func (m Model) Current() string {
	return m.current
}

func (m Model) View() string {
	if m.frameWidth <= 0 {
		return ""
	}
	// Runes, not bytes: tips may contain arrows.
	spaces := []rune(strings.Repeat(" ", m.frameWidth))
	text := append(append(append([]rune{}, spaces...), []rune(m.current)...), spaces...)

	start := min(m.offset, len(text))
	end := min(start+m.frameWidth, len(text))
	return m.style.Render(string(text[start:end]))
}

func (m *Model) SetWidth(width int) {
	m.frameWidth = width
}
