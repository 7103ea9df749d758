package setup

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/toyrobot/internal/navigator"
	"github.com/vinser/toyrobot/internal/robot"
	"github.com/vinser/toyrobot/internal/style"
)

const width = 60

const (
	selectedSpriteSize = iota
	selectedRouter
	selectedAutoSave
	selectedReset
	numSettings
)

const footer = "↑ ↓ — select, space — change, s — save, esc — cancel"

type Model struct {
	spriteSize string // small, medium or large
	router     string // greedy or toward
	autoSave   bool
	reset      bool

	selectedSetting int
	termWidth       int
	termHeight      int
}

type SaveSettingsMsg struct {
	SpriteSize string
	Router     string
	AutoSave   bool
	Reset      bool
}

func saveSettingsCmd(spriteSize, router string, autoSave, reset bool) tea.Cmd {
	return func() tea.Msg {
		return SaveSettingsMsg{
			SpriteSize: spriteSize,
			Router:     router,
			AutoSave:   autoSave,
			Reset:      reset,
		}
	}
}

type DiscardSettingsMsg struct{}

func discardSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return DiscardSettingsMsg{}
	}
}

func New(spriteSize, router string, autoSave bool) Model {
	return Model{
		spriteSize: spriteSize,
		router:     router,
		autoSave:   autoSave,
		reset:      false,

		selectedSetting: selectedSpriteSize,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, saveSettingsCmd(m.spriteSize, m.router, m.autoSave, m.reset)
		case "esc", "f2":
			return m, discardSettingsCmd()
		case "up":
			if m.selectedSetting > 0 {
				m.selectedSetting--
			}
		case "down":
			if m.selectedSetting < numSettings-1 {
				m.selectedSetting++
			}
		case "enter", " ":
			switch m.selectedSetting {
			case selectedSpriteSize:
				m.spriteSize = next(robot.SpriteSizes(), m.spriteSize)
			case selectedRouter:
				m.router = next(navigator.RouterNames(), m.router)
			case selectedAutoSave:
				m.autoSave = !m.autoSave
			case selectedReset:
				m.reset = !m.reset
			}
		}
	}
	return m, nil
}

// next returns the value following current in values, wrapping around.
// Unknown values restart from the first one.
func next(values []string, current string) string {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

func (m Model) View() string {
	type option struct {
		label string
		value string
	}

	options := []option{
		{"Sprite size", m.spriteSize},
		{"Route heuristic", m.router},
		{"Auto-save robot", fmt.Sprintf("%v", m.autoSave)},
		{"Reset saved robot", fmt.Sprintf("%v", m.reset)},
	}

	var b strings.Builder
	title := style.SetupTitle.Render("Settings")
	b.WriteString("\n" + centerText(title) + "\n\n")

	for i, opt := range options {
		prefix := "  "
		if i == m.selectedSetting {
			prefix = "➤ "
		}
		line := fmt.Sprintf("%s%s: %s", prefix, opt.label, opt.value)
		if i == m.selectedSetting {
			b.WriteString(centerText(style.SetupActive.Render(line)))
		} else {
			b.WriteString(centerText(style.SetupItem.Render(line)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n\n\n" + centerText(footer) + "\n")
	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

func centerText(text string) string {
	padding := (width - lipgloss.Width(text)) / 2
	return spaces(padding) + text
}

func spaces(n int) string {
	return fmt.Sprintf("%*s", max(n, 0), "")
}
