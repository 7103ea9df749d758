package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/toyrobot/internal/command"
	"github.com/vinser/toyrobot/internal/model/tips"
	"github.com/vinser/toyrobot/internal/navigator"
	"github.com/vinser/toyrobot/internal/render"
	"github.com/vinser/toyrobot/internal/robot"
	"github.com/vinser/toyrobot/internal/session"
	"github.com/vinser/toyrobot/internal/style"
	"github.com/vinser/toyrobot/internal/table"
)

const (
	historySize = 6   // output lines kept on screen
	recallSize  = 100 // commands kept for ↑ ↓ recall
	minWidth    = 48
	labelWidth  = 3
	tipInterval = 30 * time.Second
)

const footer = "enter — run, ↑ ↓ — recall, f1 — help, f2 — settings"

// TerminalDimensions holds the terminal size information
type TerminalDimensions struct {
	Width  int
	Height int
}

type lineKind int

const (
	lineEcho lineKind = iota
	lineOutput
	lineTrace
	lineFailure
)

type line struct {
	kind lineKind
	text string
}

type Model struct {
	session    *session.Session
	spriteSize string
	sprites    map[table.ItemType][]string
	input      textinput.Model
	lines      []line
	recall     []string
	recallIdx  int
	route      *navigator.Route
	tips       tips.Model
	terminal   TerminalDimensions
	sb         *strings.Builder
}

// OpenHelpMsg asks the app to show the help page.
type OpenHelpMsg struct{}

func openHelpCmd() tea.Cmd {
	return func() tea.Msg {
		return OpenHelpMsg{}
	}
}

// QuitMsg is sent when the user enters the quit command.
type QuitMsg struct{}

func quitCmd() tea.Cmd {
	return func() tea.Msg {
		return QuitMsg{}
	}
}

// New returns a console bound to s.
func New(s *session.Session, spriteSize string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = style.Prompt
	ti.Placeholder = "place 0,0,north"
	ti.CharLimit = 64
	ti.Focus()

	m := Model{
		session:  s,
		input:    ti,
		tips:     tips.New(nil, minWidth, 1, tipInterval, time.Now().UnixNano()),
		terminal: TerminalDimensions{Width: 80, Height: 24},
		sb:       &strings.Builder{},
	}
	m.SetSpriteSize(spriteSize)
	return m
}

// SetSpriteSize switches the grid sprites.
func (m *Model) SetSpriteSize(size string) {
	m.spriteSize = size
	m.sprites = table.Sprites(size)
}

// SetTips replaces the tips scrolled under the prompt.
func (m *Model) SetTips(msgs []string) {
	m.tips = tips.New(msgs, minWidth, 1, tipInterval, time.Now().UnixNano())
}

func (m *Model) SetSize(width, height int) {
	m.terminal = TerminalDimensions{Width: width, Height: height}
}

// Session returns the session the console drives.
func (m Model) Session() *session.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tips.Init())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tips.TickMsg:
		var cmd tea.Cmd
		m.tips, cmd = m.tips.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.exec()
		case "up":
			m.recallStep(-1)
			return m, nil
		case "down":
			m.recallStep(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// exec runs the command in the prompt and records its outcome.
func (m Model) exec() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return m, nil
	}
	m.recall = append(m.recall, text)
	if len(m.recall) > recallSize {
		m.recall = m.recall[len(m.recall)-recallSize:]
	}
	m.recallIdx = len(m.recall)
	m.push(lineEcho, text)

	res, err := m.session.Exec(text)
	if err != nil {
		m.push(lineFailure, session.Message(err))
		return m, nil
	}

	switch res.Input.Kind {
	case command.Quit:
		return m, quitCmd()
	case command.Help:
		m.push(lineOutput, res.Output)
		return m, openHelpCmd()
	case command.Path:
		m.route = res.Route
		m.push(lineTrace, res.Output)
		return m, nil
	case command.Report:
		m.push(lineOutput, res.Output)
		return m, nil
	}
	// Any other change of the robot makes the last route stale.
	m.route = nil
	return m, nil
}

func (m *Model) push(kind lineKind, text string) {
	m.lines = append(m.lines, line{kind: kind, text: text})
	if len(m.lines) > historySize {
		m.lines = m.lines[len(m.lines)-historySize:]
	}
}

func (m *Model) recallStep(delta int) {
	if len(m.recall) == 0 {
		return
	}
	m.recallIdx = min(max(m.recallIdx+delta, 0), len(m.recall))
	if m.recallIdx == len(m.recall) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

// Lines returns the plain text of the output history, oldest first.
func (m Model) Lines() []string {
	out := make([]string, len(m.lines))
	for i, l := range m.lines {
		out[i] = l.text
	}
	return out
}

// View returns the complete screen with the table, history and prompt.
func (m Model) View() string {
	m.sb.Reset()
	m.render()
	return render.Center(m.sb.String(), m.terminal.Width, m.terminal.Height)
}

func (m *Model) render() {
	t := m.session.Navigator().Table()
	wChar, _ := robot.SpriteDims(m.spriteSize)
	width := max(labelWidth+t.Size()*wChar, minWidth)

	m.sb.WriteString(render.TopBar(width))
	m.sb.WriteString("\n")
	m.renderHeader()
	m.renderTable(t)
	m.renderHistory(width)
	m.sb.WriteString(m.input.View())
	m.sb.WriteString("\n\n")
	m.tips.SetWidth(width)
	m.sb.WriteString(m.tips.View())
	m.sb.WriteString("\n")
	m.sb.WriteString(render.FooterBar(footer, width))
}

// renderHeader writes the router, robot state and counters.
func (m *Model) renderHeader() {
	nav := m.session.Navigator()
	state := "not placed"
	if s, err := nav.Snapshot(); err == nil {
		state = s.String()
	}
	m.sb.WriteString(style.Title.Render(fmt.Sprintf("Robot: %s  Router: %s", state, nav.Router().Name())))
	m.sb.WriteString("\n")
	m.sb.WriteString(style.StatusLine.Render(m.session.Tally().String()))
	m.sb.WriteString("\n\n")
}

// renderTable draws the table with north at the top and axis labels on the left and bottom.
func (m *Model) renderTable(t *table.Table) {
	wChar, hRows := robot.SpriteDims(m.spriteSize)
	nav := m.session.Navigator()

	var robotPos *robot.Position
	var robotSprite []string
	if s, err := nav.Snapshot(); err == nil {
		p := s.Pos()
		robotPos = &p
		robotSprite = robot.New(p, s.Orientation).Render(m.spriteSize)
	}
	trail := make(map[robot.Position]bool)
	var target *robot.Position
	if m.route != nil && len(m.route.Path) > 0 {
		for _, p := range m.route.Path {
			trail[p] = true
		}
		last := m.route.Path[len(m.route.Path)-1]
		target = &last
	}

	for y := t.Max; y >= t.Min; y-- {
		rows := make([]strings.Builder, hRows)
		rows[0].WriteString(style.AxisLabel.Render(fmt.Sprintf("%*d ", labelWidth-1, y)))
		for r := 1; r < hRows; r++ {
			rows[r].WriteString(strings.Repeat(" ", labelWidth))
		}
		for x := t.Min; x <= t.Max; x++ {
			pos := robot.Position{X: x, Y: y}
			var sprite []string
			switch {
			case robotPos != nil && pos == *robotPos:
				sprite = robotSprite
			case target != nil && pos == *target:
				sprite = m.sprites[table.Target]
			case trail[pos]:
				sprite = m.sprites[table.Trail]
			default:
				item, _ := t.ItemAt(x, y)
				sprite = m.sprites[item]
			}
			for r := range rows {
				rows[r].WriteString(sprite[r])
			}
		}
		for r := range rows {
			m.sb.WriteString(rows[r].String())
			m.sb.WriteRune('\n')
		}
	}

	var axis strings.Builder
	axis.WriteString(strings.Repeat(" ", labelWidth))
	for x := t.Min; x <= t.Max; x++ {
		axis.WriteString(fmt.Sprintf("%-*s", wChar, axisLabel(x, wChar)))
	}
	m.sb.WriteString(style.AxisLabel.Render(axis.String()))
	m.sb.WriteString("\n\n")
}

// axisLabel centers x within a cell of the given width.
func axisLabel(x, width int) string {
	s := fmt.Sprint(x)
	if pad := (width - len(s)) / 2; pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

func (m *Model) renderHistory(width int) {
	for i := 0; i < historySize-len(m.lines); i++ {
		m.sb.WriteString("\n")
	}
	wrap := lipgloss.NewStyle().Width(width)
	for _, l := range m.lines {
		var st lipgloss.Style
		text := l.text
		switch l.kind {
		case lineEcho:
			st = style.Echo
			text = "> " + text
		case lineTrace:
			st = style.Trace
		case lineFailure:
			st = style.Failure
		default:
			st = style.Output
		}
		m.sb.WriteString(st.Inherit(wrap).Render(text))
		m.sb.WriteString("\n")
	}
}

