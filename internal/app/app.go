package app

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/toyrobot/internal/model/console"
	"github.com/vinser/toyrobot/internal/model/help"
	"github.com/vinser/toyrobot/internal/model/quit"
	"github.com/vinser/toyrobot/internal/model/setup"
	"github.com/vinser/toyrobot/internal/model/tips"
	"github.com/vinser/toyrobot/internal/navigator"
	"github.com/vinser/toyrobot/internal/robot"
	"github.com/vinser/toyrobot/internal/session"
	"github.com/vinser/toyrobot/internal/state"
	"github.com/vinser/toyrobot/internal/table"
)

type status uint

const (
	statusConsole status = iota
	statusHelp
	statusSetup
	statusQuitting
)

// Config carries everything the app needs from start-up.
type Config struct {
	Table  *table.Table
	State  *state.State
	Resume bool     // place the saved robot, if any
	Help   []byte   // help page markdown
	Tips   []string // tips scrolled under the prompt
	Logger *slog.Logger
	// Save persists the state. Defaults to State.Save.
	Save func(*state.State) error
}

func (c *Config) defaults() {
	if c.Table == nil {
		c.Table = table.Default()
	}
	if c.State == nil {
		c.State = state.New()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.Save == nil {
		c.Save = (*state.State).Save
	}
}

type Model struct {
	status  status
	cfg     Config
	state   *state.State
	session *session.Session
	// models
	console console.Model
	help    help.Model
	setup   setup.Model
	quit    quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

func New(cfg Config) Model {
	cfg.defaults()
	m := Model{
		status: statusConsole,
		cfg:    cfg,
		state:  cfg.State,
	}
	m.session = NewSession(cfg)
	m.console = setConsole(m.session, cfg, m.state)
	return m
}

// NewSession builds the navigator and session for cfg.State, restores the
// saved robot when cfg.Resume is set and persists every robot change while
// auto-save is on.
func NewSession(cfg Config) *session.Session {
	cfg.defaults()
	st, log := cfg.State, cfg.Logger

	router, err := navigator.ParseRouter(st.Router)
	if err != nil {
		log.Warn("state.router", "router", st.Router, "err", err)
		router = navigator.Greedy{}
	}
	nav := navigator.New(cfg.Table, navigator.WithRouter(router))

	if cfg.Resume && st.Robot != nil {
		snap := st.Robot.Snapshot()
		if err := nav.Restore(snap); err != nil {
			log.Warn("state.resume", "robot", snap.String(), "err", err)
			st.Forget()
		} else {
			log.Info("state.resume", "robot", snap.String(), "record", st.Robot.ID)
		}
	}

	return session.New(nav,
		session.WithLogger(log.With("session", st.SessionID)),
		session.WithOnChange(func(s robot.Snapshot) {
			if !st.AutoSave {
				return
			}
			st.Remember(s)
			if err := cfg.Save(st); err != nil {
				log.Error("state.save", "err", err)
			}
		}),
	)
}

// Session returns the session driven by the console.
func (m Model) Session() *session.Session {
	return m.session
}

func setConsole(s *session.Session, cfg Config, st *state.State) console.Model {
	model := console.New(s, st.SpriteSize)
	model.SetTips(cfg.Tips)
	return model
}

func setHelp(cfg Config) help.Model {
	return help.New(cfg.Help)
}

func setSetup(st *state.State) setup.Model {
	return setup.New(st.SpriteSize, st.Router, st.AutoSave)
}

func setQuit(s *session.Session) quit.Model {
	return quit.New(s.Tally().String())
}

func (m Model) Init() tea.Cmd {
	return m.console.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c": // quit all app models
			if m.status != statusQuitting {
				return m.quitting()
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.console.SetSize(msg.Width, msg.Height)
		m.help.SetSize(msg.Width, msg.Height)
		m.setup.SetSize(msg.Width, msg.Height)
		m.quit.SetSize(msg.Width, msg.Height)
		// Force a full repaint
		return m, tea.ClearScreen
	case tips.TickMsg:
		// The tips keep scrolling while another page is shown.
		m.console, cmd = m.console.Update(msg)
		return m, cmd
	}

	switch m.status {
	case statusConsole:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "f1":
				m.openHelp()
				return m, nil
			case "f2":
				m.status = statusSetup
				m.setup = setSetup(m.state)
				m.setup.SetSize(m.termWidth, m.termHeight)
				return m, nil
			}
			m.console, cmd = m.console.Update(msg)
		case console.OpenHelpMsg:
			m.openHelp()
			return m, nil
		case console.QuitMsg:
			return m.quitting()
		default:
			m.console, cmd = m.console.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusHelp:
		switch msg := msg.(type) {
		case help.CloseHelpMsg:
			m.status = statusConsole
		default:
			m.help, cmd = m.help.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusSetup:
		switch msg := msg.(type) {
		case setup.SaveSettingsMsg:
			m.status = statusConsole
			m.applySettings(msg)
		case setup.DiscardSettingsMsg:
			m.status = statusConsole
		default:
			m.setup, cmd = m.setup.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusQuitting:
		switch msg := msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) openHelp() {
	m.status = statusHelp
	m.help = setHelp(m.cfg)
	m.help.SetSize(m.termWidth, m.termHeight)
}

// applySettings stores the new settings and applies them to the live session.
// Reset starts over with default settings and no robot.
func (m *Model) applySettings(msg setup.SaveSettingsMsg) {
	log := m.cfg.Logger
	if msg.Reset {
		log.Info("state.reset", "session", m.state.SessionID)
		m.state = state.New()
		m.cfg.State = m.state
		m.cfg.Resume = false
		m.session = NewSession(m.cfg)
		m.console = setConsole(m.session, m.cfg, m.state)
		m.console.SetSize(m.termWidth, m.termHeight)
	} else {
		m.state.SpriteSize = msg.SpriteSize
		m.state.Router = msg.Router
		m.state.AutoSave = msg.AutoSave
		m.console.SetSpriteSize(msg.SpriteSize)
		if r, err := navigator.ParseRouter(msg.Router); err == nil {
			m.session.Navigator().SetRouter(r)
		}
		if !msg.AutoSave {
			m.state.Forget()
		} else if s, err := m.session.Navigator().Snapshot(); err == nil {
			m.state.Remember(s)
		}
	}
	log.Info("settings.saved", "sprite_size", m.state.SpriteSize, "router", m.state.Router, "auto_save", m.state.AutoSave)
	if err := m.cfg.Save(m.state); err != nil {
		log.Error("state.save", "err", err)
	}
}

func (m Model) quitting() (tea.Model, tea.Cmd) {
	t := m.session.Tally()
	m.cfg.Logger.Info("app.quit", "commands", t.Commands(), "moves", t.Moves(), "turns", t.Turns(), "routes", t.Routes(), "rejected", t.Rejected())
	if err := m.cfg.Save(m.state); err != nil {
		m.cfg.Logger.Error("state.save", "err", err)
	}
	m.status = statusQuitting
	m.quit = setQuit(m.session)
	m.quit.SetSize(m.termWidth, m.termHeight)
	return m, m.quit.Init()
}

func (m Model) View() string {
	switch m.status {
	case statusConsole:
		return m.console.View()
	case statusHelp:
		return m.help.View()
	case statusSetup:
		return m.setup.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
