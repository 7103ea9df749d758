// Package session dispatches parsed console commands to a navigator.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vinser/toyrobot/internal/command"
	"github.com/vinser/toyrobot/internal/navigator"
	"github.com/vinser/toyrobot/internal/robot"
	"github.com/vinser/toyrobot/internal/tally"
)

// Usage is printed for the help command.
const Usage = "commands: PLACE x,y,F | MOVE | LEFT | RIGHT | REPORT | PATH x,y | HELP | Q"

// Result is the outcome of one executed command.
type Result struct {
	Input  command.Input
	Output string
	Route  *navigator.Route
	Quit   bool
}

// Session owns a navigator and applies console commands to it.
type Session struct {
	nav      *navigator.Navigator
	tally    *tally.Tally
	log      *slog.Logger
	onChange func(robot.Snapshot)
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithOnChange registers fn to be called with the new robot state after every
// command that placed, moved or turned the robot.
func WithOnChange(fn func(robot.Snapshot)) Option {
	return func(s *Session) {
		s.onChange = fn
	}
}

func New(nav *navigator.Navigator, opts ...Option) *Session {
	s := &Session{
		nav:   nav,
		tally: tally.New(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Navigator() *navigator.Navigator {
	return s.nav
}

func (s *Session) Tally() *tally.Tally {
	return s.tally
}

// Exec parses and applies a single command line.
func (s *Session) Exec(line string) (Result, error) {
	in, err := command.Parse(line)
	if err != nil {
		s.tally.AddCommand()
		s.reject(line, err)
		return Result{}, err
	}
	return s.Apply(in)
}

// Apply runs an already parsed command.
func (s *Session) Apply(in command.Input) (Result, error) {
	s.tally.AddCommand()
	res := Result{Input: in}

	switch in.Kind {
	case command.Quit:
		res.Quit = true
		s.log.Info("session.quit", "commands", s.tally.Commands(), "moves", s.tally.Moves(), "rejected", s.tally.Rejected())
		return res, nil
	case command.Help:
		res.Output = Usage
		return res, nil
	}

	if in.Kind != command.Place && !s.nav.Placed() {
		s.reject(in.String(), navigator.ErrNotPlaced)
		return res, navigator.ErrNotPlaced
	}

	var err error
	changed := true
	switch in.Kind {
	case command.Place:
		_, err = s.nav.Place(in.X, in.Y, in.Face)
	case command.Move:
		if err = s.nav.Move(); err == nil {
			s.tally.AddMove()
		}
	case command.Left:
		if err = s.nav.Left(); err == nil {
			s.tally.AddTurn()
		}
	case command.Right:
		if err = s.nav.Right(); err == nil {
			s.tally.AddTurn()
		}
	case command.Report:
		changed = false
		res.Output, err = s.nav.Report()
	case command.Path:
		var route navigator.Route
		if route, err = s.nav.Route(in.X, in.Y); err == nil {
			res.Route = &route
			res.Output = route.String()
			s.tally.AddRoute(len(route.Steps))
		}
	default:
		err = fmt.Errorf("%w: %s", command.ErrInvalidInput, in.Kind)
	}
	if err != nil {
		s.reject(in.String(), err)
		return res, err
	}

	snap, _ := s.nav.Snapshot()
	s.log.Debug("command.applied", "input", in.String(), "robot", snap.String())
	if changed && s.onChange != nil {
		s.onChange(snap)
	}
	return res, nil
}

func (s *Session) reject(line string, err error) {
	s.tally.AddRejected()
	s.log.Warn("command.rejected", "input", line, "err", err)
}

// maxLineSize bounds a command line. Longer lines are rejected as invalid input.
const maxLineSize = 64 * 1024

// Run reads commands from r, one per line, and writes outputs and error
// messages to w until a quit command, end of input or ctx is done.
// Blank lines and lines starting with # are skipped.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	for {
		raw, tooLong, err := readLine(br)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if tooLong {
			s.tally.AddCommand()
			s.reject(raw[:32]+"...", command.ErrInvalidInput)
			if _, werr := fmt.Fprintln(w, Message(command.ErrInvalidInput)); werr != nil {
				return werr
			}
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := s.Exec(line)
		if err != nil {
			if _, werr := fmt.Fprintln(w, Message(err)); werr != nil {
				return werr
			}
			continue
		}
		if res.Output != "" {
			if _, werr := fmt.Fprintln(w, res.Output); werr != nil {
				return werr
			}
		}
		if res.Quit {
			return nil
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// maxLineSize is read through to its end; only its head is kept and tooLong is set.
func readLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, rerr := br.ReadLine()
		if rerr != nil {
			return string(buf), tooLong, rerr
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > maxLineSize {
				tooLong = true
				buf = buf[:maxLineSize]
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// Message returns the text shown to the user for a rejected command.
func Message(err error) string {
	if errors.Is(err, command.ErrInvalidInput) {
		return "Invalid input"
	}
	msg := navigator.Reason(err)
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
