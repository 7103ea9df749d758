package flags

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vinser/toyrobot/internal/navigator"
	"github.com/vinser/toyrobot/internal/robot"
)

// ErrInvalidFlag is returned for flag values outside their allowed set.
var ErrInvalidFlag = errors.New("invalid flag value")

// Flags stores the parsed command-line options
type Flags struct {
	Table  string // YAML table config, empty for the built-in table
	Router string // route heuristic, empty keeps the saved one
	Sprite string // sprite size, empty keeps the saved one
	Batch  bool   // read commands from stdin instead of starting the console
	Resume bool   // place the last saved robot on start
	Reset  bool   // drop saved settings and robot
	Debug  bool
	LogDir string

	set *FlagSetWithVisit
}

// IsCustom reports whether the named flag was given on the command line.
func (f *Flags) IsCustom(name string) bool {
	return f.set != nil && f.set.IsCustom(name)
}

// Parse parses os.Args and exits on invalid input, the way a command-line tool does.
func Parse() *Flags {
	fl, err := ParseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return fl
}

// ParseArgs parses args and validates flag values. Usage goes to out.
func ParseArgs(name string, args []string, out io.Writer) (*Flags, error) {
	fl := &Flags{}
	fs := NewFlagSetWithVisit(name, out)

	// Define flags with both short and long forms
	fs.StringVar(&fl.Table, "table", "t", "", "Table config file (YAML), the built-in 5x5 table if empty")
	fs.StringVar(&fl.Router, "router", "r", "", "Route heuristic: "+strings.Join(navigator.RouterNames(), " or "))
	fs.StringVar(&fl.Sprite, "sprite-size", "s", "", "Sprite size: small, medium, or large")
	fs.BoolVar(&fl.Batch, "batch", "b", false, "Read commands from standard input, one per line")
	fs.BoolVar(&fl.Resume, "resume", "", false, "Place the robot where it was left last time")
	fs.BoolVar(&fl.Reset, "reset", "", false, "Reset saved robot and settings")
	fs.BoolVar(&fl.Debug, "debug", "d", false, "Log at debug level")
	fs.StringVar(&fl.LogDir, "log-dir", "", "", "Directory for the log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fl.set = fs

	// Normalize router value
	if fl.Router != "" {
		r, err := navigator.ParseRouter(fl.Router)
		if err != nil {
			fs.Usage()
			return nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
		}
		fl.Router = r.Name()
	}

	// Normalize sprite size value
	fl.Sprite = strings.ToLower(fl.Sprite)
	switch fl.Sprite {
	case "", robot.SpriteSmall, robot.SpriteMedium, robot.SpriteLarge:
	default:
		fs.Usage()
		return nil, fmt.Errorf("%w: sprite size %q, use 'small', 'medium' or 'large'", ErrInvalidFlag, fl.Sprite)
	}

	if fl.Resume && fl.Reset {
		return nil, fmt.Errorf("%w: -resume and -reset cannot be combined", ErrInvalidFlag)
	}
	return fl, nil
}
