// Package command parses the text commands accepted by the toy robot console.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrInvalidInput is returned for lines that are not a known command.
var ErrInvalidInput = errors.New("invalid input")

// Kind identifies a command.
type Kind string

const (
	Place  Kind = "place"
	Path   Kind = "path"
	Move   Kind = "move"
	Left   Kind = "left"
	Right  Kind = "right"
	Report Kind = "report"
	Help   Kind = "help"
	Quit   Kind = "q"
)

// Input is a parsed command line. X, Y and Face are set only for the commands that take them.
type Input struct {
	Kind Kind
	X, Y int
	Face string
}

func (in Input) String() string {
	switch in.Kind {
	case Place:
		return fmt.Sprintf("place %d,%d,%s", in.X, in.Y, in.Face)
	case Path:
		return fmt.Sprintf("path %d,%d", in.X, in.Y)
	}
	return string(in.Kind)
}

type line struct {
	Place  *placeArgs `parser:"  'place' @@"`
	Path   *pathArgs  `parser:"| 'path' @@"`
	Action string     `parser:"| @('move' | 'left' | 'right' | 'report' | 'help' | 'quit' | 'q')"`
}

type placeArgs struct {
	X    int    `parser:"@Int ','"`
	Y    int    `parser:"@Int ','"`
	Face string `parser:"@Ident"`
}

type pathArgs struct {
	X int `parser:"@Int ','"`
	Y int `parser:"@Int"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Punct", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[line](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a single command line. Commands are case-insensitive.
func Parse(input string) (Input, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return Input{}, ErrInvalidInput
	}

	l, err := parser.ParseString("", input)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	switch {
	case l.Place != nil:
		return Input{Kind: Place, X: l.Place.X, Y: l.Place.Y, Face: l.Place.Face}, nil
	case l.Path != nil:
		return Input{Kind: Path, X: l.Path.X, Y: l.Path.Y}, nil
	case l.Action == "quit":
		return Input{Kind: Quit}, nil
	}
	return Input{Kind: Kind(l.Action)}, nil
}
