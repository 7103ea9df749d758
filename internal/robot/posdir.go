package robot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOrientation is returned when an orientation token names none of the four directions.
var ErrInvalidOrientation = errors.New("invalid face value")

// Position represents coordinates on the table.
type Position struct {
	X, Y int
}

// Add returns the element-wise sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Orientation represents the direction the robot faces.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

var orientationNames = [...]string{"north", "east", "south", "west"}

// Orientations lists all orientations in clockwise order starting from North.
func Orientations() []Orientation {
	return []Orientation{North, East, South, West}
}

// ParseOrientation converts a case-insensitive direction name into an Orientation.
func ParseOrientation(token string) (Orientation, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	for i, name := range orientationNames {
		if name == token {
			return Orientation(i), nil
		}
	}
	return North, fmt.Errorf("%w: %q", ErrInvalidOrientation, token)
}

func (o Orientation) valid() bool {
	return o >= North && o <= West
}

func (o Orientation) String() string {
	if !o.valid() {
		return "unknown"
	}
	return orientationNames[o]
}

// Left returns the orientation after a quarter turn counterclockwise.
func (o Orientation) Left() Orientation {
	return (o + 3) % 4
}

// Right returns the orientation after a quarter turn clockwise.
func (o Orientation) Right() Orientation {
	return (o + 1) % 4
}

// Reverse returns the opposite orientation.
func (o Orientation) Reverse() Orientation {
	return (o + 2) % 4
}

// Step returns the unit displacement for a single move in this orientation.
func (o Orientation) Step() Position {
	switch o {
	case North:
		return Position{X: 0, Y: 1}
	case East:
		return Position{X: 1, Y: 0}
	case South:
		return Position{X: 0, Y: -1}
	case West:
		return Position{X: -1, Y: 0}
	}
	return Position{}
}

// MarshalText encodes the orientation as its lowercase name.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText decodes a direction name.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
