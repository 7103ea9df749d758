package robot

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/toyrobot/internal/style"
)

// Sprite sizes
const (
	SpriteSmall   = "small"
	SpriteMedium  = "medium"
	SpriteLarge   = "large"
	SpriteDefault = SpriteMedium
)

// SpriteSizes lists the accepted sprite sizes.
func SpriteSizes() []string {
	return []string{SpriteSmall, SpriteMedium, SpriteLarge}
}

// SpriteDims returns the width in characters and height in rows of one cell sprite.
func SpriteDims(size string) (width, height int) {
	switch size {
	case SpriteSmall:
		return 1, 1
	case SpriteLarge:
		return 4, 2
	default:
		return 2, 1
	}
}

// Robot holds the current position and orientation of the toy robot.
type Robot struct {
	position    Position
	orientation Orientation
}

// Snapshot is the plain representation of a robot handed to persistence and UI code.
type Snapshot struct {
	X           int         `json:"x" yaml:"x"`
	Y           int         `json:"y" yaml:"y"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
}

// Pos returns the snapshot position.
func (s Snapshot) Pos() Position {
	return Position{X: s.X, Y: s.Y}
}

// String formats the snapshot as "x,y,orientation".
func (s Snapshot) String() string {
	return fmt.Sprintf("%d,%d,%s", s.X, s.Y, s.Orientation)
}

// New returns a robot at pos facing dir.
func New(pos Position, dir Orientation) *Robot {
	return &Robot{position: pos, orientation: dir}
}

// Pos returns the robot's current position.
func (r *Robot) Pos() Position {
	return r.position
}

// Dir returns the robot's current orientation.
func (r *Robot) Dir() Orientation {
	return r.orientation
}

// Update replaces both position and orientation.
func (r *Robot) Update(pos Position, dir Orientation) {
	r.position = pos
	r.orientation = dir
}

// NextPos returns the position the robot would move to based on orientation.
func (r *Robot) NextPos() Position {
	return r.position.Add(r.orientation.Step())
}

// Clone returns an independent copy of the robot.
func (r *Robot) Clone() *Robot {
	c := *r
	return &c
}

// Snapshot returns the robot state as plain data.
func (r *Robot) Snapshot() Snapshot {
	return Snapshot{X: r.position.X, Y: r.position.Y, Orientation: r.orientation}
}

func (r *Robot) String() string {
	return r.Snapshot().String()
}

// Render returns the sprite lines for the robot at the given sprite size.
func (r *Robot) Render(size string) []string {
	st := robotStyle()
	var sprite []string
	for _, s := range robotSprite(size, r.orientation) {
		sprite = append(sprite, st.Render(s))
	}
	return sprite
}

func robotStyle() lipgloss.Style {
	color := style.RGBColor["yellow"]
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(style.GenerateHexColor(color.R, color.G, color.B)))
}

func robotSprite(size string, dir Orientation) []string {
	switch size {
	case SpriteSmall:
		switch dir {
		case North:
			return []string{"▲"}
		case East:
			return []string{"▶"}
		case South:
			return []string{"▼"}
		case West:
			return []string{"◀"}
		}
	case SpriteMedium:
		switch dir {
		case North:
			return []string{"▲▲"}
		case East:
			return []string{"▶▶"}
		case South:
			return []string{"▼▼"}
		case West:
			return []string{"◀◀"}
		}
	case SpriteLarge:
		switch dir {
		case North:
			return []string{" ▲▲ ", " ██ "}
		case East:
			return []string{" █▶ ", " █▶ "}
		case South:
			return []string{" ██ ", " ▼▼ "}
		case West:
			return []string{" ◀█ ", " ◀█ "}
		}
	}
	return []string{"R"}
}
