package table

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/toyrobot/internal/robot"
	"github.com/vinser/toyrobot/internal/style"
)

// ErrInvalidConfig is returned for table configurations that cannot describe a table.
var ErrInvalidConfig = errors.New("invalid table config")

// ItemType represents a type of cell on the table.
type ItemType int

const (
	Empty ItemType = iota
	Pothole
	Trail
	Target
)

// PotholeMode selects how pothole membership is tested.
type PotholeMode int

const (
	// Exact matches a cell only if it equals one of the configured potholes.
	Exact PotholeMode = iota
	// CrossProduct matches a cell whose X is any pothole X and whose Y is any pothole Y.
	CrossProduct
)

func (m PotholeMode) String() string {
	switch m {
	case CrossProduct:
		return "cross"
	default:
		return "exact"
	}
}

// ParsePotholeMode converts a config value into a PotholeMode. Empty means Exact.
func ParsePotholeMode(s string) (PotholeMode, error) {
	switch s {
	case "", "exact":
		return Exact, nil
	case "cross":
		return CrossProduct, nil
	}
	return Exact, fmt.Errorf("%w: unknown pothole mode %q", ErrInvalidConfig, s)
}

// Reference table settings
const (
	MinValue = 0
	MaxValue = 4
)

// DefaultPotholes are the potholes of the reference table.
var DefaultPotholes = []robot.Position{{X: 2, Y: 1}, {X: 2, Y: 3}}

// Table is a square grid with fixed bounds and potholes. It never changes after New.
type Table struct {
	Min, Max int

	mode     PotholeMode
	potholes map[robot.Position]struct{}
	xs, ys   map[int]struct{}
}

// Option configures a Table.
type Option func(*Table)

// WithPotholeMode sets the pothole membership test.
func WithPotholeMode(mode PotholeMode) Option {
	return func(t *Table) {
		t.mode = mode
	}
}

// New creates a table with inclusive bounds [lo, hi] on both axes.
func New(lo, hi int, potholes []robot.Position, opts ...Option) (*Table, error) {
	if lo > hi {
		return nil, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidConfig, lo, hi)
	}
	t := &Table{
		Min:      lo,
		Max:      hi,
		potholes: make(map[robot.Position]struct{}, len(potholes)),
		xs:       make(map[int]struct{}),
		ys:       make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	for _, p := range potholes {
		if !t.Contains(p) {
			return nil, fmt.Errorf("%w: pothole %v is outside the table", ErrInvalidConfig, p)
		}
		t.potholes[p] = struct{}{}
		t.xs[p.X] = struct{}{}
		t.ys[p.Y] = struct{}{}
	}
	return t, nil
}

// Default returns the reference 5x5 table.
func Default() *Table {
	t, err := New(MinValue, MaxValue, DefaultPotholes)
	if err != nil {
		panic(err)
	}
	return t
}

// Contains reports whether p lies within the table bounds.
func (t *Table) Contains(p robot.Position) bool {
	return min(p.X, p.Y) >= t.Min && max(p.X, p.Y) <= t.Max
}

// IsForbidden reports whether p is a pothole.
func (t *Table) IsForbidden(p robot.Position) bool {
	if t.mode == CrossProduct {
		_, okX := t.xs[p.X]
		_, okY := t.ys[p.Y]
		return okX && okY
	}
	_, ok := t.potholes[p]
	return ok
}

// Passable reports whether a robot may stand on p.
func (t *Table) Passable(p robot.Position) bool {
	return t.Contains(p) && !t.IsForbidden(p)
}

// Mode returns the pothole membership mode.
func (t *Table) Mode() PotholeMode {
	return t.mode
}

// Size returns the number of cells along one axis.
func (t *Table) Size() int {
	return t.Max - t.Min + 1
}

// Potholes returns the configured potholes sorted by Y, then X.
func (t *Table) Potholes() []robot.Position {
	out := make([]robot.Position, 0, len(t.potholes))
	for p := range t.potholes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// ItemAt returns the tile at the specified coordinates.
func (t *Table) ItemAt(x, y int) (ItemType, error) {
	p := robot.Position{X: x, Y: y}
	if !t.Contains(p) {
		return Empty, errors.New("out of bounds")
	}
	if t.IsForbidden(p) {
		return Pothole, nil
	}
	return Empty, nil
}

// Sprites returns the rendered sprite of every item type for the given sprite size.
func Sprites(spriteSize string) map[ItemType][]string {
	var sprites = map[ItemType][]string{
		Empty:   nil,
		Pothole: nil,
		Trail:   nil,
		Target:  nil,
	}

	for item := range sprites {
		st := itemStyle(item)
		var sprite []string
		for _, s := range itemSprite(spriteSize, item) {
			sprite = append(sprite, st.Render(s))
		}
		sprites[item] = sprite
	}
	return sprites
}

func itemStyle(item ItemType) lipgloss.Style {
	var color style.RGB
	switch item {
	case Pothole:
		color = style.RGBColor["brown"]
	case Trail:
		color = style.Dim(style.RGBColor["cyan"])
	case Target:
		color = style.RGBColor["green"]
	default:
		color = style.RGBColor["grey"]
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(style.GenerateHexColor(color.R, color.G, color.B)))
	if item == Target {
		st = st.Bold(true)
	}
	return st
}

func itemSprite(size string, item ItemType) []string {
	switch size {
	case robot.SpriteSmall:
		switch item {
		case Pothole:
			return []string{"●"}
		case Trail:
			return []string{"∙"}
		case Target:
			return []string{"◎"}
		default:
			return []string{"·"}
		}
	case robot.SpriteMedium:
		switch item {
		case Pothole:
			return []string{"██"}
		case Trail:
			return []string{"∙∙"}
		case Target:
			return []string{"◢◣"}
		default:
			return []string{"╺╸"}
		}
	case robot.SpriteLarge:
		switch item {
		case Pothole:
			return []string{" ██ ", " ██ "}
		case Trail:
			return []string{" ∙∙ ", " ∙∙ "}
		case Target:
			return []string{" ◢◣ ", " ◥◤ "}
		default:
			return []string{" ▗▖ ", " ▝▘ "}
		}
	}
	return []string{" "}
}
