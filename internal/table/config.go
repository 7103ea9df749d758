package table

import (
	"fmt"
	"os"

	"github.com/vinser/toyrobot/internal/robot"
	"gopkg.in/yaml.v3"
)

// Config is the YAML description of a table.
//
//	min: 0
//	max: 4
//	pothole_mode: exact
//	potholes:
//	  - {x: 2, y: 1}
//	  - {x: 2, y: 3}
type Config struct {
	Min         int          `yaml:"min"`
	Max         int          `yaml:"max"`
	PotholeMode string       `yaml:"pothole_mode,omitempty"`
	Potholes    []CellConfig `yaml:"potholes"`
}

// CellConfig is a single cell in a table config.
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Load reads and builds a table from a YAML file.
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("table: load %s: %w", path, err)
	}
	t, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("table: load %s: %w", path, err)
	}
	return t, nil
}

// Parse builds a table from YAML bytes.
func Parse(data []byte) (*Table, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg.Build()
}

// Build validates the config and creates the table.
func (c Config) Build() (*Table, error) {
	mode, err := ParsePotholeMode(c.PotholeMode)
	if err != nil {
		return nil, err
	}
	potholes := make([]robot.Position, 0, len(c.Potholes))
	for _, p := range c.Potholes {
		potholes = append(potholes, robot.Position{X: p.X, Y: p.Y})
	}
	return New(c.Min, c.Max, potholes, WithPotholeMode(mode))
}

// configOf returns the config that rebuilds t.
func configOf(t *Table) Config {
	cfg := Config{Min: t.Min, Max: t.Max, PotholeMode: t.mode.String()}
	for _, p := range t.Potholes() {
		cfg.Potholes = append(cfg.Potholes, CellConfig{X: p.X, Y: p.Y})
	}
	return cfg
}

// Marshal encodes the table as YAML.
func Marshal(t *Table) ([]byte, error) {
	return yaml.Marshal(configOf(t))
}
