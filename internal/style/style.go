package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Console
	Prompt      = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple
	Output      = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))            // Bright white
	Trace       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))             // Bright cyan
	Failure     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))              // Bright red
	Echo        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	StatusLine  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	AxisLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	SetupTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	SetupItem   = lipgloss.NewStyle()
	SetupActive = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228"))
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"black":  {0, 0, 0},
	"red":    {255, 0, 0},
	"green":  {0, 255, 0},
	"blue":   {0, 0, 255},
	"yellow": {255, 255, 0},
	"cyan":   {0, 255, 255},
	"white":  {255, 255, 255},
	"grey":   {128, 128, 128},
	"brown":  {165, 42, 42},
}

// GenerateHexColor generates hexadecimal string for given RGB values in the range 0-255.
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

const dimShift = 64

// Dim returns a darker variant of the color, used for trail and background cells.
func Dim(c RGB) RGB {
	return RGB{R: c.R - dimShift, G: c.G - dimShift, B: c.B - dimShift}
}

// Foreground returns a style with the named color as foreground.
func Foreground(name string) lipgloss.Style {
	c := RGBColor[name]
	return lipgloss.NewStyle().Foreground(lipgloss.Color(GenerateHexColor(c.R, c.G, c.B)))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
