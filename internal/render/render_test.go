package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFooterBarWidth(t *testing.T) {
	tests := []struct {
		name  string
		hints string
		width int
		want  int
	}{
		{"padded", "esc — back", 30, 30},
		{"exact", "esc — back", 10, 10},
		{"narrow", "esc — back", 4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lipgloss.Width(FooterBar(tt.hints, tt.width)); got != tt.want {
				t.Errorf("width = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPageLayout(t *testing.T) {
	page := Page("Help", "body", "esc — back", 20, 8, 0, 0)
	lines := strings.Split(page, "\n")
	if len(lines) != 8 {
		t.Fatalf("page has %d lines, want 8", len(lines))
	}
	if !strings.Contains(lines[1], "Help") {
		t.Errorf("title line = %q", lines[1])
	}
	if !strings.Contains(page, "body") {
		t.Error("content missing")
	}
	if !strings.Contains(lines[len(lines)-1], "esc — back") {
		t.Errorf("footer line = %q", lines[len(lines)-1])
	}
}
