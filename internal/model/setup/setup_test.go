package setup

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	keySave  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func TestNext(t *testing.T) {
	values := []string{"small", "medium", "large"}
	tests := []struct {
		current string
		want    string
	}{
		{"small", "medium"},
		{"medium", "large"},
		{"large", "small"},
		{"", "small"},
	}
	for _, tt := range tests {
		if got := next(values, tt.current); got != tt.want {
			t.Errorf("next(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestSaveSettings(t *testing.T) {
	m := New("medium", "greedy", true)
	// Change every setting once, then bounce the selection off both ends.
	_, cmd := press(m,
		keySpace,
		keyDown, keySpace,
		keyDown, keySpace,
		keyDown, keySpace,
		keyDown, keyDown, keyUp, keyUp, keyUp, keyUp,
		keySave,
	)
	if cmd == nil {
		t.Fatal("save produced no command")
	}
	got, ok := cmd().(SaveSettingsMsg)
	if !ok {
		t.Fatalf("save produced %T", cmd())
	}
	want := SaveSettingsMsg{SpriteSize: "large", Router: "toward", AutoSave: false, Reset: true}
	if got != want {
		t.Errorf("SaveSettingsMsg = %+v, want %+v", got, want)
	}
}

func TestDiscardSettings(t *testing.T) {
	_, cmd := press(New("small", "toward", false), keyEsc)
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if _, ok := cmd().(DiscardSettingsMsg); !ok {
		t.Errorf("esc produced %T", cmd())
	}
}

func TestViewMarksSelection(t *testing.T) {
	m, _ := press(New("small", "greedy", true), keyDown)
	view := m.View()
	if !strings.Contains(view, "➤ Route heuristic: greedy") {
		t.Errorf("selection not marked:\n%s", view)
	}
	if !strings.Contains(view, "  Sprite size: small") {
		t.Errorf("sprite size missing:\n%s", view)
	}
}
