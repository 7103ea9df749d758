package embeddata

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/vinser/toyrobot/internal/table"
)

func TestBuiltInTableMatchesDefault(t *testing.T) {
	data, err := ReadTableYAML()
	if err != nil {
		t.Fatal(err)
	}
	got, err := table.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := table.Default()
	if got.Min != want.Min || got.Max != want.Max || got.Mode() != want.Mode() {
		t.Errorf("bounds = [%d,%d] %v, want [%d,%d] %v", got.Min, got.Max, got.Mode(), want.Min, want.Max, want.Mode())
	}
	gp, wp := got.Potholes(), want.Potholes()
	if len(gp) != len(wp) {
		t.Fatalf("potholes = %v, want %v", gp, wp)
	}
	for i := range gp {
		if gp[i] != wp[i] {
			t.Errorf("pothole %d = %v, want %v", i, gp[i], wp[i])
		}
	}
}

func TestHelpMentionsEveryCommand(t *testing.T) {
	data, err := ReadHelpMD()
	if err != nil {
		t.Fatal(err)
	}
	for _, cmd := range []string{"PLACE", "MOVE", "LEFT", "RIGHT", "REPORT", "PATH", "Q"} {
		if !bytes.Contains(data, []byte("`"+cmd)) {
			t.Errorf("help.md does not mention %s", cmd)
		}
	}
}

func TestFS(t *testing.T) {
	for _, name := range []string{"help.md", "table.yaml", "tips.json"} {
		if _, err := fs.Stat(FS(), name); err != nil {
			t.Errorf("Stat(%s) error = %v", name, err)
		}
	}
}
