package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/vinser/toyrobot/internal/robot"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.dat")

	s := New()
	s.SpriteSize = robot.SpriteLarge
	s.Router = "toward"
	s.AutoSave = false
	s.Remember(robot.Snapshot{X: 3, Y: 1, Orientation: robot.West})
	if err := s.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	got := LoadFrom(path)
	if got.SessionID != s.SessionID {
		t.Errorf("SessionID = %v, want %v", got.SessionID, s.SessionID)
	}
	if got.SpriteSize != robot.SpriteLarge || got.Router != "toward" || got.AutoSave {
		t.Errorf("settings not restored: %+v", got)
	}
	if got.Robot == nil {
		t.Fatal("robot record not restored")
	}
	if got.Robot.ID != s.Robot.ID {
		t.Errorf("record ID = %v, want %v", got.Robot.ID, s.Robot.ID)
	}
	if snap := got.Robot.Snapshot(); snap != (robot.Snapshot{X: 3, Y: 1, Orientation: robot.West}) {
		t.Errorf("Snapshot() = %+v", snap)
	}
}

func TestRememberKeepsRecordID(t *testing.T) {
	s := New()
	s.Remember(robot.Snapshot{X: 0, Y: 0, Orientation: robot.North})
	id := s.Robot.ID
	if id == uuid.Nil {
		t.Fatal("record ID not assigned")
	}
	s.Remember(robot.Snapshot{X: 1, Y: 0, Orientation: robot.East})
	if s.Robot.ID != id {
		t.Errorf("record ID changed from %v to %v", id, s.Robot.ID)
	}
	if s.Robot.X != 1 || s.Robot.Orientation != robot.East {
		t.Errorf("record not updated: %+v", s.Robot)
	}

	s.Forget()
	if s.Robot != nil {
		t.Error("Forget() kept the robot")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data []byte
	}{
		{"missing file", nil},
		{"garbage", []byte("definitely not encrypted")},
		{"too short", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if tt.data != nil {
				if err := os.WriteFile(path, tt.data, 0o600); err != nil {
					t.Fatal(err)
				}
			}
			got := LoadFrom(path)
			if got.Robot != nil || got.SpriteSize != robot.SpriteDefault || got.Router != RouterDefault || !got.AutoSave {
				t.Errorf("expected defaults, got %+v", got)
			}
			if got.SessionID == uuid.Nil {
				t.Error("defaults must carry a session ID")
			}
		})
	}
}

func TestLoadRejectsTamperedPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.dat")
	s := New()
	s.Remember(robot.Snapshot{X: 4, Y: 4, Orientation: robot.South})
	if err := s.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data[len(data)-1] ^= 0xFF
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if got := LoadFrom(path); got.Robot != nil {
		t.Errorf("tampered state accepted: %+v", got.Robot)
	}
}
