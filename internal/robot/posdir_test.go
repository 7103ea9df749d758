package robot

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Orientation
		wantErr bool
	}{
		{name: "lowercase", token: "north", want: North},
		{name: "uppercase", token: "EAST", want: East},
		{name: "mixed case with spaces", token: "  SoUtH ", want: South},
		{name: "west", token: "west", want: West},
		{name: "typo", token: "est", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrientation(tt.token)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOrientation) {
					t.Fatalf("ParseOrientation(%q) error = %v, want ErrInvalidOrientation", tt.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOrientation(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseOrientation(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestRotationClosure(t *testing.T) {
	for _, o := range Orientations() {
		if got := o.Right().Left(); got != o {
			t.Errorf("%v: Right then Left = %v", o, got)
		}
		if got := o.Left().Right(); got != o {
			t.Errorf("%v: Left then Right = %v", o, got)
		}
		if got := o.Left().Left().Left().Left(); got != o {
			t.Errorf("%v: four Lefts = %v", o, got)
		}
		if got := o.Right().Right().Right().Right(); got != o {
			t.Errorf("%v: four Rights = %v", o, got)
		}
		if got := o.Left().Left(); got != o.Reverse() {
			t.Errorf("%v: two Lefts = %v, want %v", o, got, o.Reverse())
		}
	}
}

func TestTurns(t *testing.T) {
	tests := []struct {
		from        Orientation
		left, right Orientation
	}{
		{North, West, East},
		{East, North, South},
		{South, East, West},
		{West, South, North},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			if got := tt.from.Left(); got != tt.left {
				t.Errorf("Left() = %v, want %v", got, tt.left)
			}
			if got := tt.from.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
		})
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		dir  Orientation
		want Position
	}{
		{North, Position{0, 1}},
		{East, Position{1, 0}},
		{South, Position{0, -1}},
		{West, Position{-1, 0}},
	}

	for _, tt := range tests {
		if got := tt.dir.Step(); got != tt.want {
			t.Errorf("%v.Step() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestPositionAdd(t *testing.T) {
	got := Position{X: 2, Y: -1}.Add(Position{X: -3, Y: 4})
	if got != (Position{X: -1, Y: 3}) {
		t.Errorf("Add() = %v", got)
	}
}

func TestOrientationJSON(t *testing.T) {
	raw, err := json.Marshal(Snapshot{X: 1, Y: 2, Orientation: West})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"x":1,"y":2,"orientation":"west"}` {
		t.Fatalf("unexpected JSON %s", raw)
	}

	var s Snapshot
	if err := json.Unmarshal([]byte(`{"x":3,"y":4,"orientation":"SOUTH"}`), &s); err != nil {
		t.Fatal(err)
	}
	if s.Pos() != (Position{3, 4}) || s.Orientation != South {
		t.Errorf("decoded %+v", s)
	}

	if err := json.Unmarshal([]byte(`{"orientation":"up"}`), &s); !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("expected ErrInvalidOrientation, got %v", err)
	}
}
