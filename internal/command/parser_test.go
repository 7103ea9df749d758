package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaseInsensitive(t *testing.T) {
	in, err := Parse("MOVE")
	require.NoError(t, err)
	assert.Equal(t, Move, in.Kind)
}

func TestParsePlace(t *testing.T) {
	tests := []struct {
		line string
		want Input
	}{
		{"PLACE 2,1,north", Input{Kind: Place, X: 2, Y: 1, Face: "north"}},
		{"place 0 , 4 , WEST", Input{Kind: Place, X: 0, Y: 4, Face: "west"}},
		{"  place 3,3,est  ", Input{Kind: Place, X: 3, Y: 3, Face: "est"}},
		{"place -1,0,north", Input{Kind: Place, X: -1, Y: 0, Face: "north"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePath(t *testing.T) {
	got, err := Parse("path 4, 2")
	require.NoError(t, err)
	assert.Equal(t, Input{Kind: Path, X: 4, Y: 2}, got)
	assert.Equal(t, "path 4,2", got.String())
}

func TestParseOtherCommands(t *testing.T) {
	tests := []struct {
		line string
		want Kind
	}{
		{"move", Move},
		{"left", Left},
		{"right", Right},
		{"report", Report},
		{"help", Help},
		{"q", Quit},
		{"Quit", Quit},
	}

	for _, tt := range tests {
		got, err := Parse(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got.Kind, tt.line)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"place 2,1,north left",
		"place 2,1",
		"place 2",
		"place2",
		"path 1",
		"jump",
		"move move",
		"place 1,1,north!",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(line)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
