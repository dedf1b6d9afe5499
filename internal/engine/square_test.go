package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input string
		want  Position
		ok    bool
	}{
		{"a1", Position{X: 0, Y: 7}, true},
		{"h8", Position{X: 7, Y: 0}, true},
		{"e2", Position{X: 4, Y: 6}, true},
		{"E2", Position{X: 4, Y: 6}, true},
		{" d5 ", Position{X: 3, Y: 3}, true},
		{"i1", Position{}, false},
		{"a9", Position{}, false},
		{"a0", Position{}, false},
		{"e", Position{}, false},
		{"e22", Position{}, false},
		{"", Position{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSquare(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := Position{X: x, Y: y}
			got, ok := ParseSquare(p.Notation())
			require.True(t, ok, "notation %q did not parse", p.Notation())
			assert.Equal(t, p, got)
		}
	}
}

func TestPositionValid(t *testing.T) {
	assert.True(t, Position{X: 0, Y: 0}.Valid())
	assert.True(t, Position{X: 7, Y: 7}.Valid())
	assert.False(t, Position{X: -1, Y: 0}.Valid())
	assert.False(t, Position{X: 0, Y: 8}.Valid())
	assert.False(t, Position{X: 8, Y: 3}.Valid())
}
