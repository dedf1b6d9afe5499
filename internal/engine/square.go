package engine

import (
	"fmt"
	"strings"
)

// Position identifies one of the 64 board cells. X is the file index
// (0 = a, 7 = h) and Y is the row index with 0 at the top, so white's
// back rank is Y = 7.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.X >= 0 && p.X < 8 && p.Y >= 0 && p.Y < 8
}

// Notation returns the square in algebraic form, e.g. "e4".
func (p Position) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+p.X, 8-p.Y)
}

func (p Position) fileNotation() string {
	return fmt.Sprintf("%c", 'a'+p.X)
}

// ParseSquare converts algebraic notation ("e2") into a Position.
func ParseSquare(s string) (Position, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, false
	}
	return Position{X: int(file - 'a'), Y: 8 - int(rank-'0')}, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
