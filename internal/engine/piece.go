package engine

import "strings"

// Side is one of the two players.
type Side string

const (
	White Side = "white"
	Black Side = "black"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// PieceType is the closed set of piece kinds. Movement legality matches
// on it exhaustively; adding a kind means extending that switch, the
// display symbol, and the promotion choices together.
type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Notation returns the piece letter used in move notation. Pawns have
// no letter.
func (t PieceType) Notation() string {
	switch t {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

// PromotionChoice maps a player's single-character selection onto a
// piece type. Unrecognized input falls back to def, so the promotion
// default stays a caller-visible policy rather than a hidden constant.
func PromotionChoice(c byte, def PieceType) PieceType {
	switch c {
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	}
	return def
}

// Piece occupies exactly one board cell. Moving it means transferring
// it to another cell, never holding it in two places at once.
type Piece struct {
	Type     PieceType `json:"type"`
	Side     Side      `json:"side"`
	HasMoved bool      `json:"hasMoved"`
}

// Symbol returns a one-letter board symbol, uppercase for white and
// lowercase for black.
func (p Piece) Symbol() string {
	var sym string
	switch p.Type {
	case King:
		sym = "K"
	case Queen:
		sym = "Q"
	case Rook:
		sym = "R"
	case Bishop:
		sym = "B"
	case Knight:
		sym = "N"
	case Pawn:
		sym = "P"
	default:
		sym = "?"
	}
	if p.Side == Black {
		return strings.ToLower(sym)
	}
	return sym
}
