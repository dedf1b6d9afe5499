package engine

// Move is one move submission: two squares plus an optional promotion
// choice, consulted only when the move delivers a pawn to its last
// rank.
type Move struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

// SimpleMove is a bare from/to pair.
type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// CastleRookMove records the rook's half of a castle, so clients can
// animate both pieces.
type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Ply is one executed half-move as recorded in the history.
type Ply struct {
	Piece          Piece           `json:"piece"`
	From           Position        `json:"from"`
	To             Position        `json:"to"`
	Captured       *Piece          `json:"captured,omitempty"`
	CastleRookMove *CastleRookMove `json:"castleRookMove,omitempty"`
	Promotion      PieceType       `json:"promotion,omitempty"`
	Notation       string          `json:"notation"`
}

// MovePair is one numbered move of the game: white's ply and, once
// played, black's reply.
type MovePair struct {
	White *Ply `json:"white,omitempty"`
	Black *Ply `json:"black,omitempty"`
}

// CapturedPieces lists what each side has taken.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}
