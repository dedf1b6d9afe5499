package engine

// Board owns one piece-or-empty value per square plus the single piece
// of transient state, the en passant target. It is a mechanical layer:
// MovePiece relocates without judging legality, which belongs to
// IsLegalDestination and the Game on top of it.
type Board struct {
	squares         [8][8]*Piece
	enPassantTarget *Position
}

// NewBoard returns a board with the standard starting layout.
func NewBoard() *Board {
	b := &Board{}
	back := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, t := range back {
		b.squares[0][x] = &Piece{Type: t, Side: Black}
		b.squares[7][x] = &Piece{Type: t, Side: White}
	}
	for x := 0; x < 8; x++ {
		b.squares[1][x] = &Piece{Type: Pawn, Side: Black}
		b.squares[6][x] = &Piece{Type: Pawn, Side: White}
	}
	return b
}

// NewEmptyBoard returns a board with no pieces, for assembling custom
// positions.
func NewEmptyBoard() *Board {
	return &Board{}
}

// PieceAt returns the occupant of p, or nil for an empty or off-board
// square.
func (b *Board) PieceAt(p Position) *Piece {
	if !p.Valid() {
		return nil
	}
	return b.squares[p.Y][p.X]
}

// IsEmpty reports whether p is a valid, unoccupied square.
func (b *Board) IsEmpty(p Position) bool {
	return p.Valid() && b.squares[p.Y][p.X] == nil
}

// Place puts a piece on p, replacing any occupant.
func (b *Board) Place(p Position, pc *Piece) {
	if p.Valid() {
		b.squares[p.Y][p.X] = pc
	}
}

// Remove takes the piece off p and returns it.
func (b *Board) Remove(p Position) *Piece {
	if !p.Valid() {
		return nil
	}
	pc := b.squares[p.Y][p.X]
	b.squares[p.Y][p.X] = nil
	return pc
}

// MovePiece relocates the piece on from to to, discarding whatever
// occupied to, and marks the mover as having moved. It performs no
// legality check. Returns false and leaves the board untouched when
// from is empty or either square is off the board.
func (b *Board) MovePiece(from, to Position) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	pc := b.squares[from.Y][from.X]
	if pc == nil {
		return false
	}
	b.squares[from.Y][from.X] = nil
	b.squares[to.Y][to.X] = pc
	pc.HasMoved = true
	return true
}

// PathClear reports whether every square strictly between from and to
// is empty. from and to must share a rank, file, or exact diagonal;
// callers must not rely on the result otherwise.
func (b *Board) PathClear(from, to Position) bool {
	dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)
	x, y := from.X+dx, from.Y+dy
	for x != to.X || y != to.Y {
		if x < 0 || x > 7 || y < 0 || y > 7 {
			return false
		}
		if b.squares[y][x] != nil {
			return false
		}
		x += dx
		y += dy
	}
	return true
}

// SetEnPassantTarget records the square a pawn may capture onto on the
// very next move.
func (b *Board) SetEnPassantTarget(p Position) {
	b.enPassantTarget = &p
}

// ClearEnPassant drops the en passant target. It is called once per
// completed move attempt, before execution, so an opportunity survives
// for exactly one reply.
func (b *Board) ClearEnPassant() {
	b.enPassantTarget = nil
}

// EnPassantTarget returns the current en passant target, if any.
func (b *Board) EnPassantTarget() (Position, bool) {
	if b.enPassantTarget == nil {
		return Position{}, false
	}
	return *b.enPassantTarget, true
}

// KingSquare scans for the king of the given side.
func (b *Board) KingSquare(side Side) (Position, bool) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pc := b.squares[y][x]
			if pc != nil && pc.Side == side && pc.Type == King {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// IsAttacked reports whether any piece of bySide has p as a legal
// destination under its own movement rule. King safety is deliberately
// ignored here: a pinned piece still gives check.
func (b *Board) IsAttacked(p Position, bySide Side) bool {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pc := b.squares[y][x]
			if pc == nil || pc.Side != bySide {
				continue
			}
			if b.IsLegalDestination(Position{X: x, Y: y}, p) {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether side's king is attacked by the opponent.
// A missing king yields false.
func (b *Board) IsInCheck(side Side) bool {
	kingPos, ok := b.KingSquare(side)
	if !ok {
		return false
	}
	return b.IsAttacked(kingPos, side.Opponent())
}

// WouldBeInCheck simulates moving from to to and reports whether side's
// king would then be attacked. The board is restored exactly before
// returning: the same piece values end up on the same squares, the
// captured occupant included, and no HasMoved flag changes.
func (b *Board) WouldBeInCheck(from, to Position, side Side) bool {
	if !from.Valid() || !to.Valid() {
		return true
	}
	moving := b.squares[from.Y][from.X]
	if moving == nil {
		return true
	}
	captured := b.squares[to.Y][to.X]

	b.squares[to.Y][to.X] = moving
	b.squares[from.Y][from.X] = nil

	inCheck := b.IsInCheck(side)

	b.squares[from.Y][from.X] = moving
	b.squares[to.Y][to.X] = captured
	return inCheck
}
