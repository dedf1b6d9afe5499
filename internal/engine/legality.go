package engine

// IsLegalDestination reports whether the piece on from may move to to
// under its own movement rule. It ignores whether the move would leave
// the mover's king in check; that filter is WouldBeInCheck, applied by
// the Game layer. Castling is a separate protocol and never appears
// here.
func (b *Board) IsLegalDestination(from, to Position) bool {
	pc := b.PieceAt(from)
	if pc == nil || !to.Valid() || from == to {
		return false
	}
	if dest := b.PieceAt(to); dest != nil && dest.Side == pc.Side {
		return false
	}
	switch pc.Type {
	case Pawn:
		return b.legalPawnMove(pc, from, to)
	case Knight:
		return legalKnightMove(from, to)
	case Bishop:
		return b.legalBishopMove(from, to)
	case Rook:
		return b.legalRookMove(from, to)
	case Queen:
		return b.legalRookMove(from, to) || b.legalBishopMove(from, to)
	case King:
		return legalKingMove(from, to)
	}
	return false
}

func (b *Board) legalPawnMove(pc *Piece, from, to Position) bool {
	dir := -1
	if pc.Side == Black {
		dir = 1
	}
	dy := to.Y - from.Y
	dx := abs(to.X - from.X)

	// one step forward onto an empty square
	if dx == 0 && dy == dir && b.IsEmpty(to) {
		return true
	}
	// two steps forward, only before the pawn has ever moved
	if dx == 0 && dy == 2*dir && !pc.HasMoved {
		mid := Position{X: from.X, Y: from.Y + dir}
		if b.IsEmpty(mid) && b.IsEmpty(to) {
			return true
		}
	}
	// diagonal capture, including onto the en passant target
	if dx == 1 && dy == dir {
		if dest := b.PieceAt(to); dest != nil && dest.Side != pc.Side {
			return true
		}
		if b.enPassantTarget != nil && *b.enPassantTarget == to {
			return true
		}
	}
	return false
}

func legalKnightMove(from, to Position) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

func (b *Board) legalBishopMove(from, to Position) bool {
	if abs(to.X-from.X) != abs(to.Y-from.Y) {
		return false
	}
	return b.PathClear(from, to)
}

func (b *Board) legalRookMove(from, to Position) bool {
	if from.X != to.X && from.Y != to.Y {
		return false
	}
	return b.PathClear(from, to)
}

func legalKingMove(from, to Position) bool {
	return abs(to.X-from.X) <= 1 && abs(to.Y-from.Y) <= 1
}
