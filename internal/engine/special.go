package engine

// CanCastle reports whether side may castle on the given wing: the
// king and that wing's rook have never moved, every square between
// them is empty, and none of the king's origin, transit, or
// destination squares is attacked by the opponent.
func (b *Board) CanCastle(side Side, kingside bool) bool {
	row := 0
	if side == White {
		row = 7
	}
	kingPos := Position{X: 4, Y: row}
	rookPos := Position{X: 0, Y: row}
	if kingside {
		rookPos.X = 7
	}

	king := b.PieceAt(kingPos)
	rook := b.PieceAt(rookPos)
	if king == nil || king.Type != King || king.Side != side || king.HasMoved {
		return false
	}
	if rook == nil || rook.Type != Rook || rook.Side != side || rook.HasMoved {
		return false
	}
	if !b.PathClear(kingPos, rookPos) {
		return false
	}

	step := -1
	if kingside {
		step = 1
	}
	enemy := side.Opponent()
	// origin, transit, and destination squares all have to be safe
	for _, x := range []int{4, 4 + step, 4 + 2*step} {
		if b.IsAttacked(Position{X: x, Y: row}, enemy) {
			return false
		}
	}
	return true
}

// castle relocates the king two squares toward the rook and brings the
// rook to the square on the far side of the king. Callers must have
// verified CanCastle; both relocations go through MovePiece, which
// sets HasMoved.
func (b *Board) castle(side Side, kingside bool) {
	row := 0
	if side == White {
		row = 7
	}
	if kingside {
		b.MovePiece(Position{X: 4, Y: row}, Position{X: 6, Y: row})
		b.MovePiece(Position{X: 7, Y: row}, Position{X: 5, Y: row})
	} else {
		b.MovePiece(Position{X: 4, Y: row}, Position{X: 2, Y: row})
		b.MovePiece(Position{X: 0, Y: row}, Position{X: 3, Y: row})
	}
}

// isEnPassantMove reports whether from to to is an en passant capture:
// a pawn moving onto the current en passant target.
func (b *Board) isEnPassantMove(from, to Position) bool {
	pc := b.PieceAt(from)
	if pc == nil || pc.Type != Pawn {
		return false
	}
	return b.enPassantTarget != nil && *b.enPassantTarget == to
}

// captureEnPassant executes the capture: the pawn lands on the target
// square and the enabling pawn, which sits one row behind the target
// toward the capturer's own side, is removed. That pawn is not on the
// destination square and has to be taken off explicitly. Returns the
// removed pawn.
func (b *Board) captureEnPassant(from, to Position) *Piece {
	pc := b.PieceAt(from)
	if pc == nil {
		return nil
	}
	behind := Position{X: to.X, Y: to.Y + 1}
	if pc.Side == Black {
		behind.Y = to.Y - 1
	}
	b.MovePiece(from, to)
	return b.Remove(behind)
}

// promote replaces the pawn on pos with a fresh piece of the chosen
// type and the same side.
func (b *Board) promote(pos Position, choice PieceType) {
	pc := b.PieceAt(pos)
	if pc == nil || pc.Type != Pawn {
		return
	}
	b.Place(pos, &Piece{Type: choice, Side: pc.Side, HasMoved: true})
}
