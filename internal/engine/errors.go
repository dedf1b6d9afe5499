package engine

import "errors"

// Every rejection is side-effect free: the board is untouched whenever
// one of these is returned.
var (
	// ErrGameOver rejects any attempt once the game has ended.
	ErrGameOver = errors.New("game is over")
	// ErrOutOfBounds rejects coordinates off the board.
	ErrOutOfBounds = errors.New("square is out of bounds")
	// ErrNoPieceAtSquare rejects a move whose source square is empty.
	ErrNoPieceAtSquare = errors.New("no piece at from square")
	// ErrNotYourTurn rejects moving the opponent's piece.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrIllegalMove rejects a move the piece cannot make.
	ErrIllegalMove = errors.New("move is not legal")
	// ErrExposesKing rejects a pattern-legal move that would leave the
	// mover's own king in check.
	ErrExposesKing = errors.New("move would leave king in check")
	// ErrCastleNotAllowed rejects a castling attempt whose
	// preconditions are unmet.
	ErrCastleNotAllowed = errors.New("castling is not allowed")
)
