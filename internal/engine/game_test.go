package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play runs a sequence of "e2e4"-style moves, failing the test on the
// first rejection.
func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		require.Len(t, m, 4, "bad move literal %q", m)
		from := sq(t, m[:2])
		to := sq(t, m[2:])
		require.NoError(t, g.MakeMove(Move{From: from, To: to}), "move %s", m)
	}
}

func TestOpeningSequence(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5", "f1c4")

	assert.Equal(t, Black, g.ToMove())
	assert.Equal(t, StatusInProgress, g.Status())
	assert.False(t, g.InCheck())

	bishop, ok := g.PieceAt(sq(t, "c4"))
	require.True(t, ok)
	assert.Equal(t, Bishop, bishop.Type)
	assert.Equal(t, White, bishop.Side)
}

func TestScholarsMate(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5", "f1c4", "b8c6", "d1f3", "d7d6", "f3f7")

	assert.Equal(t, StatusCheckmate, g.Status())
	assert.Equal(t, White, g.Winner())
	assert.True(t, g.Status().Terminal())

	// No transition out of a terminal state.
	err := g.MakeMove(Move{From: sq(t, "g8"), To: sq(t, "f6")})
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestEnPassantThroughGame(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	st := g.State()
	require.NotNil(t, st.EnPassantTarget)
	assert.Equal(t, sq(t, "d6"), *st.EnPassantTarget)

	play(t, g, "e5d6")

	pawn, ok := g.PieceAt(sq(t, "d6"))
	require.True(t, ok)
	assert.Equal(t, Pawn, pawn.Type)
	assert.Equal(t, White, pawn.Side)

	_, occupied := g.PieceAt(sq(t, "d5"))
	assert.False(t, occupied, "the captured pawn comes off d5, not d6")

	st = g.State()
	require.Len(t, st.CapturedPieces.White, 1)
	assert.Equal(t, Pawn, st.CapturedPieces.White[0].Type)
	assert.Equal(t, Black, st.CapturedPieces.White[0].Side)
	assert.Nil(t, st.EnPassantTarget)
}

func TestEnPassantWindowExpires(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	// White declines the capture; the window closes.
	play(t, g, "b1c3", "h7h6")

	st := g.State()
	assert.Nil(t, st.EnPassantTarget)
	err := g.MakeMove(Move{From: sq(t, "e5"), To: sq(t, "d6")})
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestMoveRejections(t *testing.T) {
	g := NewGame()

	t.Run("no piece at source", func(t *testing.T) {
		err := g.MakeMove(Move{From: sq(t, "e4"), To: sq(t, "e5")})
		assert.ErrorIs(t, err, ErrNoPieceAtSquare)
	})

	t.Run("wrong side", func(t *testing.T) {
		err := g.MakeMove(Move{From: sq(t, "e7"), To: sq(t, "e5")})
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("pattern illegal", func(t *testing.T) {
		err := g.MakeMove(Move{From: sq(t, "e2"), To: sq(t, "e5")})
		assert.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("out of bounds", func(t *testing.T) {
		err := g.MakeMove(Move{From: Position{X: 0, Y: 6}, To: Position{X: -1, Y: 5}})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("rejections leave the game untouched", func(t *testing.T) {
		assert.Equal(t, White, g.ToMove())
		assert.Empty(t, g.State().MoveHistory)
	})
}

func TestPinnedPieceCannotMove(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(sq(t, "e1"), &Piece{Type: King, Side: White})
	b.Place(sq(t, "e2"), &Piece{Type: Rook, Side: White})
	b.Place(sq(t, "e8"), &Piece{Type: Rook, Side: Black})
	b.Place(sq(t, "h8"), &Piece{Type: King, Side: Black})
	g := NewGameFromBoard(b, White)

	err := g.MakeMove(Move{From: sq(t, "e2"), To: sq(t, "d2")})
	assert.ErrorIs(t, err, ErrExposesKing)

	// Along the pin line is fine.
	require.NoError(t, g.MakeMove(Move{From: sq(t, "e2"), To: sq(t, "e5")}))
}

func TestPromotionWithChoice(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(sq(t, "a7"), &Piece{Type: Pawn, Side: White, HasMoved: true})
	b.Place(sq(t, "e1"), &Piece{Type: King, Side: White})
	b.Place(sq(t, "h8"), &Piece{Type: King, Side: Black})
	g := NewGameFromBoard(b, White)

	require.NoError(t, g.MakeMove(Move{From: sq(t, "a7"), To: sq(t, "a8"), Promotion: Knight}))

	pc, ok := g.PieceAt(sq(t, "a8"))
	require.True(t, ok)
	assert.Equal(t, Knight, pc.Type, "the choice is honored, not overridden to queen")
	assert.Equal(t, White, pc.Side)

	st := g.State()
	require.NotEmpty(t, st.MoveHistory)
	require.NotNil(t, st.MoveHistory[0].White)
	assert.Equal(t, Knight, st.MoveHistory[0].White.Promotion)
	assert.Equal(t, "a8=N", st.MoveHistory[0].White.Notation)
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(sq(t, "a7"), &Piece{Type: Pawn, Side: White, HasMoved: true})
	b.Place(sq(t, "e1"), &Piece{Type: King, Side: White})
	b.Place(sq(t, "h6"), &Piece{Type: King, Side: Black})
	g := NewGameFromBoard(b, White)

	require.NoError(t, g.MakeMove(Move{From: sq(t, "a7"), To: sq(t, "a8")}))

	pc, _ := g.PieceAt(sq(t, "a8"))
	assert.Equal(t, Queen, pc.Type)
}

func TestPromotionDefaultIsConfigurable(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(sq(t, "a7"), &Piece{Type: Pawn, Side: White, HasMoved: true})
	b.Place(sq(t, "e1"), &Piece{Type: King, Side: White})
	b.Place(sq(t, "h6"), &Piece{Type: King, Side: Black})
	g := NewGameFromBoard(b, White)
	g.SetPromotionDefault(Rook)

	require.NoError(t, g.MakeMove(Move{From: sq(t, "a7"), To: sq(t, "a8"), Promotion: "king"}))

	pc, _ := g.PieceAt(sq(t, "a8"))
	assert.Equal(t, Rook, pc.Type, "unrecognized choice falls back to the configured default")
}

func TestIsPromotionMove(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(sq(t, "a7"), &Piece{Type: Pawn, Side: White, HasMoved: true})
	b.Place(sq(t, "b2"), &Piece{Type: Rook, Side: White})
	g := NewGameFromBoard(b, White)

	assert.True(t, g.IsPromotionMove(sq(t, "a7"), sq(t, "a8")))
	assert.False(t, g.IsPromotionMove(sq(t, "b2"), sq(t, "b8")), "only pawns promote")
}

func TestStalemate(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(sq(t, "h8"), &Piece{Type: King, Side: Black})
	b.Place(sq(t, "f7"), &Piece{Type: King, Side: White, HasMoved: true})
	b.Place(sq(t, "g5"), &Piece{Type: Queen, Side: White, HasMoved: true})
	g := NewGameFromBoard(b, White)

	require.NoError(t, g.MakeMove(Move{From: sq(t, "g5"), To: sq(t, "g6")}))

	assert.Equal(t, StatusStalemate, g.Status())
	assert.Equal(t, Side(""), g.Winner(), "stalemate is a draw")
}

func TestBackRankMate(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(sq(t, "g8"), &Piece{Type: King, Side: Black, HasMoved: true})
	b.Place(sq(t, "f7"), &Piece{Type: Pawn, Side: Black})
	b.Place(sq(t, "g7"), &Piece{Type: Pawn, Side: Black})
	b.Place(sq(t, "h7"), &Piece{Type: Pawn, Side: Black})
	b.Place(sq(t, "a1"), &Piece{Type: Rook, Side: White, HasMoved: true})
	b.Place(sq(t, "e1"), &Piece{Type: King, Side: White})
	g := NewGameFromBoard(b, White)

	require.NoError(t, g.MakeMove(Move{From: sq(t, "a1"), To: sq(t, "a8")}))

	assert.Equal(t, StatusCheckmate, g.Status())
	assert.Equal(t, White, g.Winner())
}

func TestCastleThroughGame(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5")

	require.NoError(t, g.Castle(true))

	king, ok := g.PieceAt(sq(t, "g1"))
	require.True(t, ok)
	assert.Equal(t, King, king.Type)
	assert.True(t, king.HasMoved)

	rook, ok := g.PieceAt(sq(t, "f1"))
	require.True(t, ok)
	assert.Equal(t, Rook, rook.Type)

	assert.Equal(t, Black, g.ToMove())

	st := g.State()
	last := st.MoveHistory[len(st.MoveHistory)-1]
	require.NotNil(t, last.White)
	assert.Equal(t, "O-O", last.White.Notation)
	require.NotNil(t, last.White.CastleRookMove)
	assert.Equal(t, sq(t, "h1"), last.White.CastleRookMove.From)
	assert.Equal(t, sq(t, "f1"), last.White.CastleRookMove.To)
}

func TestCastleRejectedAfterKingMove(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "e1e2", "g8f6", "e2e1", "e8e7")

	err := g.Castle(true)
	assert.ErrorIs(t, err, ErrCastleNotAllowed)
}

func TestCastleClearsEnPassantWindow(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "d7d5")

	st := g.State()
	require.NotNil(t, st.EnPassantTarget)

	require.NoError(t, g.Castle(true))
	assert.Nil(t, g.State().EnPassantTarget)
}

func TestResign(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4")

	require.NoError(t, g.Resign(Black))
	assert.Equal(t, StatusResigned, g.Status())
	assert.Equal(t, White, g.Winner())

	assert.ErrorIs(t, g.Resign(White), ErrGameOver)
	assert.ErrorIs(t, g.Castle(true), ErrGameOver)
}

func TestLegalMovesFrom(t *testing.T) {
	g := NewGame()

	moves := g.LegalMovesFrom(sq(t, "e2"))
	assert.ElementsMatch(t, []Position{sq(t, "e3"), sq(t, "e4")}, moves)

	assert.Empty(t, g.LegalMovesFrom(sq(t, "e7")), "not that side's turn")
	assert.Empty(t, g.LegalMovesFrom(sq(t, "e4")), "empty square")

	knight := g.LegalMovesFrom(sq(t, "b1"))
	assert.ElementsMatch(t, []Position{sq(t, "a3"), sq(t, "c3")}, knight)
}

func TestMoveHistoryPairsPlies(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5", "g1f3")

	st := g.State()
	require.Len(t, st.MoveHistory, 2)
	require.NotNil(t, st.MoveHistory[0].White)
	require.NotNil(t, st.MoveHistory[0].Black)
	assert.Equal(t, "e4", st.MoveHistory[0].White.Notation)
	assert.Equal(t, "e5", st.MoveHistory[0].Black.Notation)
	require.NotNil(t, st.MoveHistory[1].White)
	assert.Equal(t, "Nf3", st.MoveHistory[1].White.Notation)
	assert.Nil(t, st.MoveHistory[1].Black)
}

func TestCaptureNotationAndList(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "d7d5", "e4d5")

	st := g.State()
	require.Len(t, st.CapturedPieces.White, 1)
	assert.Equal(t, Pawn, st.CapturedPieces.White[0].Type)
	require.NotNil(t, st.MoveHistory[1].White)
	assert.Equal(t, "exd5", st.MoveHistory[1].White.Notation)
}

func TestStateIsASnapshot(t *testing.T) {
	g := NewGame()
	st := g.State()

	// Mutating the snapshot must not reach the live game.
	st.Board[6][4].Type = Queen
	pc, _ := g.PieceAt(sq(t, "e2"))
	assert.Equal(t, Pawn, pc.Type)

	assert.Equal(t, White, st.ToMove)
	assert.Equal(t, StatusInProgress, st.Status)
	assert.False(t, st.IsCheck)
	assert.Nil(t, st.LastMove)
}

func TestCheckIsReported(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "f7f6", "d2d4", "g7g5", "d1h5")

	assert.True(t, g.InCheck(), "black is in check from h5")
	assert.Equal(t, StatusCheckmate, g.Status())
	assert.Equal(t, White, g.Winner())
}
