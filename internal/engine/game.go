package engine

// GameStatus classifies a game. It is derived from the position after
// every completed move, never stored independently of it, except for
// resignation which is imposed from outside the rules.
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusCheckmate  GameStatus = "checkmate"
	StatusStalemate  GameStatus = "stalemate"
	StatusResigned   GameStatus = "resigned"
)

// Terminal reports whether the game has ended. There is no transition
// out of a terminal status.
func (s GameStatus) Terminal() bool {
	return s != StatusInProgress
}

// Game drives one chess game: it validates move attempts against its
// board, executes the ones the rules allow, and tracks whose turn it
// is and whether play has ended. It is not safe for concurrent use;
// callers serialize access.
type Game struct {
	board            *Board
	toMove           Side
	status           GameStatus
	winner           Side
	history          []MovePair
	captured         CapturedPieces
	lastMove         *SimpleMove
	promotionDefault PieceType
}

// NewGame starts a game from the standard position, white to move.
func NewGame() *Game {
	return NewGameFromBoard(NewBoard(), White)
}

// NewGameFromBoard starts a game from an arbitrary position.
func NewGameFromBoard(b *Board, toMove Side) *Game {
	return &Game{
		board:            b,
		toMove:           toMove,
		status:           StatusInProgress,
		history:          make([]MovePair, 0),
		captured:         CapturedPieces{White: []Piece{}, Black: []Piece{}},
		promotionDefault: Queen,
	}
}

// SetPromotionDefault overrides the piece awarded when a promotion
// choice is missing or unrecognized. Anything other than a promotable
// kind is ignored; the default stays a queen otherwise.
func (g *Game) SetPromotionDefault(t PieceType) {
	switch t {
	case Queen, Rook, Bishop, Knight:
		g.promotionDefault = t
	}
}

// ToMove returns the side whose turn it is.
func (g *Game) ToMove() Side {
	return g.toMove
}

// Status returns the current game status.
func (g *Game) Status() GameStatus {
	return g.status
}

// Winner returns the winning side for checkmate or resignation, and ""
// while the game runs or after stalemate.
func (g *Game) Winner() Side {
	return g.winner
}

// InCheck reports whether the side to move is currently in check.
func (g *Game) InCheck() bool {
	return g.board.IsInCheck(g.toMove)
}

// PieceAt returns a copy of the piece on pos, if any.
func (g *Game) PieceAt(pos Position) (Piece, bool) {
	pc := g.board.PieceAt(pos)
	if pc == nil {
		return Piece{}, false
	}
	return *pc, true
}

// IsPromotionMove reports whether from to to would deliver a pawn to
// its last rank, so callers can solicit a promotion choice before
// submitting the move.
func (g *Game) IsPromotionMove(from, to Position) bool {
	pc := g.board.PieceAt(from)
	return pc != nil && pc.Type == Pawn && (to.Y == 0 || to.Y == 7)
}

// MakeMove runs one ordinary move attempt for the side to move.
// Rejections leave the board untouched and report why: an empty source,
// the wrong side, a move the piece cannot make, or one that would leave
// the mover's own king in check.
func (g *Game) MakeMove(mv Move) error {
	if g.status.Terminal() {
		return ErrGameOver
	}
	if !mv.From.Valid() || !mv.To.Valid() {
		return ErrOutOfBounds
	}
	pc := g.board.PieceAt(mv.From)
	if pc == nil {
		return ErrNoPieceAtSquare
	}
	if pc.Side != g.toMove {
		return ErrNotYourTurn
	}
	if !g.board.IsLegalDestination(mv.From, mv.To) {
		return ErrIllegalMove
	}
	if g.board.WouldBeInCheck(mv.From, mv.To, g.toMove) {
		return ErrExposesKing
	}

	// Classify the move before anything mutates: both checks read the
	// en passant target, which is about to be cleared.
	isEnPassant := g.board.isEnPassantMove(mv.From, mv.To)
	isDoubleStep := pc.Type == Pawn && abs(mv.To.Y-mv.From.Y) == 2

	ply := Ply{Piece: *pc, From: mv.From, To: mv.To}
	if target := g.board.PieceAt(mv.To); target != nil {
		cp := *target
		ply.Captured = &cp
	}

	// An en passant window lasts exactly one reply.
	g.board.ClearEnPassant()

	if isEnPassant {
		if victim := g.board.captureEnPassant(mv.From, mv.To); victim != nil {
			cp := *victim
			ply.Captured = &cp
		}
	} else {
		g.board.MovePiece(mv.From, mv.To)
	}

	if isDoubleStep {
		g.board.SetEnPassantTarget(Position{X: mv.From.X, Y: (mv.From.Y + mv.To.Y) / 2})
	}

	if moved := g.board.PieceAt(mv.To); moved != nil && moved.Type == Pawn && (mv.To.Y == 0 || mv.To.Y == 7) {
		choice := mv.Promotion
		switch choice {
		case Queen, Rook, Bishop, Knight:
		default:
			choice = g.promotionDefault
		}
		g.board.promote(mv.To, choice)
		ply.Promotion = choice
	}

	ply.Notation = plyNotation(ply)
	g.finishPly(ply)
	return nil
}

// Castle attempts to castle for the side to move on the given wing.
func (g *Game) Castle(kingside bool) error {
	if g.status.Terminal() {
		return ErrGameOver
	}
	if !g.board.CanCastle(g.toMove, kingside) {
		return ErrCastleNotAllowed
	}

	row := 0
	if g.toMove == White {
		row = 7
	}
	kingFrom := Position{X: 4, Y: row}
	king := g.board.PieceAt(kingFrom)
	ply := Ply{Piece: *king, From: kingFrom}
	if kingside {
		ply.To = Position{X: 6, Y: row}
		ply.CastleRookMove = &CastleRookMove{
			From: Position{X: 7, Y: row},
			To:   Position{X: 5, Y: row},
		}
		ply.Notation = "O-O"
	} else {
		ply.To = Position{X: 2, Y: row}
		ply.CastleRookMove = &CastleRookMove{
			From: Position{X: 0, Y: row},
			To:   Position{X: 3, Y: row},
		}
		ply.Notation = "O-O-O"
	}

	g.board.ClearEnPassant()
	g.board.castle(g.toMove, kingside)
	g.finishPly(ply)
	return nil
}

// Resign ends the game in favor of the resigning side's opponent.
func (g *Game) Resign(side Side) error {
	if g.status.Terminal() {
		return ErrGameOver
	}
	g.status = StatusResigned
	g.winner = side.Opponent()
	return nil
}

// finishPly runs the common tail of every executed move: record it,
// hand the turn over, and reclassify the game.
func (g *Game) finishPly(ply Ply) {
	g.recordPly(ply)
	if ply.Captured != nil {
		switch ply.Piece.Side {
		case White:
			g.captured.White = append(g.captured.White, *ply.Captured)
		case Black:
			g.captured.Black = append(g.captured.Black, *ply.Captured)
		}
	}
	g.lastMove = &SimpleMove{From: ply.From, To: ply.To}
	g.toMove = g.toMove.Opponent()
	g.updateStatus()
}

func (g *Game) recordPly(ply Ply) {
	if ply.Piece.Side == White {
		g.history = append(g.history, MovePair{White: &ply})
		return
	}
	if n := len(g.history); n > 0 && g.history[n-1].Black == nil {
		g.history[n-1].Black = &ply
		return
	}
	// Black moved first, which only happens for custom positions.
	g.history = append(g.history, MovePair{Black: &ply})
}

// updateStatus classifies the position after a completed move: if the
// new side to move has no rule-legal move the game ends, checkmate
// when its king is attacked and stalemate otherwise.
func (g *Game) updateStatus() {
	if g.hasAnyLegalMove(g.toMove) {
		return
	}
	if g.board.IsInCheck(g.toMove) {
		g.status = StatusCheckmate
		g.winner = g.toMove.Opponent()
	} else {
		g.status = StatusStalemate
	}
}

// hasAnyLegalMove enumerates every piece of side and every destination
// square, short-circuiting on the first move that is both
// pattern-legal and king-safe. It is the same predicate ordinary move
// validation applies, reused for termination detection.
func (g *Game) hasAnyLegalMove(side Side) bool {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			from := Position{X: x, Y: y}
			pc := g.board.PieceAt(from)
			if pc == nil || pc.Side != side {
				continue
			}
			for ty := 0; ty < 8; ty++ {
				for tx := 0; tx < 8; tx++ {
					to := Position{X: tx, Y: ty}
					if g.board.IsLegalDestination(from, to) && !g.board.WouldBeInCheck(from, to, side) {
						return true
					}
				}
			}
		}
	}
	return false
}

// LegalMovesFrom lists every rule-legal destination for the piece on
// from. The list is empty when the square is empty, the piece belongs
// to the side not on move, or the game has ended. Castling is
// submitted by token, not by square pair, so its king hops are not
// listed.
func (g *Game) LegalMovesFrom(from Position) []Position {
	moves := []Position{}
	pc := g.board.PieceAt(from)
	if g.status.Terminal() || pc == nil || pc.Side != g.toMove {
		return moves
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			to := Position{X: x, Y: y}
			if g.board.IsLegalDestination(from, to) && !g.board.WouldBeInCheck(from, to, g.toMove) {
				moves = append(moves, to)
			}
		}
	}
	return moves
}

// plyNotation builds lightweight algebraic notation for an executed
// ordinary ply: piece letter, the pawn's file on captures, "x" for a
// capture, the destination, and "=X" for promotions.
func plyNotation(ply Ply) string {
	n := ply.Piece.Type.Notation()
	if ply.Piece.Type == Pawn && ply.From.X != ply.To.X {
		n += ply.From.fileNotation()
	}
	if ply.Captured != nil {
		n += "x"
	}
	n += ply.To.Notation()
	if ply.Promotion != "" {
		n += "=" + ply.Promotion.Notation()
	}
	return n
}

// State is a point-in-time snapshot of a game, shaped for clients.
// Pieces are copied, so holders cannot reach back into the live board.
type State struct {
	Board           [8][8]*Piece   `json:"board"`
	ToMove          Side           `json:"toMove"`
	Status          GameStatus     `json:"status"`
	Winner          Side           `json:"winner,omitempty"`
	IsCheck         bool           `json:"isCheck"`
	EnPassantTarget *Position      `json:"enPassantTarget,omitempty"`
	MoveHistory     []MovePair     `json:"moveHistory"`
	CapturedPieces  CapturedPieces `json:"capturedPieces"`
	LastMove        *SimpleMove    `json:"lastMove,omitempty"`
}

// State snapshots the game.
func (g *Game) State() State {
	st := State{
		ToMove:         g.toMove,
		Status:         g.status,
		Winner:         g.winner,
		IsCheck:        g.InCheck(),
		MoveHistory:    append([]MovePair(nil), g.history...),
		CapturedPieces: g.captured,
		LastMove:       g.lastMove,
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if pc := g.board.squares[y][x]; pc != nil {
				cp := *pc
				st.Board[y][x] = &cp
			}
		}
	}
	if target, ok := g.board.EnPassantTarget(); ok {
		st.EnPassantTarget = &target
	}
	return st
}
