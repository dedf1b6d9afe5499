package service

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/tbeck/clichess/internal/engine"
	"github.com/tbeck/clichess/internal/model"
	"github.com/tbeck/clichess/internal/ws"
)

// The connections for a specific room
type roomConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func newRoomConnections() *roomConnections {
	return &roomConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Room couples one game with the players seated at it and the
// connections observing it. The engine itself is single-threaded; the
// room's mutex is the single writer gate in front of it.
type Room struct {
	ID    string
	mu    sync.Mutex
	game  *engine.Game
	white model.Player
	black model.Player
	conns *roomConnections
}

// RoomState is the client-facing snapshot: the engine state plus who
// is seated.
type RoomState struct {
	engine.State
	Players struct {
		White model.ClientPlayer `json:"white"`
		Black model.ClientPlayer `json:"black"`
	} `json:"players"`
}

func NewRoom(id string, promotionDefault engine.PieceType) *Room {
	game := engine.NewGame()
	game.SetPromotionDefault(promotionDefault)
	return &Room{
		ID:    id,
		game:  game,
		conns: newRoomConnections(),
	}
}

// AddPlayer seats a player on the first free side, white first.
func (r *Room) AddPlayer(player model.Player) (engine.Side, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.white.ID == "" {
		r.white = player
		return engine.White, nil
	}
	if r.black.ID == "" {
		r.black = player
		return engine.Black, nil
	}
	return "", ErrGameFull
}

func (r *Room) HasPlayer(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.playerSide(playerID)
	return ok
}

func (r *Room) CanSpectate() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.canSpectate()
}

func (r *Room) canSpectate() bool {
	return r.white.ID == "" || r.black.ID == ""
}

// playerSide must be called with the room lock held.
func (r *Room) playerSide(playerID string) (engine.Side, bool) {
	if r.white.ID != "" && r.white.ID == playerID {
		return engine.White, true
	}
	if r.black.ID != "" && r.black.ID == playerID {
		return engine.Black, true
	}
	return "", false
}

// MakeMove submits an ordinary move on behalf of a seated player.
func (r *Room) MakeMove(playerID string, mv engine.Move) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	side, ok := r.playerSide(playerID)
	if !ok {
		return ErrNotSeated
	}
	if side != r.game.ToMove() {
		return engine.ErrNotYourTurn
	}
	if err := r.game.MakeMove(mv); err != nil {
		return err
	}

	go r.broadcastState()
	return nil
}

// Castle submits a castling attempt on behalf of a seated player.
func (r *Room) Castle(playerID string, kingside bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	side, ok := r.playerSide(playerID)
	if !ok {
		return ErrNotSeated
	}
	if side != r.game.ToMove() {
		return engine.ErrNotYourTurn
	}
	if err := r.game.Castle(kingside); err != nil {
		return err
	}

	go r.broadcastState()
	return nil
}

// Resign ends the game in the opponent's favor.
func (r *Room) Resign(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	side, ok := r.playerSide(playerID)
	if !ok {
		return ErrNotSeated
	}
	if err := r.game.Resign(side); err != nil {
		return err
	}

	go r.broadcastState()
	return nil
}

// LegalMoves lists the rule-legal destinations from a square.
func (r *Room) LegalMoves(from engine.Position) []engine.Position {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.LegalMovesFrom(from)
}

// State snapshots the room for clients.
func (r *Room) State() RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state()
}

// state must be called with the room lock held.
func (r *Room) state() RoomState {
	st := RoomState{State: r.game.State()}
	st.Players.White = model.ClientPlayer{Name: r.white.Name, Color: engine.White}
	st.Players.Black = model.ClientPlayer{Name: r.black.Name, Color: engine.Black}
	return st
}

// RegisterConnection attaches a WebSocket to the room. Seated players
// and, while a seat is free, spectators are allowed. A second
// connection for the same player is rejected in favor of the first.
func (r *Room) RegisterConnection(playerID string, conn *websocket.Conn) error {
	r.mu.Lock()
	_, seated := r.playerSide(playerID)
	authorized := seated || r.canSpectate()
	r.mu.Unlock()

	if !authorized {
		return ErrNotSeated
	}

	r.conns.mu.Lock()
	if _, exists := r.conns.connections[playerID]; exists {
		r.conns.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	r.conns.connections[playerID] = conn
	r.conns.mu.Unlock()

	go r.broadcastState()
	return nil
}

func (r *Room) UnregisterConnection(playerID string) {
	r.conns.mu.Lock()
	defer r.conns.mu.Unlock()
	delete(r.conns.connections, playerID)
}

// broadcastState pushes the current snapshot to every connection,
// dropping the ones that fail.
func (r *Room) broadcastState() {
	state := r.State()
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("marshal room state: %v", err)
		return
	}

	r.conns.mu.RLock()
	active := make(map[string]*websocket.Conn, len(r.conns.connections))
	for playerID, conn := range r.conns.connections {
		active[playerID] = conn
	}
	r.conns.mu.RUnlock()

	for playerID, conn := range active {
		err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		})
		if err != nil {
			log.Printf("send state to player %s: %v", playerID, err)
			r.conns.mu.Lock()
			delete(r.conns.connections, playerID)
			r.conns.mu.Unlock()
		}
	}
}
