package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/tbeck/clichess/internal/engine"
	"github.com/tbeck/clichess/internal/model"
)

// GameManager owns every live room plus the matchmaking queue.
type GameManager struct {
	rooms            map[string]*Room
	queue            *model.Queue
	matchingChannels map[string]chan string
	promotionDefault engine.PieceType
	mu               sync.RWMutex
}

func NewGameManager(promotionDefault engine.PieceType) *GameManager {
	gm := &GameManager{
		rooms:            make(map[string]*Room),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
		promotionDefault: promotionDefault,
	}

	// Start matchmaking processor
	go gm.processMatchmaking()

	return gm
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.rooms[gameID]; exists {
		return ErrGameExists
	}
	gm.rooms[gameID] = NewRoom(gameID, gm.promotionDefault)
	return nil
}

func (gm *GameManager) GetRoom(gameID string) (*Room, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	room, exists := gm.rooms[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return room, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, player model.Player) (engine.Side, error) {
	room, err := gm.GetRoom(gameID)
	if err != nil {
		return "", err
	}
	return room.AddPlayer(player)
}

func (gm *GameManager) GetGameState(gameID string) (RoomState, error) {
	room, err := gm.GetRoom(gameID)
	if err != nil {
		return RoomState{}, err
	}
	return room.State(), nil
}

func (gm *GameManager) MakeMove(gameID, playerID string, mv engine.Move) error {
	room, err := gm.GetRoom(gameID)
	if err != nil {
		return err
	}
	return room.MakeMove(playerID, mv)
}

func (gm *GameManager) Castle(gameID, playerID string, kingside bool) error {
	room, err := gm.GetRoom(gameID)
	if err != nil {
		return err
	}
	return room.Castle(playerID, kingside)
}

func (gm *GameManager) Resign(gameID, playerID string) error {
	room, err := gm.GetRoom(gameID)
	if err != nil {
		return err
	}
	return room.Resign(playerID)
}

func (gm *GameManager) LegalMoves(gameID string, from engine.Position) ([]engine.Position, error) {
	room, err := gm.GetRoom(gameID)
	if err != nil {
		return nil, err
	}
	return room.LegalMoves(from), nil
}

func (gm *GameManager) JoinMatchmaking(player model.Player) error {
	return gm.queue.AddPlayer(player)
}

// RegisterMatchmakingChannel attaches a notification channel for a
// queued player. An existing channel for the same player is replaced.
func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
}

// UnregisterMatchmakingChannel detaches without closing: the creator
// of the channel owns its lifetime.
func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.matchingChannels, playerID)
}

// processMatchmaking pairs the two longest-waiting players once a
// second, creates their room, and notifies both over their channels.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if gm.queue.Size() < 2 {
			continue
		}
		player1, player2 := gm.queue.NextPair()

		gameID := uuid.New().String()
		room := NewRoom(gameID, gm.promotionDefault)

		p1Color, err := room.AddPlayer(player1)
		if err != nil {
			log.Printf("seat player %s: %v", player1.ID, err)
			continue
		}
		p2Color, err := room.AddPlayer(player2)
		if err != nil {
			log.Printf("seat player %s: %v", player2.ID, err)
			continue
		}

		gm.mu.Lock()
		gm.rooms[gameID] = room

		gm.notifyMatch(player1.ID, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
		gm.notifyMatch(player2.ID, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
		gm.mu.Unlock()
	}
}

// notifyMatch must be called with the manager lock held. The channel
// is removed and closed once the event is delivered.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal match event: %v", err)
		return
	}
	select {
	case ch <- string(payload):
		delete(gm.matchingChannels, playerID)
		close(ch)
	default:
		log.Printf("match notification dropped for player %s", playerID)
	}
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	room, err := gm.GetRoom(gameID)
	if err != nil {
		return err
	}
	return room.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string) {
	room, err := gm.GetRoom(gameID)
	if err != nil {
		return
	}
	room.UnregisterConnection(playerID)
}
