package model

import "github.com/tbeck/clichess/internal/engine"

// Player identifies a participant on the server side.
type Player struct {
	ID   string
	Name string
}

// ClientPlayer is the client-facing view of a seat.
type ClientPlayer struct {
	Name  string      `json:"name"`
	Color engine.Side `json:"color"`
}

// MatchFoundEvent tells a queued player which game to join and which
// side they were assigned.
type MatchFoundEvent struct {
	GameID string      `json:"gameId"`
	Color  engine.Side `json:"color"`
}
