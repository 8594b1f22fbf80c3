package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/maze-engine/pkg/dungeon"
)

// GameState is the full state of one maze run: the player aggregate, the
// allocation session produced by the distribution engine, and the turn
// counter. It round-trips through JSON without loss.
type GameState struct {
	ID        uuid.UUID        `json:"id"`
	Seed      int64            `json:"seed"`
	Turn      int              `json:"turn"`
	Location  dungeon.RoomID   `json:"location"`
	Player    PlayerState      `json:"player"`
	Session   *dungeon.Session `json:"session,omitempty"`
	IsEnded   bool             `json:"is_ended,omitempty"`
	CreatedAt time.Time        `json:"created_at,omitempty"`
	UpdatedAt time.Time        `json:"updated_at,omitempty"`
}

// NewGameState creates a fresh run on the given grid. The caller runs the
// three assignment steps on the session before play starts.
func NewGameState(seed int64, grid *dungeon.Grid) *GameState {
	return &GameState{
		ID:        uuid.New(),
		Seed:      seed,
		Location:  grid.Start,
		Player:    NewPlayerState(),
		Session:   dungeon.NewSession(grid),
		CreatedAt: time.Now(),
	}
}
