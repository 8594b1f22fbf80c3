package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/state"
)

// Storage defines a unified interface for all storage operations.
// This interface combines gamestate persistence (Redis) with definition
// loading (filesystem).
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// GameState operations (Redis-backed)
	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error)
	DeleteGameState(ctx context.Context, id uuid.UUID) error

	// Encounter pack operations (filesystem-backed). A pack is one YAML
	// file holding a list of encounter definitions.
	ListEncounterPacks(ctx context.Context) ([]string, error)
	GetEncounterPack(ctx context.Context, name string) ([]catalog.EncounterDefinition, error)

	// Item and status effect definitions (filesystem-backed)
	GetItems(ctx context.Context) (map[string]catalog.ItemDefinition, error)
	GetStatusEffects(ctx context.Context) (map[string]catalog.StatusEffectDefinition, error)
}
