package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/state"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu         sync.RWMutex
	gamestates map[uuid.UUID]*state.GameState
	packs      map[string][]catalog.EncounterDefinition
	items      map[string]catalog.ItemDefinition
	statuses   map[string]catalog.StatusEffectDefinition
	pingError  error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		gamestates: make(map[uuid.UUID]*state.GameState),
		packs:      make(map[string][]catalog.EncounterDefinition),
		items:      make(map[string]catalog.ItemDefinition),
		statuses:   make(map[string]catalog.StatusEffectDefinition),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveGameState mocks saving a gamestate
func (m *MockStorage) SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error {
	if gs == nil {
		return errors.New("gamestate cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamestates[id] = gs
	return nil
}

// LoadGameState mocks loading a gamestate
func (m *MockStorage) LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gs, exists := m.gamestates[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	return gs, nil
}

// DeleteGameState mocks deleting a gamestate
func (m *MockStorage) DeleteGameState(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.gamestates, id)
	return nil
}

// ListEncounterPacks mocks listing encounter packs
func (m *MockStorage) ListEncounterPacks(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, 0, len(m.packs))
	for name := range m.packs {
		result = append(result, name)
	}
	return result, nil
}

// GetEncounterPack mocks getting an encounter pack by name
func (m *MockStorage) GetEncounterPack(ctx context.Context, name string) ([]catalog.EncounterDefinition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pack, exists := m.packs[name]
	if !exists {
		return nil, errors.New("encounter pack not found")
	}
	return pack, nil
}

// AddEncounterPack adds an encounter pack to the mock storage (for testing)
func (m *MockStorage) AddEncounterPack(name string, encounters []catalog.EncounterDefinition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.packs[name] = encounters
}

// GetItems mocks loading item definitions
func (m *MockStorage) GetItems(ctx context.Context) (map[string]catalog.ItemDefinition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]catalog.ItemDefinition, len(m.items))
	for id, def := range m.items {
		result[id] = def
	}
	return result, nil
}

// AddItem adds an item definition to the mock storage (for testing)
func (m *MockStorage) AddItem(def catalog.ItemDefinition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[def.ID] = def
}

// GetStatusEffects mocks loading status effect definitions
func (m *MockStorage) GetStatusEffects(ctx context.Context) (map[string]catalog.StatusEffectDefinition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]catalog.StatusEffectDefinition, len(m.statuses))
	for id, def := range m.statuses {
		result[id] = def
	}
	return result, nil
}

// AddStatusEffect adds a status effect definition to the mock storage (for testing)
func (m *MockStorage) AddStatusEffect(def catalog.StatusEffectDefinition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[def.ID] = def
}
