// Command console is a local client for playing one maze session in the
// terminal: it loads definitions from the data directory, distributes
// encounters from the configured seed, and persists the session to Redis
// when one is reachable.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/maze-engine/internal/config"
	applog "github.com/jwebster45206/maze-engine/internal/logger"
	internalstorage "github.com/jwebster45206/maze-engine/internal/storage"
	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/dungeon"
	"github.com/jwebster45206/maze-engine/pkg/random"
	"github.com/jwebster45206/maze-engine/pkg/state"
	"github.com/jwebster45206/maze-engine/pkg/storage"
	"github.com/jwebster45206/maze-engine/pkg/turn"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	store := internalstorage.NewRedisStorage(cfg.RedisAddr, cfg.DataDir, logger)
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	persist := store.Ping(ctx) == nil
	cancel()
	if !persist {
		fmt.Fprintln(os.Stderr, "Redis not reachable; session will not be saved.")
	}

	game, err := newGame(context.Background(), store, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	game.persist = persist

	p := tea.NewProgram(NewConsoleUI(game),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// Game bundles everything the UI needs to run one session.
type Game struct {
	store   storage.Storage
	catalog *catalog.Catalog
	engine  *turn.Engine
	gs      *state.GameState
	persist bool
}

// newGame loads definitions, builds a fresh gamestate from the configured
// seed, and runs the three assignment steps in order.
func newGame(ctx context.Context, store storage.Storage, cfg *config.Config, logger *slog.Logger) (*Game, error) {
	items, err := store.GetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	statuses, err := store.GetStatusEffects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load status effects: %w", err)
	}

	packs, err := store.ListEncounterPacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list encounter packs: %w", err)
	}
	var encounters []catalog.EncounterDefinition
	for _, name := range packs {
		pack, err := store.GetEncounterPack(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load pack %s: %w", name, err)
		}
		encounters = append(encounters, pack...)
	}

	itemDefs := make([]catalog.ItemDefinition, 0, len(items))
	for _, def := range items {
		itemDefs = append(itemDefs, def)
	}
	statusDefs := make([]catalog.StatusEffectDefinition, 0, len(statuses))
	for _, def := range statuses {
		statusDefs = append(statusDefs, def)
	}

	cat := catalog.New(itemDefs, statusDefs)
	gs := state.NewGameState(cfg.Seed, dungeon.NewDefaultGrid())
	rng := random.New(cfg.Seed)

	if err := distribute(gs, encounters, rng); err != nil {
		return nil, err
	}

	return &Game{
		store:   store,
		catalog: cat,
		engine:  turn.NewEngine(cat, encounters, rng, applog.WithGameID(logger, gs.ID.String())),
		gs:      gs,
	}, nil
}

// distribute runs the traps → items → character/monster assignment steps.
func distribute(gs *state.GameState, encounters []catalog.EncounterDefinition, rng random.Source) error {
	byCategory := make(map[catalog.Category][]catalog.EncounterDefinition)
	for _, enc := range encounters {
		byCategory[enc.Category] = append(byCategory[enc.Category], enc)
	}

	if err := gs.Session.AssignTraps(byCategory[catalog.CategoryTrap], rng); err != nil {
		return fmt.Errorf("trap assignment: %w", err)
	}
	if err := gs.Session.AssignItems(byCategory[catalog.CategoryItem], rng); err != nil {
		return fmt.Errorf("item assignment: %w", err)
	}
	if err := gs.Session.AssignCharacterMonster(
		byCategory[catalog.CategoryCharacter],
		byCategory[catalog.CategoryMonster], rng); err != nil {
		return fmt.Errorf("character/monster assignment: %w", err)
	}
	return nil
}

// save persists the gamestate, best effort.
func (g *Game) save() error {
	if !g.persist {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return g.store.SaveGameState(ctx, g.gs.ID, g.gs)
}
