package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/jwebster45206/maze-engine/pkg/dungeon"
	"github.com/jwebster45206/maze-engine/pkg/state"
)

func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	rs := NewRedisStorage(mr.Addr(), t.TempDir(), logger)
	return rs, mr
}

func TestRedisStorage_SaveAndLoadGameState(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer mr.Close()
	defer rs.Close()

	ctx := context.Background()
	gs := state.NewGameState(42, dungeon.NewDefaultGrid())
	gs.Turn = 7
	gs.Location = 9
	gs.Player.Inventory.Add("torch", 2)

	if err := rs.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("Failed to save gamestate: %v", err)
	}

	loaded, err := rs.LoadGameState(ctx, gs.ID)
	if err != nil {
		t.Fatalf("Failed to load gamestate: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected non-nil gamestate")
	}

	if loaded.ID != gs.ID {
		t.Errorf("Expected ID %v, got %v", gs.ID, loaded.ID)
	}
	if loaded.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", loaded.Seed)
	}
	if loaded.Turn != 7 {
		t.Errorf("Expected turn 7, got %d", loaded.Turn)
	}
	if loaded.Location != 9 {
		t.Errorf("Expected location 9, got %d", loaded.Location)
	}
	if got := loaded.Player.Inventory.Quantity("torch"); got != 2 {
		t.Errorf("Expected 2 torches, got %d", got)
	}
}

func TestRedisStorage_SaveSetsTTL(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer mr.Close()
	defer rs.Close()

	ctx := context.Background()
	gs := state.NewGameState(1, dungeon.NewDefaultGrid())

	if err := rs.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("Failed to save gamestate: %v", err)
	}

	key := "gamestate:" + gs.ID.String()
	if ttl := mr.TTL(key); ttl != gameStateTTL {
		t.Errorf("Expected TTL %v, got %v", gameStateTTL, ttl)
	}
}

func TestRedisStorage_LoadNonExistentGameState(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer mr.Close()
	defer rs.Close()

	loaded, err := rs.LoadGameState(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Expected no error for non-existent gamestate, got: %v", err)
	}
	if loaded != nil {
		t.Error("Expected nil for non-existent gamestate")
	}
}

func TestRedisStorage_DeleteGameState(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer mr.Close()
	defer rs.Close()

	ctx := context.Background()
	gs := state.NewGameState(3, dungeon.NewDefaultGrid())

	if err := rs.SaveGameState(ctx, gs.ID, gs); err != nil {
		t.Fatalf("Failed to save gamestate: %v", err)
	}
	if err := rs.DeleteGameState(ctx, gs.ID); err != nil {
		t.Fatalf("Failed to delete gamestate: %v", err)
	}

	loaded, err := rs.LoadGameState(ctx, gs.ID)
	if err != nil {
		t.Fatalf("Unexpected error after delete: %v", err)
	}
	if loaded != nil {
		t.Error("Expected nil after delete")
	}
}

func TestRedisStorage_Ping(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer rs.Close()

	if err := rs.Ping(context.Background()); err != nil {
		t.Errorf("Expected ping to succeed: %v", err)
	}

	mr.Close()
	if err := rs.Ping(context.Background()); err == nil {
		t.Error("Expected ping to fail after server close")
	}
}
