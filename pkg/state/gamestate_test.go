package state

import (
	"encoding/json"
	"testing"

	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/dungeon"
)

func TestNewGameState(t *testing.T) {
	grid := dungeon.NewDefaultGrid()
	gs := NewGameState(42, grid)

	if gs.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", gs.Seed)
	}
	if gs.Location != grid.Start {
		t.Errorf("Expected start location %d, got %d", grid.Start, gs.Location)
	}
	if gs.Turn != 0 || gs.IsEnded {
		t.Error("Expected fresh run at turn 0")
	}
	if gs.Session == nil || gs.Session.Stage != dungeon.StageNew {
		t.Error("Expected empty allocation session")
	}
	if gs.Player.Stats.HP != 100 {
		t.Errorf("Expected full HP, got %d", gs.Player.Stats.HP)
	}
}

func TestGameState_JSONRoundTrip(t *testing.T) {
	gs := NewGameState(7, dungeon.NewDefaultGrid())
	gs.Turn = 12
	gs.Location = 23
	gs.Player.Stats.HP = 61
	gs.Player.Inventory.Add("torch", 2)
	gs.Player.ApplyStatus(catalog.StatusEffectDefinition{ID: "poisoned", DurationTurns: 3})
	gs.Session.MarkConsumed(23, "pit_trap")
	gs.Session.Visit(23)

	data, err := json.Marshal(gs)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var loaded GameState
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.ID != gs.ID || loaded.Seed != 7 || loaded.Turn != 12 || loaded.Location != 23 {
		t.Errorf("Envelope fields lost: %+v", loaded)
	}
	if loaded.Player.Stats.HP != 61 {
		t.Errorf("Stats lost: %d", loaded.Player.Stats.HP)
	}
	if got := loaded.Player.Inventory.Quantity("torch"); got != 2 {
		t.Errorf("Inventory lost: %d", got)
	}
	if !loaded.Player.HasStatus("poisoned") {
		t.Error("Status instance lost")
	}
	if loaded.Session == nil {
		t.Fatal("Session lost")
	}
	if got := loaded.Session.Available(23); len(got) != 0 {
		t.Errorf("Consumed marker lost: %v", got)
	}
	if loaded.Session.Rooms[23].Visits != 1 {
		t.Error("Visit count lost")
	}
	if loaded.Session.Grid.Exit != 63 {
		t.Errorf("Grid lost: exit %d", loaded.Session.Grid.Exit)
	}
}
