package status

import (
	"testing"

	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/state"
)

func testRegistry(defs ...catalog.StatusEffectDefinition) *Registry {
	return NewRegistry(catalog.New(nil, defs), nil)
}

func TestTick_OngoingDeltasScaleWithStacks(t *testing.T) {
	poison := catalog.StatusEffectDefinition{
		ID: "poisoned", DurationTurns: 5,
		Stackable: true, MaxStacks: 3,
		OngoingStatChanges: map[string]int{"hp": -4},
	}
	r := testRegistry(poison)

	player := state.NewPlayerState()
	player.ApplyStatus(poison)
	player.ApplyStatus(poison)

	report := r.Tick(&player)

	if player.Stats.HP != 92 {
		t.Errorf("Expected HP 92 after 2 stacks of -4, got %d", player.Stats.HP)
	}
	if len(report.StatChanges) != 1 {
		t.Fatalf("Expected one stat change record, got %d", len(report.StatChanges))
	}
	if report.StatChanges[0].Requested != -8 {
		t.Errorf("Expected requested -8, got %d", report.StatChanges[0].Requested)
	}
}

func TestTick_OngoingDeltaClampsWithWarning(t *testing.T) {
	drain := catalog.StatusEffectDefinition{
		ID: "draining", DurationTurns: 5,
		OngoingStatChanges: map[string]int{"sanity": -30},
	}
	r := testRegistry(drain)

	player := state.NewPlayerState()
	player.Stats.Sanity = 10
	player.ApplyStatus(drain)

	report := r.Tick(&player)

	if player.Stats.Sanity != 0 {
		t.Errorf("Expected sanity floored at 0, got %d", player.Stats.Sanity)
	}
	if len(report.Warnings) == 0 {
		t.Error("Expected a clamp warning")
	}
}

func TestTick_DurationCountdownAndExpiry(t *testing.T) {
	chilled := catalog.StatusEffectDefinition{ID: "chilled", DurationTurns: 2}
	r := testRegistry(chilled)

	player := state.NewPlayerState()
	player.ApplyStatus(chilled)

	r.Tick(&player)
	if !player.HasStatus("chilled") {
		t.Fatal("Expected status active after first tick")
	}
	if player.Statuses[0].Remaining != 1 {
		t.Errorf("Expected 1 turn remaining, got %d", player.Statuses[0].Remaining)
	}

	report := r.Tick(&player)
	if player.HasStatus("chilled") {
		t.Error("Expected status expired after second tick")
	}
	if len(report.StatusesRemoved) != 1 || report.StatusesRemoved[0] != "chilled" {
		t.Errorf("Expected removal recorded, got %v", report.StatusesRemoved)
	}
}

func TestTick_ConditionBoundDurationNeverCountsDown(t *testing.T) {
	starving := catalog.StatusEffectDefinition{
		ID: "starving", DurationTurns: catalog.DurationUntilCleared,
		Trigger: &catalog.StatCondition{Stat: "hunger", Operator: "<=", Value: 10},
	}
	r := testRegistry(starving)

	player := state.NewPlayerState()
	player.Stats.Hunger = 5

	r.Tick(&player)
	if !player.HasStatus("starving") {
		t.Fatal("Expected trigger to apply status")
	}

	for i := 0; i < 5; i++ {
		r.Tick(&player)
	}
	if !player.HasStatus("starving") {
		t.Error("Expected condition-bound status to persist while condition holds")
	}

	// Condition clears; the status should go with it.
	player.Stats.Hunger = 80
	report := r.Tick(&player)
	if player.HasStatus("starving") {
		t.Error("Expected status removed once condition no longer holds")
	}
	if len(report.StatusesRemoved) != 1 {
		t.Errorf("Expected removal recorded, got %v", report.StatusesRemoved)
	}
}

func TestTick_TriggerAppliesOnThreshold(t *testing.T) {
	wounded := catalog.StatusEffectDefinition{
		ID: "wounded", DurationTurns: 3,
		Trigger: &catalog.StatCondition{Stat: "hp", Operator: "<", Value: 30},
	}
	r := testRegistry(wounded)

	player := state.NewPlayerState()
	report := r.Tick(&player)
	if player.HasStatus("wounded") {
		t.Error("Expected no trigger at full HP")
	}

	player.Stats.HP = 20
	report = r.Tick(&player)
	if !player.HasStatus("wounded") {
		t.Error("Expected trigger below threshold")
	}
	if len(report.StatusesApplied) != 1 || report.StatusesApplied[0] != "wounded" {
		t.Errorf("Expected application recorded, got %v", report.StatusesApplied)
	}
}

func TestTick_UnknownTriggerOperatorCollected(t *testing.T) {
	broken := catalog.StatusEffectDefinition{
		ID: "broken", DurationTurns: 3,
		Trigger: &catalog.StatCondition{Stat: "hp", Operator: "~=", Value: 30},
	}
	r := testRegistry(broken)

	player := state.NewPlayerState()
	report := r.Tick(&player)

	if len(report.Errors) != 1 {
		t.Fatalf("Expected one collected error, got %v", report.Errors)
	}
	if player.HasStatus("broken") {
		t.Error("Expected malformed trigger to never apply")
	}
}

func TestTick_SlotPriorityResolution(t *testing.T) {
	blessed := catalog.StatusEffectDefinition{
		ID: "blessed", DurationTurns: 5, Slot: "morale", Priority: 10,
	}
	shaken := catalog.StatusEffectDefinition{
		ID: "shaken", DurationTurns: 5, Slot: "morale", Priority: 2,
	}
	r := testRegistry(blessed, shaken)

	player := state.NewPlayerState()
	player.ApplyStatus(shaken)
	player.ApplyStatus(blessed)

	report := r.Tick(&player)

	if !player.HasStatus("blessed") {
		t.Error("Expected higher-priority effect to survive")
	}
	if player.HasStatus("shaken") {
		t.Error("Expected lower-priority effect evicted")
	}
	found := false
	for _, id := range report.StatusesRemoved {
		if id == "shaken" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected eviction recorded, got %v", report.StatusesRemoved)
	}
}

func TestTick_SlotTieBreaksOnID(t *testing.T) {
	a := catalog.StatusEffectDefinition{ID: "aura_calm", DurationTurns: 5, Slot: "aura", Priority: 5}
	b := catalog.StatusEffectDefinition{ID: "aura_dread", DurationTurns: 5, Slot: "aura", Priority: 5}
	r := testRegistry(a, b)

	player := state.NewPlayerState()
	player.ApplyStatus(b)
	player.ApplyStatus(a)

	r.Tick(&player)

	if !player.HasStatus("aura_calm") || player.HasStatus("aura_dread") {
		t.Error("Expected lowest id to win a priority tie")
	}
}

func TestRemoveByItem(t *testing.T) {
	poison := catalog.StatusEffectDefinition{
		ID: "poisoned", DurationTurns: 5,
		RemovedByItems: []string{"antidote"},
	}
	chilled := catalog.StatusEffectDefinition{ID: "chilled", DurationTurns: 5}
	r := testRegistry(poison, chilled)

	player := state.NewPlayerState()
	player.ApplyStatus(poison)
	player.ApplyStatus(chilled)

	removed := r.RemoveByItem(&player, "antidote")
	if len(removed) != 1 || removed[0] != "poisoned" {
		t.Errorf("Expected poisoned removed, got %v", removed)
	}
	if !player.HasStatus("chilled") {
		t.Error("Expected unrelated status untouched")
	}
}

func TestRemoveByAction(t *testing.T) {
	soaked := catalog.StatusEffectDefinition{
		ID: "soaked", DurationTurns: 5,
		RemovedByActions: []string{"rest"},
	}
	r := testRegistry(soaked)

	player := state.NewPlayerState()
	player.ApplyStatus(soaked)

	removed := r.RemoveByAction(&player, "rest")
	if len(removed) != 1 || removed[0] != "soaked" {
		t.Errorf("Expected soaked removed, got %v", removed)
	}
}
