package state

import (
	"testing"

	"github.com/jwebster45206/maze-engine/pkg/catalog"
)

func TestApplyStatus_AddsNewInstance(t *testing.T) {
	p := NewPlayerState()
	def := catalog.StatusEffectDefinition{ID: "poisoned", DurationTurns: 3}

	if change := p.ApplyStatus(def); change != StatusAdded {
		t.Errorf("Expected %s, got %s", StatusAdded, change)
	}
	idx := p.StatusIndex("poisoned")
	if idx < 0 {
		t.Fatal("Expected active instance")
	}
	if p.Statuses[idx].Remaining != 3 || p.Statuses[idx].Stacks != 1 {
		t.Errorf("Unexpected instance: %+v", p.Statuses[idx])
	}
}

func TestApplyStatus_StacksUpToCap(t *testing.T) {
	p := NewPlayerState()
	def := catalog.StatusEffectDefinition{ID: "bleeding", DurationTurns: 5, Stackable: true, MaxStacks: 3}

	p.ApplyStatus(def)
	if change := p.ApplyStatus(def); change != StatusStacked {
		t.Errorf("Expected %s, got %s", StatusStacked, change)
	}
	if change := p.ApplyStatus(def); change != StatusStacked {
		t.Errorf("Expected %s, got %s", StatusStacked, change)
	}
	if change := p.ApplyStatus(def); change != StatusUnchanged {
		t.Errorf("Expected %s at cap, got %s", StatusUnchanged, change)
	}

	if got := p.Statuses[p.StatusIndex("bleeding")].Stacks; got != 3 {
		t.Errorf("Expected 3 stacks, got %d", got)
	}
}

func TestApplyStatus_NonStackableRefreshesDuration(t *testing.T) {
	p := NewPlayerState()
	def := catalog.StatusEffectDefinition{ID: "chilled", DurationTurns: 4}

	p.ApplyStatus(def)
	p.Statuses[0].Remaining = 1

	if change := p.ApplyStatus(def); change != StatusRefreshed {
		t.Errorf("Expected %s, got %s", StatusRefreshed, change)
	}
	if p.Statuses[0].Remaining != 4 {
		t.Errorf("Expected duration refreshed to 4, got %d", p.Statuses[0].Remaining)
	}
	if p.Statuses[0].Stacks != 1 {
		t.Errorf("Expected stacks unchanged at 1, got %d", p.Statuses[0].Stacks)
	}
}

func TestRemoveStatus(t *testing.T) {
	p := NewPlayerState()
	p.ApplyStatus(catalog.StatusEffectDefinition{ID: "poisoned", DurationTurns: 3})

	if !p.RemoveStatus("poisoned") {
		t.Error("Expected removal to succeed")
	}
	if p.HasStatus("poisoned") {
		t.Error("Expected status gone")
	}
	if p.RemoveStatus("poisoned") {
		t.Error("Expected second removal to report false")
	}
}

func TestPlayerState_CloneIsIndependent(t *testing.T) {
	p := NewPlayerState()
	p.Inventory.Add("torch", 1)
	p.ApplyStatus(catalog.StatusEffectDefinition{ID: "poisoned", DurationTurns: 3})

	clone := p.Clone()
	clone.Stats.HP = 10
	clone.Inventory.Add("torch", 5)
	clone.Statuses[0].Stacks = 9

	if p.Stats.HP != 100 {
		t.Errorf("Original HP mutated: %d", p.Stats.HP)
	}
	if got := p.Inventory.Quantity("torch"); got != 1 {
		t.Errorf("Original inventory mutated: %d", got)
	}
	if p.Statuses[0].Stacks != 1 {
		t.Errorf("Original statuses mutated: %d", p.Statuses[0].Stacks)
	}
}
