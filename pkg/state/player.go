package state

import (
	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/stats"
)

// StatusInstance is a status effect currently active on the player.
type StatusInstance struct {
	ID string `json:"id"`
	// Remaining is the turns left before expiry, or
	// catalog.DurationUntilCleared for condition-bound effects.
	Remaining int `json:"remaining"`
	Stacks    int `json:"stacks"`
}

// StatusChange describes what applying a status actually did.
type StatusChange string

const (
	StatusAdded     StatusChange = "added"
	StatusStacked   StatusChange = "stacked"
	StatusRefreshed StatusChange = "refreshed"
	StatusUnchanged StatusChange = "unchanged"
)

// PlayerState is the player aggregate: bounded stats, inventory and active
// status effects. It is passed into the core as a snapshot and mutated only
// through the effect applicator and status registry.
type PlayerState struct {
	Stats     stats.PlayerStats `json:"stats"`
	Inventory stats.Inventory   `json:"inventory,omitempty"`
	Statuses  []StatusInstance  `json:"statuses,omitempty"`
}

// NewPlayerState returns a player at full stats with an empty inventory.
func NewPlayerState() PlayerState {
	return PlayerState{Stats: stats.NewPlayerStats()}
}

// StatusIndex returns the index of an active status instance, or -1.
func (p *PlayerState) StatusIndex(id string) int {
	for i := range p.Statuses {
		if p.Statuses[i].ID == id {
			return i
		}
	}
	return -1
}

// HasStatus reports whether a status effect is active.
func (p *PlayerState) HasStatus(id string) bool {
	return p.StatusIndex(id) >= 0
}

// ApplyStatus activates a status effect per its definition's stacking rules:
// a new instance when absent, an extra stack when stackable and below the
// cap, a duration refresh when non-stackable and already active.
func (p *PlayerState) ApplyStatus(def catalog.StatusEffectDefinition) StatusChange {
	idx := p.StatusIndex(def.ID)
	if idx < 0 {
		p.Statuses = append(p.Statuses, StatusInstance{
			ID:        def.ID,
			Remaining: def.DurationTurns,
			Stacks:    1,
		})
		return StatusAdded
	}
	inst := &p.Statuses[idx]
	if def.Stackable {
		if inst.Stacks < def.StackLimit() {
			inst.Stacks++
			return StatusStacked
		}
		return StatusUnchanged
	}
	inst.Remaining = def.DurationTurns
	return StatusRefreshed
}

// RemoveStatus deletes all stacks of a status immediately, regardless of
// remaining duration. Returns false when the status was not active.
func (p *PlayerState) RemoveStatus(id string) bool {
	idx := p.StatusIndex(id)
	if idx < 0 {
		return false
	}
	p.Statuses = append(p.Statuses[:idx], p.Statuses[idx+1:]...)
	return true
}

// Clone returns a deep copy of the player state.
func (p PlayerState) Clone() PlayerState {
	out := p
	out.Inventory = p.Inventory.Clone()
	if p.Statuses != nil {
		out.Statuses = make([]StatusInstance, len(p.Statuses))
		copy(out.Statuses, p.Statuses)
	}
	return out
}
