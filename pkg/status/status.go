// Package status tracks time-limited modifiers on the player: per-turn
// ongoing stat deltas, duration countdown, automatic stat-threshold
// triggers, and slot-priority conflict resolution.
package status

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/effect"
	"github.com/jwebster45206/maze-engine/pkg/state"
	"github.com/jwebster45206/maze-engine/pkg/stats"
)

// Registry drives the status-effect lifecycle against an injected catalog.
type Registry struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewRegistry creates a lifecycle registry over a read-only catalog.
func NewRegistry(cat *catalog.Catalog, logger *slog.Logger) *Registry {
	return &Registry{catalog: cat, logger: logger}
}

// Tick advances the status lifecycle by one turn:
//
//  1. ongoing stat deltas from all active instances are summed per stat
//     (stacks multiply) and applied once through the clamped mechanism,
//  2. fixed durations count down, expiring at zero,
//  3. automatic triggers re-evaluate against the post-delta stats:
//     matching conditions create or stack instances, and condition-bound
//     instances whose condition no longer holds are removed,
//  4. same-slot conflicts resolve to the highest-priority definition.
//
// This runs once per turn, before any choice-driven effect.
func (r *Registry) Tick(player *state.PlayerState) effect.Report {
	var report effect.Report
	r.applyOngoing(player, &report)
	r.tickDurations(player, &report)
	r.evaluateTriggers(player, &report)
	r.resolveSlots(player, &report)
	return report
}

// applyOngoing sums ongoing deltas across active instances and applies them
// in canonical stat order.
func (r *Registry) applyOngoing(player *state.PlayerState, report *effect.Report) {
	sums := make(map[stats.Stat]int)
	for _, inst := range player.Statuses {
		def, ok := r.catalog.Status(inst.ID)
		if !ok {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("active status %q has no definition, skipped", inst.ID))
			continue
		}
		for name, delta := range def.OngoingStatChanges {
			st, ok := stats.Canonicalize(name)
			if !ok {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("status %s references unknown stat %q", inst.ID, name))
				continue
			}
			sums[st] += delta * inst.Stacks
		}
	}
	for _, st := range stats.AllStats {
		delta, ok := sums[st]
		if !ok || delta == 0 {
			continue
		}
		rec, warning := effect.ApplyStatDelta(&player.Stats, st, delta)
		report.StatChanges = append(report.StatChanges, rec)
		if warning != "" {
			report.Warnings = append(report.Warnings, warning)
		}
	}
}

// tickDurations counts down fixed durations and removes expired instances.
// Condition-bound instances are left to evaluateTriggers.
func (r *Registry) tickDurations(player *state.PlayerState, report *effect.Report) {
	kept := player.Statuses[:0]
	for _, inst := range player.Statuses {
		if inst.Remaining == catalog.DurationUntilCleared {
			kept = append(kept, inst)
			continue
		}
		inst.Remaining--
		if inst.Remaining <= 0 {
			report.StatusesRemoved = append(report.StatusesRemoved, inst.ID)
			continue
		}
		kept = append(kept, inst)
	}
	player.Statuses = kept
}

// evaluateTriggers walks trigger-bearing definitions in id order.
func (r *Registry) evaluateTriggers(player *state.PlayerState, report *effect.Report) {
	defs := r.catalog.Statuses()
	ids := make([]string, 0, len(defs))
	for id, def := range defs {
		if def.Trigger != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		def := defs[id]
		holds, ok := r.conditionHolds(def.Trigger, player.Stats, report)
		if !ok {
			continue
		}
		if holds {
			switch player.ApplyStatus(def) {
			case state.StatusAdded, state.StatusStacked:
				report.StatusesApplied = append(report.StatusesApplied, id)
			}
			continue
		}
		// Condition-bound instances clear as soon as the condition fails,
		// regardless of any numeric duration.
		if def.DurationTurns == catalog.DurationUntilCleared && player.RemoveStatus(id) {
			report.StatusesRemoved = append(report.StatusesRemoved, id)
		}
	}
}

func (r *Registry) conditionHolds(cond *catalog.StatCondition, ps stats.PlayerStats, report *effect.Report) (holds, ok bool) {
	current := 0
	if st, known := stats.Canonicalize(cond.Stat); known {
		current = ps.Get(st)
	} else if r.logger != nil {
		r.logger.Warn("Unrecognized stat in status trigger, treating value as 0", "stat", cond.Stat)
	}
	switch cond.Operator {
	case ">":
		return current > cond.Value, true
	case ">=":
		return current >= cond.Value, true
	case "<":
		return current < cond.Value, true
	case "<=":
		return current <= cond.Value, true
	case "==":
		return current == cond.Value, true
	}
	report.Errors = append(report.Errors,
		fmt.Sprintf("status trigger has unknown operator %q", cond.Operator))
	return false, false
}

// resolveSlots enforces mutual exclusion between effects sharing a slot:
// the highest-priority definition wins, id order breaking ties, so the
// outcome is a stable total order independent of insertion order.
func (r *Registry) resolveSlots(player *state.PlayerState, report *effect.Report) {
	type slotWinner struct {
		id       string
		priority int
	}
	winners := make(map[string]slotWinner)
	for _, inst := range player.Statuses {
		def, ok := r.catalog.Status(inst.ID)
		if !ok || def.Slot == "" {
			continue
		}
		w, seen := winners[def.Slot]
		if !seen || def.Priority > w.priority || (def.Priority == w.priority && inst.ID < w.id) {
			winners[def.Slot] = slotWinner{id: inst.ID, priority: def.Priority}
		}
	}
	if len(winners) == 0 {
		return
	}
	kept := player.Statuses[:0]
	for _, inst := range player.Statuses {
		def, ok := r.catalog.Status(inst.ID)
		if ok && def.Slot != "" && winners[def.Slot].id != inst.ID {
			report.StatusesRemoved = append(report.StatusesRemoved, inst.ID)
			continue
		}
		kept = append(kept, inst)
	}
	player.Statuses = kept
}

// RemoveByItem removes every active status that declares the used item as a
// removal trigger. Returns the removed ids.
func (r *Registry) RemoveByItem(player *state.PlayerState, itemID string) []string {
	return r.removeByTrigger(player, func(def catalog.StatusEffectDefinition) bool {
		return contains(def.RemovedByItems, itemID)
	})
}

// RemoveByAction removes every active status that declares the action tag as
// a removal trigger. Returns the removed ids.
func (r *Registry) RemoveByAction(player *state.PlayerState, action string) []string {
	return r.removeByTrigger(player, func(def catalog.StatusEffectDefinition) bool {
		return contains(def.RemovedByActions, action)
	})
}

func (r *Registry) removeByTrigger(player *state.PlayerState, match func(catalog.StatusEffectDefinition) bool) []string {
	var removed []string
	kept := player.Statuses[:0]
	for _, inst := range player.Statuses {
		def, ok := r.catalog.Status(inst.ID)
		if ok && match(def) {
			removed = append(removed, inst.ID)
			continue
		}
		kept = append(kept, inst)
	}
	player.Statuses = kept
	return removed
}

func contains(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}
