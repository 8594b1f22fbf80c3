// Package effect applies EffectSpecs to player state with bounds
// enforcement and a full audit of what changed. Within one spec, stat
// deltas apply before item changes, which apply before status changes, so a
// status removal triggered in the same spec observes post-item-change
// inventory. Partial failures are collected into the report, never
// escalated: the game keeps running on malformed data.
package effect

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/state"
	"github.com/jwebster45206/maze-engine/pkg/stats"
)

// Applicator mutates player state according to effect specifications,
// resolving item and status ids through an injected catalog.
type Applicator struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewApplicator creates an applicator over a read-only catalog.
func NewApplicator(cat *catalog.Catalog, logger *slog.Logger) *Applicator {
	return &Applicator{catalog: cat, logger: logger}
}

// Apply mutates the player per the spec and returns the audit report.
// A nil or empty spec yields an empty report.
func (a *Applicator) Apply(player *state.PlayerState, spec *catalog.EffectSpec) Report {
	var report Report
	if spec.IsEmpty() {
		return report
	}
	a.applyStatChanges(player, spec.StatChanges, &report)
	a.applyItemChanges(player, spec, &report)
	a.applyStatusChanges(player, spec, &report)
	return report
}

// ApplyStatDelta applies one clamped stat delta and returns its audit
// record plus a bounds warning, or "" when no bound was hit. Exported for
// the status registry, which runs per-turn deltas through the same
// mechanism.
func ApplyStatDelta(ps *stats.PlayerStats, st stats.Stat, delta int) (StatChangeRecord, string) {
	old := ps.Get(st)
	raw := old + delta
	clamped := stats.Clamp(raw)
	ps.Set(st, clamped)

	rec := StatChangeRecord{
		Stat:      string(st),
		Requested: delta,
		Actual:    clamped - old,
		OldValue:  old,
		NewValue:  clamped,
	}
	warning := ""
	if raw > stats.MaxStat {
		warning = fmt.Sprintf("%s clamped at maximum (%d)", st, stats.MaxStat)
	} else if raw < stats.MinStat {
		warning = fmt.Sprintf("%s clamped at minimum (%d)", st, stats.MinStat)
	}
	return rec, warning
}

func (a *Applicator) applyStatChanges(player *state.PlayerState, changes map[string]int, report *Report) {
	// Sorted keys keep the audit order deterministic.
	names := make([]string, 0, len(changes))
	for name := range changes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		st, ok := stats.Canonicalize(name)
		if !ok {
			report.Warnings = append(report.Warnings, fmt.Sprintf("unknown stat %q skipped", name))
			if a.logger != nil {
				a.logger.Warn("Unknown stat in effect spec", "stat", name)
			}
			continue
		}
		rec, warning := ApplyStatDelta(&player.Stats, st, changes[name])
		report.StatChanges = append(report.StatChanges, rec)
		if warning != "" {
			report.Warnings = append(report.Warnings, warning)
		}
	}
}

func (a *Applicator) applyItemChanges(player *state.PlayerState, spec *catalog.EffectSpec, report *Report) {
	for _, delta := range spec.ItemsGained {
		if !a.knownItem(delta.ItemID, report) {
			continue
		}
		if !player.Inventory.Add(delta.ItemID, delta.Count()) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("inventory full (%d slots), %s not added", stats.InventoryCapacity, delta.ItemID))
			continue
		}
		report.ItemsGained = append(report.ItemsGained, ItemChangeRecord{
			ItemID:   delta.ItemID,
			Quantity: delta.Count(),
		})
	}

	for _, delta := range spec.ItemsLost {
		held := player.Inventory.Quantity(delta.ItemID)
		if held == 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("item %s not in inventory, nothing removed", delta.ItemID))
			continue
		}
		// Underflow clamps to the held quantity rather than rejecting.
		removed := player.Inventory.Remove(delta.ItemID, delta.Count())
		if removed < delta.Count() {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("only %d of %d %s removed", removed, delta.Count(), delta.ItemID))
		}
		report.ItemsLost = append(report.ItemsLost, ItemChangeRecord{
			ItemID:   delta.ItemID,
			Quantity: removed,
		})
	}
}

func (a *Applicator) applyStatusChanges(player *state.PlayerState, spec *catalog.EffectSpec, report *Report) {
	for _, id := range spec.ApplyStatuses {
		def, ok := a.catalog.Status(id)
		if !ok {
			report.Warnings = append(report.Warnings, a.unknownRef("status", id, a.catalog.SuggestStatus(id)))
			if a.logger != nil {
				a.logger.Warn("Unknown status in effect spec", "status", id)
			}
			continue
		}
		switch player.ApplyStatus(def) {
		case state.StatusUnchanged:
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("status %s already at max stacks", id))
		default:
			report.StatusesApplied = append(report.StatusesApplied, id)
		}
	}

	for _, id := range spec.RemoveStatuses {
		if player.RemoveStatus(id) {
			report.StatusesRemoved = append(report.StatusesRemoved, id)
		} else {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("status %s not active, nothing removed", id))
		}
	}
}

func (a *Applicator) knownItem(id string, report *Report) bool {
	if _, ok := a.catalog.Item(id); ok {
		return true
	}
	report.Warnings = append(report.Warnings, a.unknownRef("item", id, a.catalog.SuggestItem(id)))
	if a.logger != nil {
		a.logger.Warn("Unknown item in effect spec", "item", id)
	}
	return false
}

func (a *Applicator) unknownRef(kind, id, suggestion string) string {
	msg := fmt.Sprintf("unknown %s id %q skipped", kind, id)
	if suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return msg
}
