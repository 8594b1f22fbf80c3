// Package catalog holds the parsed game definitions: encounters, items and
// status effects. Definitions are plain data owned by an external loader;
// the Catalog is an explicitly injected read-only lookup so that the core
// engines never reach for ambient globals.
package catalog

import (
	"github.com/agnivade/levenshtein"
)

// Catalog is a read-only view over item and status-effect definitions.
// Construct once per game from loaded data and pass into the evaluator,
// applicator and status registry.
type Catalog struct {
	items    map[string]ItemDefinition
	statuses map[string]StatusEffectDefinition
}

// New builds a Catalog from definition slices. Later duplicates of an id
// replace earlier ones.
func New(items []ItemDefinition, statuses []StatusEffectDefinition) *Catalog {
	c := &Catalog{
		items:    make(map[string]ItemDefinition, len(items)),
		statuses: make(map[string]StatusEffectDefinition, len(statuses)),
	}
	for _, it := range items {
		c.items[it.ID] = it
	}
	for _, st := range statuses {
		c.statuses[st.ID] = st
	}
	return c
}

// Item looks up an item definition by id.
func (c *Catalog) Item(id string) (ItemDefinition, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Status looks up a status-effect definition by id.
func (c *Catalog) Status(id string) (StatusEffectDefinition, bool) {
	st, ok := c.statuses[id]
	return st, ok
}

// Statuses returns all status-effect definitions, keyed by id. The returned
// map is a copy; mutating it does not affect the catalog.
func (c *Catalog) Statuses() map[string]StatusEffectDefinition {
	out := make(map[string]StatusEffectDefinition, len(c.statuses))
	for id, def := range c.statuses {
		out[id] = def
	}
	return out
}

// SuggestItem returns the closest known item id to an unrecognized one,
// for did-you-mean warnings. Returns "" when nothing is plausibly close.
func (c *Catalog) SuggestItem(id string) string {
	return closest(id, c.items)
}

// SuggestStatus returns the closest known status id to an unrecognized one.
func (c *Catalog) SuggestStatus(id string) string {
	return closest(id, c.statuses)
}

func closest[V any](id string, defs map[string]V) string {
	best := ""
	bestDist := editLimit(len(id)) + 1
	for known := range defs {
		dist := levenshtein.ComputeDistance(id, known)
		if dist < bestDist {
			best = known
			bestDist = dist
		}
	}
	return best
}

// editLimit scales the acceptable edit distance with id length, so short ids
// don't match everything.
func editLimit(length int) int {
	switch {
	case length <= 3:
		return 1
	case length <= 6:
		return 2
	default:
		return 3
	}
}
