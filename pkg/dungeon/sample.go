package dungeon

import (
	"fmt"

	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/random"
)

// DefaultWeight replaces non-positive encounter weights before sampling.
// Malformed weights degrade to this value instead of erroring, so pools
// with bad data remain usable.
const DefaultWeight = 10

// usableWeight coerces a declared weight into a positive sampling weight.
func usableWeight(w int) int {
	if w <= 0 {
		return DefaultWeight
	}
	return w
}

// SelectByWeight draws count distinct encounters from the pool by weighted
// sampling without replacement: each draw picks a uniform point on the
// cumulative weight line, then removes the chosen encounter from the line.
//
// count == 0 returns an empty slice. A negative count, or a count larger
// than the pool, wraps ErrInvalidCount. The input pool is not modified.
func SelectByWeight(pool []catalog.EncounterDefinition, count int, src random.Source) ([]catalog.EncounterDefinition, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if count > len(pool) {
		return nil, fmt.Errorf("%w: requested %d from pool of %d", ErrInvalidCount, count, len(pool))
	}
	if count == 0 {
		return []catalog.EncounterDefinition{}, nil
	}

	remaining := make([]catalog.EncounterDefinition, len(pool))
	copy(remaining, pool)
	total := 0
	for _, e := range remaining {
		total += usableWeight(e.Weight)
	}

	selected := make([]catalog.EncounterDefinition, 0, count)
	for len(selected) < count {
		roll := src.Intn(total)
		cumulative := 0
		idx := len(remaining) - 1
		for i, e := range remaining {
			cumulative += usableWeight(e.Weight)
			if roll < cumulative {
				idx = i
				break
			}
		}
		chosen := remaining[idx]
		selected = append(selected, chosen)
		total -= usableWeight(chosen.Weight)
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return selected, nil
}
