package stats

import "strings"

// Stat bounds. Every mutation clamps into this range.
const (
	MinStat = 0
	MaxStat = 100
)

// Stat is the canonical key for a player attribute.
type Stat string

const (
	StatHP      Stat = "hp"
	StatSanity  Stat = "sanity"
	StatFitness Stat = "fitness"
	StatHunger  Stat = "hunger"
)

// AllStats lists the canonical stats in display order.
var AllStats = []Stat{StatHP, StatSanity, StatFitness, StatHunger}

// statAliases maps accepted spellings to canonical stats. Lookups are
// case-insensitive; see Canonicalize.
var statAliases = map[string]Stat{
	"hp":      StatHP,
	"health":  StatHP,
	"san":     StatSanity,
	"sanity":  StatSanity,
	"fit":     StatFitness,
	"fitness": StatFitness,
	"hun":     StatHunger,
	"hunger":  StatHunger,
}

// Canonicalize resolves a stat name or alias (e.g. "SAN", "Fitness") to its
// canonical Stat. Returns false when the name is not recognized.
func Canonicalize(name string) (Stat, bool) {
	s, ok := statAliases[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Clamp returns v limited to [MinStat, MaxStat].
func Clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// PlayerStats holds the four bounded player attributes.
type PlayerStats struct {
	HP      int `json:"hp"`
	Sanity  int `json:"sanity"`
	Fitness int `json:"fitness"`
	Hunger  int `json:"hunger"`
}

// NewPlayerStats returns stats at full values.
func NewPlayerStats() PlayerStats {
	return PlayerStats{
		HP:      MaxStat,
		Sanity:  MaxStat,
		Fitness: MaxStat,
		Hunger:  MaxStat,
	}
}

// Get returns the current value for a canonical stat. Unrecognized stats
// resolve to 0 so that comparisons against them degrade instead of crashing.
func (ps PlayerStats) Get(s Stat) int {
	switch s {
	case StatHP:
		return ps.HP
	case StatSanity:
		return ps.Sanity
	case StatFitness:
		return ps.Fitness
	case StatHunger:
		return ps.Hunger
	}
	return 0
}

// Set overwrites a canonical stat, clamping into bounds. Unrecognized stats
// are ignored.
func (ps *PlayerStats) Set(s Stat, v int) {
	v = Clamp(v)
	switch s {
	case StatHP:
		ps.HP = v
	case StatSanity:
		ps.Sanity = v
	case StatFitness:
		ps.Fitness = v
	case StatHunger:
		ps.Hunger = v
	}
}
