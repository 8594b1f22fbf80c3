package catalog

// Category classifies an encounter for distribution purposes.
type Category string

const (
	CategoryEmpty     Category = "empty"
	CategoryItem      Category = "item"
	CategoryMonster   Category = "monster"
	CategoryTrap      Category = "trap"
	CategoryCharacter Category = "character"
)

// Persistence controls whether an encounter survives its first use.
type Persistence string

const (
	PersistenceOneTime    Persistence = "one_time"
	PersistencePersistent Persistence = "persistent"
)

// DurationUntilCleared marks a status effect that lasts until its trigger
// condition no longer holds, rather than a fixed number of turns.
const DurationUntilCleared = -1

// EncounterDefinition describes one room event: what it is, how likely it is
// to be placed, and the choices it offers.
type EncounterDefinition struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description"`
	Category    Category    `json:"category" yaml:"category"`
	Weight      int         `json:"weight" yaml:"weight"`
	Persistence Persistence `json:"persistence" yaml:"persistence"`
	Choices     []Choice    `json:"choices,omitempty" yaml:"choices"`
}

// IsOneTime reports whether the encounter is consumed after first use.
// Encounters default to one-time unless explicitly marked persistent.
func (e *EncounterDefinition) IsOneTime() bool {
	return e.Persistence != PersistencePersistent
}

// Choice is one option within an encounter.
type Choice struct {
	Text             string            `json:"text" yaml:"text"`
	Requirement      *Requirement      `json:"requirement,omitempty" yaml:"requirement"`
	Success          *EffectSpec       `json:"success,omitempty" yaml:"success"`
	Failure          *EffectSpec       `json:"failure,omitempty" yaml:"failure"`
	SuccessCondition *SuccessCondition `json:"success_condition,omitempty" yaml:"success_condition"`
}

// Requirement gates a choice on held items and stat comparisons.
// A nil Requirement is always satisfied.
type Requirement struct {
	Items []string                  `json:"items,omitempty" yaml:"items"`
	Stats map[string]StatComparison `json:"stats,omitempty" yaml:"stats"`
}

// StatComparison compares a stat's current value against a threshold.
// Supported operators: > >= < <= ==
type StatComparison struct {
	Operator string `json:"operator" yaml:"operator"`
	Value    int    `json:"value" yaml:"value"`
}

// SuccessCondition is an optional probabilistic gate between a choice's
// success and failure effects. The effective percent chance is
// Chance + statValue*StatScale/100, so StatScale is the number of percentage
// points granted at a full stat of 100.
type SuccessCondition struct {
	Chance    int    `json:"chance" yaml:"chance"`
	Stat      string `json:"stat,omitempty" yaml:"stat"`
	StatScale int    `json:"stat_scale,omitempty" yaml:"stat_scale"`
}

// EffectSpec describes the consequences of a choice, item use, or status
// application. Pure value object; never mutated after construction.
type EffectSpec struct {
	StatChanges    map[string]int `json:"stat_changes,omitempty" yaml:"stat_changes"`
	ItemsGained    []ItemDelta    `json:"items_gained,omitempty" yaml:"items_gained"`
	ItemsLost      []ItemDelta    `json:"items_lost,omitempty" yaml:"items_lost"`
	ApplyStatuses  []string       `json:"apply_statuses,omitempty" yaml:"apply_statuses"`
	RemoveStatuses []string       `json:"remove_statuses,omitempty" yaml:"remove_statuses"`
}

// IsEmpty reports whether the spec changes nothing.
func (e *EffectSpec) IsEmpty() bool {
	return e == nil || (len(e.StatChanges) == 0 &&
		len(e.ItemsGained) == 0 &&
		len(e.ItemsLost) == 0 &&
		len(e.ApplyStatuses) == 0 &&
		len(e.RemoveStatuses) == 0)
}

// ItemDelta is an item id with a quantity. Quantity defaults to 1 when
// omitted in data files.
type ItemDelta struct {
	ItemID   string `json:"item_id" yaml:"item_id"`
	Quantity int    `json:"quantity,omitempty" yaml:"quantity"`
}

// Count returns the delta's quantity, defaulting to 1.
func (d ItemDelta) Count() int {
	if d.Quantity <= 0 {
		return 1
	}
	return d.Quantity
}

// ItemDefinition describes an inventory item and what using it does.
type ItemDefinition struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	ConsumeOnUse bool       `json:"consume_on_use"`
	Effect       EffectSpec `json:"effect"`
}

// StatCondition is a stat threshold used by status-effect triggers.
type StatCondition struct {
	Stat     string `json:"stat"`
	Operator string `json:"operator"`
	Value    int    `json:"value"`
}

// StatusEffectDefinition describes a time-limited modifier.
//
// DurationTurns is a fixed turn count, or DurationUntilCleared for effects
// bound to their Trigger condition. Effects sharing a non-empty Slot are
// mutually exclusive; the highest Priority definition wins, with id order
// breaking ties.
type StatusEffectDefinition struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Slot               string         `json:"slot,omitempty"`
	Priority           int            `json:"priority"`
	OngoingStatChanges map[string]int `json:"ongoing_stat_changes,omitempty"`
	DurationTurns      int            `json:"duration_turns"`
	Stackable          bool           `json:"stackable"`
	MaxStacks          int            `json:"max_stacks,omitempty"`
	Trigger            *StatCondition `json:"trigger,omitempty"`
	RemovedByItems     []string       `json:"removed_by_items,omitempty"`
	RemovedByActions   []string       `json:"removed_by_actions,omitempty"`
}

// StackLimit returns the maximum stack count: MaxStacks for stackable
// effects (at least 1), otherwise 1.
func (d *StatusEffectDefinition) StackLimit() int {
	if !d.Stackable || d.MaxStacks < 1 {
		return 1
	}
	return d.MaxStacks
}
