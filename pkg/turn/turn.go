// Package turn composes room assignment state and player state into a
// presentable encounter, and routes choice selection and item use through
// the requirement evaluator and effect applicator.
package turn

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/dungeon"
	"github.com/jwebster45206/maze-engine/pkg/effect"
	"github.com/jwebster45206/maze-engine/pkg/random"
	"github.com/jwebster45206/maze-engine/pkg/rules"
	"github.com/jwebster45206/maze-engine/pkg/state"
	"github.com/jwebster45206/maze-engine/pkg/stats"
	"github.com/jwebster45206/maze-engine/pkg/status"
)

// ErrGameEnded is returned for operations against a finished run.
var ErrGameEnded = errors.New("game has ended")

// ErrItemNotHeld is returned when a direct item use is attempted without the
// item in inventory.
var ErrItemNotHeld = errors.New("item not in inventory")

// ChoiceView is a choice annotated with its availability, so the boundary
// layer can render enabled/disabled state without re-evaluating.
type ChoiceView struct {
	Index        int            `json:"index"`
	Choice       catalog.Choice `json:"choice"`
	Availability rules.Result   `json:"availability"`
}

// EncounterView is the presentable result of entering a room.
type EncounterView struct {
	Room        dungeon.RoomID              `json:"room"`
	Encounter   catalog.EncounterDefinition `json:"encounter"`
	Synthesized bool                        `json:"synthesized,omitempty"`
	Choices     []ChoiceView                `json:"choices"`
	// TickReport audits the passive status-effect changes applied when the
	// turn began.
	TickReport effect.Report `json:"tick_report"`
}

// Result is the outcome of a choice selection or item use.
type Result struct {
	Report      effect.Report `json:"report"`
	Description string        `json:"description"`
	// Success is false when a probabilistic success condition failed and
	// the failure effects were applied instead.
	Success bool `json:"success"`
}

// Engine orchestrates turns for one game session.
type Engine struct {
	catalog    *catalog.Catalog
	encounters map[string]catalog.EncounterDefinition
	evaluator  *rules.Evaluator
	applicator *effect.Applicator
	statuses   *status.Registry
	rng        random.Source
	logger     *slog.Logger
}

// NewEngine builds an orchestrator over the loaded definitions. The rng
// drives encounter selection and probabilistic success checks; pass a
// seeded source to reproduce a run.
func NewEngine(cat *catalog.Catalog, encounters []catalog.EncounterDefinition, rng random.Source, logger *slog.Logger) *Engine {
	index := make(map[string]catalog.EncounterDefinition, len(encounters))
	for _, enc := range encounters {
		index[enc.ID] = enc
	}
	return &Engine{
		catalog:    cat,
		encounters: index,
		evaluator:  rules.NewEvaluator(cat, logger),
		applicator: effect.NewApplicator(cat, logger),
		statuses:   status.NewRegistry(cat, logger),
		rng:        rng,
		logger:     logger,
	}
}

// EnterRoom begins a turn: passive status effects tick, the room's visit
// count advances, and the encounter to present is determined. Rooms with no
// available encounters yield a synthesized rest encounter. Every choice is
// annotated with its current availability.
func (e *Engine) EnterRoom(gs *state.GameState, room dungeon.RoomID) (*EncounterView, error) {
	if gs.IsEnded {
		return nil, ErrGameEnded
	}
	if !gs.Session.Grid.Contains(room) {
		return nil, fmt.Errorf("room %d not in grid", room)
	}

	gs.Turn++
	tick := e.statuses.Tick(&gs.Player)
	gs.Location = room
	gs.Session.Visit(room)
	if gs.Player.Stats.HP == 0 {
		gs.IsEnded = true
	}

	enc, synthesized := e.selectEncounter(gs, room)
	view := &EncounterView{
		Room:        room,
		Encounter:   enc,
		Synthesized: synthesized,
		TickReport:  tick,
	}
	for i, choice := range enc.Choices {
		availability, err := e.evaluator.Evaluate(choice.Requirement, gs.Player)
		if err != nil {
			return nil, fmt.Errorf("encounter %s choice %d: %w", enc.ID, i, err)
		}
		view.Choices = append(view.Choices, ChoiceView{
			Index:        i,
			Choice:       choice,
			Availability: availability,
		})
	}
	return view, nil
}

// selectEncounter picks one encounter among the room's available ids,
// weighted by definition weight. Ids with no definition are skipped with a
// warning. Falls back to the synthesized rest encounter.
func (e *Engine) selectEncounter(gs *state.GameState, room dungeon.RoomID) (catalog.EncounterDefinition, bool) {
	var pool []catalog.EncounterDefinition
	for _, id := range gs.Session.Available(room) {
		def, ok := e.encounters[id]
		if !ok {
			if e.logger != nil {
				e.logger.Warn("Assigned encounter has no definition", "encounter", id, "room", room)
			}
			continue
		}
		pool = append(pool, def)
	}
	if len(pool) == 0 {
		return restEncounter(room, gs.Player.Stats), true
	}
	picked, err := dungeon.SelectByWeight(pool, 1, e.rng)
	if err != nil || len(picked) == 0 {
		return pool[0], false
	}
	return picked[0], false
}

// SelectChoice applies a choice from a previously returned view. Unmet
// requirements reject the selection with a rules.RequirementError carrying
// the failure payload; the caller re-presents it, the choice never degrades
// to failure effects. When the choice declares a success condition, a
// percent roll (stat-scaled) decides between success and failure effects.
func (e *Engine) SelectChoice(gs *state.GameState, view *EncounterView, choiceIndex int) (*Result, error) {
	if gs.IsEnded {
		return nil, ErrGameEnded
	}
	if choiceIndex < 0 || choiceIndex >= len(view.Encounter.Choices) {
		return nil, fmt.Errorf("choice index %d out of range", choiceIndex)
	}
	choice := view.Encounter.Choices[choiceIndex]

	availability, err := e.evaluator.Evaluate(choice.Requirement, gs.Player)
	if err != nil {
		return nil, err
	}
	if !availability.IsAvailable {
		return nil, &rules.RequirementError{Result: availability}
	}

	spec := choice.Success
	success := true
	if cond := choice.SuccessCondition; cond != nil {
		if !random.Percent(e.rng, e.effectiveChance(cond, gs)) {
			spec = choice.Failure
			success = false
		}
	}

	report := e.applicator.Apply(&gs.Player, spec)
	if view.Synthesized {
		report.StatusesRemoved = append(report.StatusesRemoved,
			e.statuses.RemoveByAction(&gs.Player, RestEncounterID)...)
	} else if view.Encounter.IsOneTime() {
		gs.Session.MarkConsumed(view.Room, view.Encounter.ID)
	}
	if gs.Player.Stats.HP == 0 {
		gs.IsEnded = true
	}
	return &Result{
		Report:      report,
		Description: report.Describe(),
		Success:     success,
	}, nil
}

// effectiveChance computes the percent chance for a success condition:
// the base chance plus StatScale scaled by the gating stat's current value.
func (e *Engine) effectiveChance(cond *catalog.SuccessCondition, gs *state.GameState) int {
	chance := cond.Chance
	if cond.Stat != "" {
		current := 0
		if st, ok := stats.Canonicalize(cond.Stat); ok {
			current = gs.Player.Stats.Get(st)
		} else if e.logger != nil {
			e.logger.Warn("Unrecognized stat in success condition, treating value as 0", "stat", cond.Stat)
		}
		chance += current * cond.StatScale / 100
	}
	return chance
}

// UseItem applies an item's effect directly, outside any encounter. The use
// is gated by inventory quantity, consumes one unit when the definition says
// so, and fires item-based status removal triggers after the inventory
// change.
func (e *Engine) UseItem(gs *state.GameState, itemID string) (*Result, error) {
	if gs.IsEnded {
		return nil, ErrGameEnded
	}
	def, ok := e.catalog.Item(itemID)
	if !ok {
		return nil, fmt.Errorf("unknown item %q", itemID)
	}
	if !gs.Player.Inventory.Has(itemID) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotHeld, itemID)
	}

	report := e.applicator.Apply(&gs.Player, &def.Effect)
	if def.ConsumeOnUse {
		removed := gs.Player.Inventory.Remove(itemID, 1)
		report.ItemsLost = append(report.ItemsLost, effect.ItemChangeRecord{
			ItemID:   itemID,
			Quantity: removed,
		})
	}
	report.StatusesRemoved = append(report.StatusesRemoved,
		e.statuses.RemoveByItem(&gs.Player, itemID)...)

	if gs.Player.Stats.HP == 0 {
		gs.IsEnded = true
	}
	return &Result{
		Report:      report,
		Description: report.Describe(),
		Success:     true,
	}, nil
}
