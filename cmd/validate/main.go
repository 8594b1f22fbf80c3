// Command validate checks a data directory for malformed or dangling game
// definitions before it ships: id formats, operator names, stat names, and
// cross-references from encounter choices to items and status effects.
package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/jwebster45206/maze-engine/internal/config"
	"github.com/jwebster45206/maze-engine/internal/logger"
	internalstorage "github.com/jwebster45206/maze-engine/internal/storage"
	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/stats"
	"github.com/jwebster45206/maze-engine/pkg/storage"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	dataDir := cfg.DataDir
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	store := internalstorage.NewRedisStorage(cfg.RedisAddr, dataDir, log)

	v := &DataValidator{}
	if err := v.validateDataDir(context.Background(), store); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Data directory is valid!")
}

type DataValidator struct {
	errors []string
}

func (v *DataValidator) validateDataDir(ctx context.Context, store storage.Storage) error {
	items, err := store.GetItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}
	statuses, err := store.GetStatusEffects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load status effects: %w", err)
	}
	packs, err := store.ListEncounterPacks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list encounter packs: %w", err)
	}

	for _, def := range sortedItems(items) {
		v.validateItem(def, statuses)
	}
	for _, def := range sortedStatuses(statuses) {
		v.validateStatusEffect(def, items)
	}

	for _, name := range packs {
		fmt.Printf("Validating pack %s...\n", name)
		encounters, err := store.GetEncounterPack(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to load pack %s: %w", name, err)
		}
		seen := make(map[string]bool)
		for i := range encounters {
			enc := &encounters[i]
			if seen[enc.ID] {
				v.addError(fmt.Sprintf("pack %s: duplicate encounter ID '%s'", name, enc.ID))
			}
			seen[enc.ID] = true
			v.validateEncounter(enc, name, items, statuses)
		}
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors:\n%s", strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *DataValidator) validateEncounter(enc *catalog.EncounterDefinition, pack string, items map[string]catalog.ItemDefinition, statuses map[string]catalog.StatusEffectDefinition) {
	where := fmt.Sprintf("pack %s encounter '%s'", pack, enc.ID)

	v.validateIDFormat("encounter ID", enc.ID)
	if enc.Name == "" {
		v.addError(where + " has no name")
	}
	if enc.Weight < 0 {
		v.addError(fmt.Sprintf("%s has negative weight %d", where, enc.Weight))
	}

	switch enc.Category {
	case catalog.CategoryEmpty, catalog.CategoryItem, catalog.CategoryMonster,
		catalog.CategoryTrap, catalog.CategoryCharacter:
	default:
		v.addError(fmt.Sprintf("%s has unknown category '%s'", where, enc.Category))
	}
	switch enc.Persistence {
	case "", catalog.PersistenceOneTime, catalog.PersistencePersistent:
	default:
		v.addError(fmt.Sprintf("%s has unknown persistence '%s'", where, enc.Persistence))
	}

	for i, choice := range enc.Choices {
		cwhere := fmt.Sprintf("%s choice %d", where, i)
		if choice.Text == "" {
			v.addError(cwhere + " has no text")
		}
		v.validateRequirement(choice.Requirement, cwhere, items)
		v.validateEffectSpec(choice.Success, cwhere+" success", items, statuses)
		v.validateEffectSpec(choice.Failure, cwhere+" failure", items, statuses)
		if cond := choice.SuccessCondition; cond != nil {
			if cond.Chance < 0 || cond.Chance > 100 {
				v.addError(fmt.Sprintf("%s has chance %d outside 0-100", cwhere, cond.Chance))
			}
			v.validateStatName(cond.Stat, cwhere+" success condition", true)
		}
	}
}

func (v *DataValidator) validateRequirement(req *catalog.Requirement, where string, items map[string]catalog.ItemDefinition) {
	if req == nil {
		return
	}
	for _, itemID := range req.Items {
		if _, ok := items[itemID]; !ok {
			v.addError(fmt.Sprintf("%s requires unknown item '%s'", where, itemID))
		}
	}
	for name, cmp := range req.Stats {
		v.validateStatName(name, where, false)
		v.validateOperator(cmp.Operator, where)
	}
}

func (v *DataValidator) validateEffectSpec(spec *catalog.EffectSpec, where string, items map[string]catalog.ItemDefinition, statuses map[string]catalog.StatusEffectDefinition) {
	if spec == nil {
		return
	}
	for name := range spec.StatChanges {
		v.validateStatName(name, where, false)
	}
	for _, delta := range append(append([]catalog.ItemDelta{}, spec.ItemsGained...), spec.ItemsLost...) {
		if _, ok := items[delta.ItemID]; !ok {
			v.addError(fmt.Sprintf("%s references unknown item '%s'", where, delta.ItemID))
		}
	}
	for _, id := range append(append([]string{}, spec.ApplyStatuses...), spec.RemoveStatuses...) {
		if _, ok := statuses[id]; !ok {
			v.addError(fmt.Sprintf("%s references unknown status '%s'", where, id))
		}
	}
}

func (v *DataValidator) validateItem(def catalog.ItemDefinition, statuses map[string]catalog.StatusEffectDefinition) {
	v.validateIDFormat("item ID", def.ID)
	if def.Name == "" {
		v.addError(fmt.Sprintf("item '%s' has no name", def.ID))
	}
	where := fmt.Sprintf("item '%s' effect", def.ID)
	for name := range def.Effect.StatChanges {
		v.validateStatName(name, where, false)
	}
	for _, id := range append(append([]string{}, def.Effect.ApplyStatuses...), def.Effect.RemoveStatuses...) {
		if _, ok := statuses[id]; !ok {
			v.addError(fmt.Sprintf("%s references unknown status '%s'", where, id))
		}
	}
}

func (v *DataValidator) validateStatusEffect(def catalog.StatusEffectDefinition, items map[string]catalog.ItemDefinition) {
	v.validateIDFormat("status ID", def.ID)
	where := fmt.Sprintf("status '%s'", def.ID)

	if def.DurationTurns == 0 {
		v.addError(where + " has zero duration (use -1 for until-cleared)")
	}
	if def.Stackable && def.MaxStacks < 1 {
		v.addError(where + " is stackable but has no max_stacks")
	}
	for name := range def.OngoingStatChanges {
		v.validateStatName(name, where, false)
	}
	if def.Trigger != nil {
		v.validateStatName(def.Trigger.Stat, where+" trigger", false)
		v.validateOperator(def.Trigger.Operator, where+" trigger")
	}
	for _, itemID := range def.RemovedByItems {
		if _, ok := items[itemID]; !ok {
			v.addError(fmt.Sprintf("%s removed by unknown item '%s'", where, itemID))
		}
	}
}

func (v *DataValidator) validateStatName(name, where string, allowEmpty bool) {
	if name == "" {
		if !allowEmpty {
			v.addError(where + " has empty stat name")
		}
		return
	}
	if _, ok := stats.Canonicalize(name); !ok {
		v.addError(fmt.Sprintf("%s references unknown stat '%s'", where, name))
	}
}

func (v *DataValidator) validateOperator(op, where string) {
	switch op {
	case ">", ">=", "<", "<=", "==":
	default:
		v.addError(fmt.Sprintf("%s has unknown operator '%s'", where, op))
	}
}

func (v *DataValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}
	if !validIDRegex.MatchString(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *DataValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func sortedItems(items map[string]catalog.ItemDefinition) []catalog.ItemDefinition {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	result := make([]catalog.ItemDefinition, 0, len(ids))
	for _, id := range ids {
		result = append(result, items[id])
	}
	return result
}

func sortedStatuses(statuses map[string]catalog.StatusEffectDefinition) []catalog.StatusEffectDefinition {
	ids := make([]string, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	result := make([]catalog.StatusEffectDefinition, 0, len(ids))
	for _, id := range ids {
		result = append(result, statuses[id])
	}
	return result
}
