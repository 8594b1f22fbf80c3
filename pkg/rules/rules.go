// Package rules evaluates choice requirements against player state. The
// evaluator is pure: it returns a pass/fail verdict plus itemized
// diagnostics, and never mutates the player.
package rules

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/state"
	"github.com/jwebster45206/maze-engine/pkg/stats"
)

// ErrUnknownOperator is returned when a requirement declares a comparison
// operator the evaluator does not support. This is a data configuration
// fault, never downgraded to a silent failure.
var ErrUnknownOperator = errors.New("unknown comparison operator")

// InsufficientStat details one failed stat comparison.
type InsufficientStat struct {
	Stat          string `json:"stat"`
	CurrentValue  int    `json:"current_value"`
	Operator      string `json:"operator"`
	RequiredValue int    `json:"required_value"`
}

// Result is the evaluation verdict with itemized failure diagnostics. All
// failing items and stats are collected, not just the first.
type Result struct {
	IsAvailable       bool               `json:"is_available"`
	FailureReasons    []string           `json:"failure_reasons,omitempty"`
	MissingItems      []string           `json:"missing_items,omitempty"`
	InsufficientStats []InsufficientStat `json:"insufficient_stats,omitempty"`
}

// RequirementError is returned when a choice is selected despite unmet
// requirements. It carries the full evaluation result so the caller can
// re-present the reasons to the player.
type RequirementError struct {
	Result Result
}

func (e *RequirementError) Error() string {
	if len(e.Result.FailureReasons) == 0 {
		return "requirements not met"
	}
	return "requirements not met: " + e.Result.FailureReasons[0]
}

// Evaluator checks requirements against player state, resolving item display
// names through an injected catalog.
type Evaluator struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewEvaluator creates an evaluator over a read-only catalog.
func NewEvaluator(cat *catalog.Catalog, logger *slog.Logger) *Evaluator {
	return &Evaluator{catalog: cat, logger: logger}
}

// Evaluate checks a requirement against the player. A nil requirement is
// always satisfied. An unrecognized stat name resolves to a current value of
// 0 so the requirement fails gracefully; an unrecognized operator is a hard
// error wrapping ErrUnknownOperator.
func (ev *Evaluator) Evaluate(req *catalog.Requirement, player state.PlayerState) (Result, error) {
	res := Result{IsAvailable: true}
	if req == nil {
		return res, nil
	}

	for _, itemID := range req.Items {
		if player.Inventory.Has(itemID) {
			continue
		}
		res.IsAvailable = false
		res.MissingItems = append(res.MissingItems, itemID)
		res.FailureReasons = append(res.FailureReasons, "missing item: "+ev.itemName(itemID))
	}

	for name, cmp := range req.Stats {
		current := 0
		if canonical, ok := stats.Canonicalize(name); ok {
			current = player.Stats.Get(canonical)
		} else if ev.logger != nil {
			ev.logger.Warn("Unrecognized stat in requirement, treating value as 0", "stat", name)
		}

		ok, err := compare(current, cmp.Operator, cmp.Value)
		if err != nil {
			return Result{}, fmt.Errorf("stat %q: %w", name, err)
		}
		if ok {
			continue
		}
		res.IsAvailable = false
		res.InsufficientStats = append(res.InsufficientStats, InsufficientStat{
			Stat:          name,
			CurrentValue:  current,
			Operator:      cmp.Operator,
			RequiredValue: cmp.Value,
		})
		res.FailureReasons = append(res.FailureReasons,
			fmt.Sprintf("%s is %d, requires %s %d", name, current, cmp.Operator, cmp.Value))
	}

	return res, nil
}

func (ev *Evaluator) itemName(id string) string {
	if ev.catalog != nil {
		if def, ok := ev.catalog.Item(id); ok && def.Name != "" {
			return def.Name
		}
	}
	return id
}

func compare(current int, operator string, value int) (bool, error) {
	switch operator {
	case ">":
		return current > value, nil
	case ">=":
		return current >= value, nil
	case "<":
		return current < value, nil
	case "<=":
		return current <= value, nil
	case "==":
		return current == value, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownOperator, operator)
	}
}
