package effect

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatChangeRecord audits one stat mutation. Actual is the clamped delta
// that really happened, which differs from Requested when a bound was hit.
type StatChangeRecord struct {
	Stat      string `json:"stat"`
	Requested int    `json:"requested"`
	Actual    int    `json:"actual"`
	OldValue  int    `json:"old_value"`
	NewValue  int    `json:"new_value"`
}

// ItemChangeRecord audits one inventory mutation.
type ItemChangeRecord struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Report is the structured audit of one effect application: exactly which
// stat, item and status changes occurred, including clamped and rejected
// cases. Warnings and errors are collected, never thrown away.
type Report struct {
	StatChanges     []StatChangeRecord `json:"stat_changes,omitempty"`
	ItemsGained     []ItemChangeRecord `json:"items_gained,omitempty"`
	ItemsLost       []ItemChangeRecord `json:"items_lost,omitempty"`
	StatusesApplied []string           `json:"statuses_applied,omitempty"`
	StatusesRemoved []string           `json:"statuses_removed,omitempty"`
	Warnings        []string           `json:"warnings,omitempty"`
	Errors          []string           `json:"errors,omitempty"`
}

// IsEmpty reports whether nothing changed and nothing was flagged.
func (r *Report) IsEmpty() bool {
	return len(r.StatChanges) == 0 &&
		len(r.ItemsGained) == 0 &&
		len(r.ItemsLost) == 0 &&
		len(r.StatusesApplied) == 0 &&
		len(r.StatusesRemoved) == 0 &&
		len(r.Warnings) == 0 &&
		len(r.Errors) == 0
}

// Merge appends another report's entries onto this one.
func (r *Report) Merge(other Report) {
	r.StatChanges = append(r.StatChanges, other.StatChanges...)
	r.ItemsGained = append(r.ItemsGained, other.ItemsGained...)
	r.ItemsLost = append(r.ItemsLost, other.ItemsLost...)
	r.StatusesApplied = append(r.StatusesApplied, other.StatusesApplied...)
	r.StatusesRemoved = append(r.StatusesRemoved, other.StatusesRemoved...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Errors = append(r.Errors, other.Errors...)
}

var titleCaser = cases.Title(language.English)

// DisplayName renders an id like "rusty_key" as "Rusty Key". The hp stat is
// special-cased to "HP".
func DisplayName(id string) string {
	if strings.EqualFold(id, "hp") {
		return "HP"
	}
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

// Describe renders the report as a human-readable sentence list for the
// presentation boundary.
func (r *Report) Describe() string {
	var parts []string
	for _, sc := range r.StatChanges {
		parts = append(parts, fmt.Sprintf("%s %+d (%d → %d)",
			DisplayName(sc.Stat), sc.Actual, sc.OldValue, sc.NewValue))
	}
	for _, ic := range r.ItemsGained {
		parts = append(parts, fmt.Sprintf("Gained %s ×%d", DisplayName(ic.ItemID), ic.Quantity))
	}
	for _, ic := range r.ItemsLost {
		parts = append(parts, fmt.Sprintf("Lost %s ×%d", DisplayName(ic.ItemID), ic.Quantity))
	}
	for _, id := range r.StatusesApplied {
		parts = append(parts, DisplayName(id)+" applied")
	}
	for _, id := range r.StatusesRemoved {
		parts = append(parts, DisplayName(id)+" removed")
	}
	if len(parts) == 0 {
		parts = append(parts, "Nothing happened")
	}
	return strings.Join(parts, ". ") + "."
}
