package turn

import (
	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/dungeon"
	"github.com/jwebster45206/maze-engine/pkg/stats"
)

// RestEncounterID identifies the synthesized fallback encounter offered in
// rooms with no available encounters.
const RestEncounterID = "rest"

// Rest recovery tuning. Recovery is larger when the corresponding stat is
// critically low, and the hunger cost shrinks when hunger is already
// critical. All values derive deterministically from the room id and the
// current stats; the same state always yields the same numbers.
const (
	criticalStatThreshold = 25
	restRecoveryBase      = 5
	restRecoveryCritical  = 15
	restHungerCost        = 10
	restHungerCostLow     = 3
)

var restDescriptions = []string{
	"The room is quiet. Dust hangs in the torchlight.",
	"Nothing stirs here. A good place to catch your breath.",
	"The air is still and cold, but nothing threatens you.",
	"Empty stone walls. For a moment, the maze feels almost peaceful.",
}

func restRecovery(current int) int {
	if current < criticalStatThreshold {
		return restRecoveryCritical
	}
	return restRecoveryBase
}

// restEncounter synthesizes the fallback encounter for an empty room.
func restEncounter(room dungeon.RoomID, ps stats.PlayerStats) catalog.EncounterDefinition {
	hungerCost := restHungerCost
	if ps.Hunger < criticalStatThreshold {
		hungerCost = restHungerCostLow
	}
	return catalog.EncounterDefinition{
		ID:          RestEncounterID,
		Name:        "A Moment of Rest",
		Description: restDescriptions[int(room)%len(restDescriptions)],
		Category:    catalog.CategoryEmpty,
		Persistence: catalog.PersistencePersistent,
		Choices: []catalog.Choice{
			{
				Text: "Rest a while",
				Success: &catalog.EffectSpec{
					StatChanges: map[string]int{
						string(stats.StatHP):     restRecovery(ps.HP),
						string(stats.StatSanity): restRecovery(ps.Sanity),
						string(stats.StatHunger): -hungerCost,
					},
				},
			},
		},
	}
}
