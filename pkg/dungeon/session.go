package dungeon

import (
	"github.com/jwebster45206/maze-engine/pkg/catalog"
	"github.com/jwebster45206/maze-engine/pkg/random"
)

// Placement counts for a new game.
const (
	// TrapRoomCount is the number of rooms that receive a trap.
	TrapRoomCount = 10
	// ItemEventCount is the number of item encounters spread across open rooms.
	ItemEventCount = 15
	// MinRoomEncounters and MaxRoomEncounters bound the character/monster
	// fill applied to each remaining open room.
	MinRoomEncounters = 1
	MaxRoomEncounters = 20
)

// Stage tracks which assignment steps have run on a session.
type Stage string

const (
	StageNew      Stage = ""
	StageTraps    Stage = "traps"
	StageItems    Stage = "items"
	StageComplete Stage = "complete"
)

// RoomAssignment is the allocation state of one room: which encounters it
// holds, which have been consumed, and whether a trap has made it exclusive.
type RoomAssignment struct {
	Room         RoomID          `json:"room"`
	EncounterIDs []string        `json:"encounter_ids,omitempty"`
	Exclusive    bool            `json:"exclusive,omitempty"`
	Consumed     map[string]bool `json:"consumed,omitempty"`
	Visits       int             `json:"visits,omitempty"`
}

// Session is the allocation table for one game: built fresh at game start,
// populated by the three assignment steps in order, then owned by the
// orchestrator. It is never shared between games.
type Session struct {
	Grid  *Grid                      `json:"grid"`
	Rooms map[RoomID]*RoomAssignment `json:"rooms"`
	Stage Stage                      `json:"stage,omitempty"`
}

// NewSession creates an empty allocation session for a grid.
func NewSession(grid *Grid) *Session {
	return &Session{
		Grid:  grid,
		Rooms: make(map[RoomID]*RoomAssignment),
	}
}

func (s *Session) room(id RoomID) *RoomAssignment {
	ra, ok := s.Rooms[id]
	if !ok {
		ra = &RoomAssignment{Room: id}
		s.Rooms[id] = ra
	}
	return ra
}

// AssignTraps places exactly TrapRoomCount traps, drawn from the pool by
// weighted sampling without replacement, into distinct rooms excluding the
// start and exit. Each trap room becomes exclusive: no later step writes to
// it. Must be the first assignment step of the session.
func (s *Session) AssignTraps(pool []catalog.EncounterDefinition, src random.Source) error {
	if s.Stage != StageNew {
		return ErrStageOrder
	}
	if len(pool) < TrapRoomCount {
		return &CapacityError{Op: "assign traps", Need: TrapRoomCount, Have: len(pool)}
	}
	traps, err := SelectByWeight(pool, TrapRoomCount, src)
	if err != nil {
		return err
	}

	candidates := s.Grid.assignableRooms()
	for _, trap := range traps {
		idx := src.Intn(len(candidates))
		roomID := candidates[idx]
		candidates = append(candidates[:idx], candidates[idx+1:]...)

		ra := s.room(roomID)
		ra.EncounterIDs = []string{trap.ID}
		ra.Exclusive = true
	}
	s.Stage = StageTraps
	return nil
}

// AssignItems distributes exactly ItemEventCount item encounters, drawn by
// weighted sampling without replacement, across the open (non-exclusive,
// non-start/exit) rooms. Multiple encounters may land in the same room.
// Must run after AssignTraps.
func (s *Session) AssignItems(pool []catalog.EncounterDefinition, src random.Source) error {
	if s.Stage != StageTraps {
		return ErrStageOrder
	}
	if len(pool) < ItemEventCount {
		return &CapacityError{Op: "assign items", Need: ItemEventCount, Have: len(pool)}
	}
	items, err := SelectByWeight(pool, ItemEventCount, src)
	if err != nil {
		return err
	}

	open := s.openRooms()
	if len(open) == 0 {
		return &CapacityError{Op: "assign items", Need: 1, Have: 0}
	}
	for _, item := range items {
		roomID := open[src.Intn(len(open))]
		ra := s.room(roomID)
		ra.EncounterIDs = append(ra.EncounterIDs, item.ID)
	}
	s.Stage = StageItems
	return nil
}

// AssignCharacterMonster fills every remaining open room with between
// MinRoomEncounters and MaxRoomEncounters encounters from the union of the
// two pools: drawn with replacement across rooms, without replacement within
// a single room's draw. Must run last.
func (s *Session) AssignCharacterMonster(characters, monsters []catalog.EncounterDefinition, src random.Source) error {
	if s.Stage != StageItems {
		return ErrStageOrder
	}
	union := make([]catalog.EncounterDefinition, 0, len(characters)+len(monsters))
	union = append(union, characters...)
	union = append(union, monsters...)
	if len(union) == 0 {
		return &CapacityError{Op: "assign character/monster", Need: 1, Have: 0}
	}

	for _, roomID := range s.openRooms() {
		n := random.IntBetween(src, MinRoomEncounters, MaxRoomEncounters)
		if n > len(union) {
			n = len(union)
		}
		picks, err := SelectByWeight(union, n, src)
		if err != nil {
			return err
		}
		ra := s.room(roomID)
		for _, p := range picks {
			ra.EncounterIDs = append(ra.EncounterIDs, p.ID)
		}
	}
	s.Stage = StageComplete
	return nil
}

// openRooms returns the assignable rooms that are not trap-exclusive, in
// grid order.
func (s *Session) openRooms() []RoomID {
	var out []RoomID
	for _, id := range s.Grid.assignableRooms() {
		if ra, ok := s.Rooms[id]; ok && ra.Exclusive {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Available returns the non-consumed encounter ids assigned to a room.
func (s *Session) Available(id RoomID) []string {
	ra, ok := s.Rooms[id]
	if !ok {
		return nil
	}
	var out []string
	for _, encID := range ra.EncounterIDs {
		if !ra.Consumed[encID] {
			out = append(out, encID)
		}
	}
	return out
}

// MarkConsumed records that a one-time encounter has been used in a room.
func (s *Session) MarkConsumed(id RoomID, encounterID string) {
	ra := s.room(id)
	if ra.Consumed == nil {
		ra.Consumed = make(map[string]bool)
	}
	ra.Consumed[encounterID] = true
}

// Visit increments and returns a room's visit count.
func (s *Session) Visit(id RoomID) int {
	ra := s.room(id)
	ra.Visits++
	return ra.Visits
}
