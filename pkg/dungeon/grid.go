// Package dungeon models the maze grid and the per-game allocation of
// encounters to rooms: weighted sampling without replacement, trap
// exclusivity, and the fixed traps → items → character/monster ordering.
package dungeon

// Direction is one of the four cardinal exits of a room.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists the cardinal directions in a stable order.
var Directions = []Direction{North, East, South, West}

// RoomID indexes a room within the grid, row-major from the northwest
// corner.
type RoomID int

// DefaultGridSize is the side length of the standard maze.
const DefaultGridSize = 8

// Room is one cell of the maze with its passable exits.
type Room struct {
	ID    RoomID             `json:"id"`
	Exits map[Direction]bool `json:"exits,omitempty"`
}

// Grid is the maze topology: a rectangle of rooms with designated start and
// exit rooms. The core only consults Start and Exit for placement exclusion;
// exits serve the movement layer.
type Grid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Start  RoomID `json:"start"`
	Exit   RoomID `json:"exit"`
	Rooms  []Room `json:"rooms"`
}

// NewGrid builds a fully connected width×height grid with the start room in
// the northwest corner and the exit in the southeast corner. Edge rooms have
// their outward exits closed.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Start:  0,
		Exit:   RoomID(width*height - 1),
		Rooms:  make([]Room, width*height),
	}
	for i := range g.Rooms {
		id := RoomID(i)
		x, y := i%width, i/width
		g.Rooms[i] = Room{
			ID: id,
			Exits: map[Direction]bool{
				North: y > 0,
				South: y < height-1,
				West:  x > 0,
				East:  x < width-1,
			},
		}
	}
	return g
}

// NewDefaultGrid builds the standard 8×8 maze.
func NewDefaultGrid() *Grid {
	return NewGrid(DefaultGridSize, DefaultGridSize)
}

// RoomCount returns the number of rooms in the grid.
func (g *Grid) RoomCount() int {
	return g.Width * g.Height
}

// Contains reports whether the id addresses a room in this grid.
func (g *Grid) Contains(id RoomID) bool {
	return id >= 0 && int(id) < g.RoomCount()
}

// Neighbor returns the room reached by moving in a direction, and whether
// that move is passable.
func (g *Grid) Neighbor(id RoomID, dir Direction) (RoomID, bool) {
	if !g.Contains(id) {
		return 0, false
	}
	if !g.Rooms[id].Exits[dir] {
		return 0, false
	}
	switch dir {
	case North:
		return id - RoomID(g.Width), true
	case South:
		return id + RoomID(g.Width), true
	case West:
		return id - 1, true
	case East:
		return id + 1, true
	}
	return 0, false
}

// assignableRooms returns every room id except the start and exit rooms.
func (g *Grid) assignableRooms() []RoomID {
	out := make([]RoomID, 0, g.RoomCount()-2)
	for i := 0; i < g.RoomCount(); i++ {
		id := RoomID(i)
		if id == g.Start || id == g.Exit {
			continue
		}
		out = append(out, id)
	}
	return out
}
