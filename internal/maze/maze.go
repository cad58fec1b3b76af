// Package maze implements the connectivity core of the trivia maze: a square
// grid of rooms joined by shared doors, player movement, and a reachability
// oracle that answers whether the goal can still be reached after any
// sequence of door closures.
//
// A Maze is not safe for concurrent use. Callers that share one across
// goroutines must serialize door mutation and reachability queries.
package maze

import (
	"errors"
	"fmt"
)

// DefaultSize is the width and height of a standard maze.
const DefaultSize = 8

var (
	// ErrInvalidCoordinate is returned for coordinates outside the grid.
	ErrInvalidCoordinate = errors.New("maze: invalid coordinate")
	// ErrInvalidSize is returned when a maze is requested with size < 1.
	ErrInvalidSize = errors.New("maze: invalid size")
	// ErrInvalidDirection is returned for a Direction outside North..West.
	ErrInvalidDirection = errors.New("maze: invalid direction")
	// ErrNoDoor is returned when a door is addressed through a boundary wall.
	ErrNoDoor = errors.New("maze: no door in that direction")
	// ErrUnknownEdge is returned when restoring a state that names an edge
	// which is not an interior edge of the grid.
	ErrUnknownEdge = errors.New("maze: unknown edge")
)

// Maze owns the grid of rooms, the door table and the player position.
// The door topology is fixed at construction; only door deadness and the
// player position change afterwards.
type Maze struct {
	size   int
	rooms  [][]Room // indexed [y][x]
	doors  []Door
	edges  map[Edge]int
	player Coord
}

// New builds a size×size maze with every interior edge backed by exactly
// one shared door. The player starts at (0,0).
func New(size int) (*Maze, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	m := &Maze{size: size}
	m.buildDoors()
	m.buildRooms()
	return m, nil
}

// buildDoors creates the door table: one Door per interior edge.
// Each room contributes its east and south edges, which covers every
// interior edge exactly once.
func (m *Maze) buildDoors() {
	interior := 2 * m.size * (m.size - 1)
	m.doors = make([]Door, 0, interior)
	m.edges = make(map[Edge]int, interior)

	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			c := Coord{X: x, Y: y}
			for _, d := range []Direction{East, South} {
				n := c.Step(d)
				if !m.inBounds(n) {
					continue
				}
				m.edges[EdgeBetween(c, n)] = len(m.doors)
				m.doors = append(m.doors, Door{})
			}
		}
	}
}

// buildRooms wraps the door table into rooms. Every slot is resolved by
// edge lookup, so both rooms on an edge see the same door.
func (m *Maze) buildRooms() {
	m.rooms = make([][]Room, m.size)
	for y := range m.rooms {
		m.rooms[y] = make([]Room, m.size)
		for x := range m.rooms[y] {
			c := Coord{X: x, Y: y}
			r := Room{pos: c, blocker: BlockerFor(c, m.size)}
			for _, d := range AllDirections() {
				r.doors[d] = noDoor
				if !r.blocker.Open(d) {
					continue
				}
				r.doors[d] = m.edges[EdgeBetween(c, c.Step(d))]
			}
			m.rooms[y][x] = r
		}
	}
}

// Size returns the grid width (and height).
func (m *Maze) Size() int {
	return m.size
}

// Start returns the starting coordinate, always (0,0).
func (m *Maze) Start() Coord {
	return Coord{}
}

// Goal returns the goal coordinate at the far corner.
func (m *Maze) Goal() Coord {
	return Coord{X: m.size - 1, Y: m.size - 1}
}

// Player returns the player's current coordinate.
func (m *Maze) Player() Coord {
	return m.player
}

// AtGoal reports whether the player stands on the goal room.
func (m *Maze) AtGoal() bool {
	return m.player == m.Goal()
}

// DoorCount returns the number of doors in the maze.
func (m *Maze) DoorCount() int {
	return len(m.doors)
}

func (m *Maze) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.size && c.Y >= 0 && c.Y < m.size
}

func (m *Maze) checkCoord(c Coord) error {
	if !m.inBounds(c) {
		return fmt.Errorf("%w: %s in %dx%d grid", ErrInvalidCoordinate, c, m.size, m.size)
	}
	return nil
}

// Room returns the room at c.
func (m *Maze) Room(c Coord) (Room, error) {
	if err := m.checkCoord(c); err != nil {
		return Room{}, err
	}
	return m.rooms[c.Y][c.X], nil
}

// CurrentRoom returns the room the player is in.
func (m *Maze) CurrentRoom() Room {
	return m.rooms[m.player.Y][m.player.X]
}

// door returns the door leaving room r in direction d, or nil for a wall.
func (m *Maze) door(r Room, d Direction) *Door {
	idx, ok := r.doorIndex(d)
	if !ok {
		return nil
	}
	return &m.doors[idx]
}

// passable reports whether the exit of r in direction d can be walked through.
func (m *Maze) passable(r Room, d Direction) bool {
	door := m.door(r, d)
	return door != nil && !door.Dead()
}

// DoorState reports the state of the exit from room c in direction d.
func (m *Maze) DoorState(c Coord, d Direction) (DoorState, error) {
	if !d.IsValid() {
		return DoorAbsent, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	r, err := m.Room(c)
	if err != nil {
		return DoorAbsent, err
	}
	door := m.door(r, d)
	switch {
	case door == nil:
		return DoorAbsent, nil
	case door.Dead():
		return DoorDead, nil
	default:
		return DoorOpen, nil
	}
}

// KillDoor permanently closes the door crossed when leaving room c in
// direction d. The neighbouring room observes the same dead door.
// Killing an already dead door is not an error.
func (m *Maze) KillDoor(c Coord, d Direction) error {
	if !d.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	r, err := m.Room(c)
	if err != nil {
		return err
	}
	door := m.door(r, d)
	if door == nil {
		return fmt.Errorf("%w: %s %s", ErrNoDoor, c, d)
	}
	door.Kill()
	return nil
}

// CanMove reports whether the player can leave the current room in direction d.
func (m *Maze) CanMove(d Direction) bool {
	return m.passable(m.CurrentRoom(), d)
}

// Move walks the player one room in direction d. It returns false and leaves
// the maze untouched when the move is not legal.
func (m *Maze) Move(d Direction) bool {
	if !m.CanMove(d) {
		return false
	}
	m.player = m.player.Step(d)
	return true
}
