package maze

// RoomBlocker records which directions of a room have a structural opening.
// It is derived from grid coordinates alone and never changes.
type RoomBlocker struct {
	North bool
	South bool
	East  bool
	West  bool
}

// BlockerFor computes the blocker for the room at c in a size×size grid.
// A direction is open unless the room sits on that edge of the grid.
func BlockerFor(c Coord, size int) RoomBlocker {
	return RoomBlocker{
		North: c.Y > 0,
		South: c.Y < size-1,
		East:  c.X < size-1,
		West:  c.X > 0,
	}
}

// Open reports whether direction d has a structural opening.
func (b RoomBlocker) Open(d Direction) bool {
	switch d {
	case North:
		return b.North
	case South:
		return b.South
	case East:
		return b.East
	case West:
		return b.West
	default:
		return false
	}
}

// noDoor marks a door slot that faces a permanent boundary wall.
const noDoor = -1

// Room is a single cell of the maze. Each direction slot holds an index
// into the maze's door table, or noDoor for a boundary wall.
type Room struct {
	pos     Coord
	blocker RoomBlocker
	doors   [4]int
}

// Pos returns the room's coordinate.
func (r Room) Pos() Coord {
	return r.pos
}

// Blocker returns the room's structural openings.
func (r Room) Blocker() RoomBlocker {
	return r.blocker
}

// HasDoor reports whether a door exists in direction d.
func (r Room) HasDoor(d Direction) bool {
	return d.IsValid() && r.doors[d] != noDoor
}

// doorIndex returns the door table index for direction d.
func (r Room) doorIndex(d Direction) (int, bool) {
	if !r.HasDoor(d) {
		return 0, false
	}
	return r.doors[d], true
}
