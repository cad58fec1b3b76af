package maze

// Door is the shared connector between two adjacent rooms.
// Once killed a door stays dead for the lifetime of the maze.
type Door struct {
	dead bool
}

// Dead reports whether the door has been permanently closed.
func (d *Door) Dead() bool {
	return d.dead
}

// Kill permanently closes the door. Killing a dead door is a no-op.
func (d *Door) Kill() {
	d.dead = true
}

// DoorState describes a room exit as seen from inside the room.
type DoorState int

const (
	// DoorAbsent means the room sits on the grid boundary in that direction.
	DoorAbsent DoorState = iota
	// DoorOpen means a live door leads to the neighbouring room.
	DoorOpen
	// DoorDead means a door existed but has been closed for good.
	DoorDead
)

// String returns a short label for the state.
func (s DoorState) String() string {
	switch s {
	case DoorAbsent:
		return "absent"
	case DoorOpen:
		return "open"
	case DoorDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Passable reports whether a player can walk through an exit in this state.
func (s DoorState) Passable() bool {
	return s == DoorOpen
}
