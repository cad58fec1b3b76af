package maze

import "strings"

// RoomSnapshot is the renderable view of one room.
type RoomSnapshot struct {
	Pos   Coord
	Doors [4]DoorState // indexed by Direction
}

// Door returns the state of the exit in direction d.
func (r RoomSnapshot) Door(d Direction) DoorState {
	if !d.IsValid() {
		return DoorAbsent
	}
	return r.Doors[d]
}

// Snapshot is a read-only copy of the grid for renderers.
type Snapshot struct {
	Size   int
	Player Coord
	Start  Coord
	Goal   Coord
	Rooms  [][]RoomSnapshot // indexed [y][x]
}

// Snapshot captures positions and the door state of every room.
func (m *Maze) Snapshot() Snapshot {
	s := Snapshot{
		Size:   m.size,
		Player: m.player,
		Start:  m.Start(),
		Goal:   m.Goal(),
		Rooms:  make([][]RoomSnapshot, m.size),
	}
	for y := range s.Rooms {
		s.Rooms[y] = make([]RoomSnapshot, m.size)
		for x := range s.Rooms[y] {
			s.Rooms[y][x] = m.roomSnapshot(m.rooms[y][x])
		}
	}
	return s
}

func (m *Maze) roomSnapshot(r Room) RoomSnapshot {
	rs := RoomSnapshot{Pos: r.pos}
	for _, d := range AllDirections() {
		door := m.door(r, d)
		switch {
		case door == nil:
			rs.Doors[d] = DoorAbsent
		case door.Dead():
			rs.Doors[d] = DoorDead
		default:
			rs.Doors[d] = DoorOpen
		}
	}
	return rs
}

// Room returns the snapshot of the room at c, or false if c is off the grid.
func (s Snapshot) Room(c Coord) (RoomSnapshot, bool) {
	if c.X < 0 || c.Y < 0 || c.Y >= len(s.Rooms) || c.X >= len(s.Rooms[c.Y]) {
		return RoomSnapshot{}, false
	}
	return s.Rooms[c.Y][c.X], true
}

// String renders the grid overview, one row per line, marking the player,
// the goal and the start room.
func (s Snapshot) String() string {
	var sb strings.Builder
	for y := 0; y < s.Size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Size; x++ {
			c := Coord{X: x, Y: y}
			switch c {
			case s.Player:
				sb.WriteString("[PLYR]")
			case s.Goal:
				sb.WriteString("[FNSH]")
			case s.Start:
				sb.WriteString("[STRT]")
			default:
				sb.WriteString("[ROOM]")
			}
		}
	}
	return sb.String()
}

// ExitLabel describes one exit of a room for text output.
func ExitLabel(d Direction, st DoorState) string {
	switch st {
	case DoorAbsent:
		return "BLOCKED"
	case DoorDead:
		return "DEAD DOOR"
	default:
		return "MOVE " + strings.ToUpper(d.String())
	}
}

// RoomView renders the exits of a room as a small compass:
// north on top, west and east beside the player, south below.
func RoomView(r RoomSnapshot) string {
	var sb strings.Builder
	sb.WriteString("\t\t\t" + ExitLabel(North, r.Door(North)) + "\n\n")
	sb.WriteString(ExitLabel(West, r.Door(West)))
	sb.WriteString("\t\tPlayer\t\t")
	sb.WriteString(ExitLabel(East, r.Door(East)) + "\n\n")
	sb.WriteString("\t\t\t" + ExitLabel(South, r.Door(South)))
	return sb.String()
}
