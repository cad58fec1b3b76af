package maze

import "fmt"

// Coord addresses a room in the grid. X grows east, Y grows south.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring coordinate in the given direction.
// The result may lie outside the grid.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// less orders coordinates row-major: by Y, then X.
func (c Coord) less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Edge identifies the connection between two adjacent rooms.
// A and B are stored in canonical order so that the same pair of rooms
// always produces the same Edge regardless of which side it was named from.
type Edge struct {
	A, B Coord
}

// EdgeBetween returns the canonical edge joining a and b.
// It does not check that the two coordinates are adjacent.
func EdgeBetween(a, b Coord) Edge {
	if b.less(a) {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// String formats the edge as "(x,y)-(x,y)".
func (e Edge) String() string {
	return e.A.String() + "-" + e.B.String()
}

// adjacent reports whether the two endpoints are exactly one step apart.
func (e Edge) adjacent() bool {
	dx := e.B.X - e.A.X
	dy := e.B.Y - e.A.Y
	return (dx == 0 && dy == 1) || (dx == 1 && dy == 0)
}
