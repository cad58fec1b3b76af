package maze

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions a player can move in.
type Direction int

// Direction constants.
const (
	North Direction = iota
	South
	East
	West
)

// AllDirections returns every direction in the fixed scan order used by the maze.
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// IsValid reports whether d is one of the four compass directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets of a single step in this direction.
// North decreases y, east increases x.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseDirection parses a direction name or its first letter (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	}
	return 0, fmt.Errorf("maze: unknown direction %q", s)
}
