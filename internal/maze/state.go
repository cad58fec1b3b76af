package maze

import (
	"fmt"
	"sort"
)

// State is the persistent form of a maze: everything that can change after
// construction. The topology itself is implied by Size.
type State struct {
	Size   int
	Player Coord
	Dead   []Edge
}

// DeadDoors returns the edges of every dead door, in row-major order.
func (m *Maze) DeadDoors() []Edge {
	var dead []Edge
	for e, idx := range m.edges {
		if m.doors[idx].Dead() {
			dead = append(dead, e)
		}
	}
	sort.Slice(dead, func(i, j int) bool {
		if dead[i].A != dead[j].A {
			return dead[i].A.less(dead[j].A)
		}
		return dead[i].B.less(dead[j].B)
	})
	return dead
}

// State exports the mutable part of the maze.
func (m *Maze) State() State {
	return State{
		Size:   m.size,
		Player: m.player,
		Dead:   m.DeadDoors(),
	}
}

// Restore rebuilds a maze from a saved State.
func Restore(s State) (*Maze, error) {
	m, err := New(s.Size)
	if err != nil {
		return nil, err
	}
	if err := m.checkCoord(s.Player); err != nil {
		return nil, fmt.Errorf("maze: restore player: %w", err)
	}

	for _, e := range s.Dead {
		// Normalize in case the caller stored the pair the other way round.
		e = EdgeBetween(e.A, e.B)
		idx, ok := m.edges[e]
		if !ok || !e.adjacent() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEdge, e)
		}
		m.doors[idx].Kill()
	}

	m.player = s.Player
	return m, nil
}
