package maze

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// IsGoalReachable reports whether a path of live doors connects the player's
// room to the goal room. It is total: any door configuration yields an answer.
func (m *Maze) IsGoalReachable() bool {
	return m.search(m.player, m.Goal(), nil)
}

// Reachable reports whether a path of live doors connects from to to.
func (m *Maze) Reachable(from, to Coord) (bool, error) {
	if err := m.checkCoord(from); err != nil {
		return false, err
	}
	if err := m.checkCoord(to); err != nil {
		return false, err
	}
	return m.search(from, to, nil), nil
}

// ReachableRooms returns every room reachable from c, in row-major order.
func (m *Maze) ReachableRooms(c Coord) ([]Coord, error) {
	if err := m.checkCoord(c); err != nil {
		return nil, err
	}

	visited := mapset.New[Coord]()
	// An out-of-grid target is never found, so the scan covers the whole component.
	m.search(c, Coord{X: -1, Y: -1}, &visited)

	rooms := make([]Coord, 0, visited.Size())
	visited.Each(func(c Coord) {
		rooms = append(rooms, c)
	})
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].less(rooms[j])
	})
	return rooms, nil
}

// search runs an iterative depth-first scan from start and stops as soon as
// target is popped. The goal test happens before a room is marked visited,
// so start == target succeeds without crossing any door. When visited is
// nil a fresh set is used, which makes each call independent of the last.
func (m *Maze) search(start, target Coord, visited *mapset.Set[Coord]) bool {
	if visited == nil {
		fresh := mapset.New[Coord]()
		visited = &fresh
	}

	pending := stack.New[Coord]()
	pending.Push(start)

	for pending.Size() > 0 {
		c := pending.Pop()
		if visited.Has(c) {
			continue
		}
		if c == target {
			return true
		}
		visited.Put(c)

		room := m.rooms[c.Y][c.X]
		for _, d := range AllDirections() {
			if !m.passable(room, d) {
				continue
			}
			if next := c.Step(d); !visited.Has(next) {
				pending.Push(next)
			}
		}
	}
	return false
}
