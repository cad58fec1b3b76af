package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	m := newMaze(t, DefaultSize)
	require.NoError(t, m.KillDoor(Coord{3, 3}, East))
	require.NoError(t, m.KillDoor(Coord{5, 2}, North))
	require.NoError(t, m.KillDoor(Coord{0, 0}, South))
	require.True(t, m.Move(East))
	require.True(t, m.Move(South))

	restored, err := Restore(m.State())
	require.NoError(t, err)

	assert.Equal(t, m.State(), restored.State())
	assert.Equal(t, m.IsGoalReachable(), restored.IsGoalReachable())

	st, err := restored.DoorState(Coord{4, 3}, West)
	require.NoError(t, err)
	assert.Equal(t, DoorDead, st)
}

func TestDeadDoorsCanonicalOrder(t *testing.T) {
	m := newMaze(t, 3)
	require.NoError(t, m.KillDoor(Coord{2, 2}, North))
	require.NoError(t, m.KillDoor(Coord{1, 0}, West))

	assert.Equal(t, []Edge{
		{A: Coord{0, 0}, B: Coord{1, 0}},
		{A: Coord{2, 1}, B: Coord{2, 2}},
	}, m.DeadDoors())
}

func TestRestoreAcceptsReversedEdge(t *testing.T) {
	m, err := Restore(State{
		Size: 2,
		Dead: []Edge{{A: Coord{1, 0}, B: Coord{0, 0}}},
	})
	require.NoError(t, err)
	assert.False(t, m.CanMove(East))
	assert.True(t, m.CanMove(South))
}

func TestRestoreValidation(t *testing.T) {
	tests := []struct {
		name  string
		state State
		err   error
	}{
		{"zero size", State{Size: 0}, ErrInvalidSize},
		{"player outside", State{Size: 2, Player: Coord{2, 2}}, ErrInvalidCoordinate},
		{"diagonal edge", State{Size: 3, Dead: []Edge{{A: Coord{0, 0}, B: Coord{1, 1}}}}, ErrUnknownEdge},
		{"edge off grid", State{Size: 2, Dead: []Edge{{A: Coord{1, 1}, B: Coord{2, 1}}}}, ErrUnknownEdge},
		{"same room", State{Size: 2, Dead: []Edge{{A: Coord{1, 1}, B: Coord{1, 1}}}}, ErrUnknownEdge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Restore(tc.state)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestEdgeBetweenIsSymmetric(t *testing.T) {
	a, b := Coord{2, 1}, Coord{2, 0}
	assert.Equal(t, EdgeBetween(a, b), EdgeBetween(b, a))
	assert.Equal(t, Coord{2, 0}, EdgeBetween(a, b).A)
	assert.Equal(t, "(2,0)-(2,1)", EdgeBetween(a, b).String())
}

func TestSnapshotString(t *testing.T) {
	m := newMaze(t, 3)

	expected := strings.Join([]string{
		"[PLYR][ROOM][ROOM]",
		"[ROOM][ROOM][ROOM]",
		"[ROOM][ROOM][FNSH]",
	}, "\n")
	assert.Equal(t, expected, m.Snapshot().String())

	require.True(t, m.Move(East))
	assert.True(t, strings.HasPrefix(m.Snapshot().String(), "[STRT][PLYR][ROOM]"))
}

func TestSnapshotDoorStates(t *testing.T) {
	m := newMaze(t, 2)
	require.NoError(t, m.KillDoor(Coord{0, 1}, East))

	snap := m.Snapshot()
	goal, ok := snap.Room(Coord{1, 1})
	require.True(t, ok)
	assert.Equal(t, DoorDead, goal.Door(West))
	assert.Equal(t, DoorOpen, goal.Door(North))
	assert.Equal(t, DoorAbsent, goal.Door(East))
	assert.Equal(t, DoorAbsent, goal.Door(South))

	_, ok = snap.Room(Coord{2, 0})
	assert.False(t, ok)
}

func TestRoomView(t *testing.T) {
	m := newMaze(t, 2)
	require.NoError(t, m.KillDoor(Coord{0, 0}, South))

	view := RoomView(m.Snapshot().Rooms[0][0])
	assert.Contains(t, view, "BLOCKED")
	assert.Contains(t, view, "DEAD DOOR")
	assert.Contains(t, view, "MOVE EAST")
	assert.NotContains(t, view, "MOVE SOUTH")
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"north", North},
		{"N", North},
		{" South ", South},
		{"e", East},
		{"WEST", West},
	}
	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseDirection("up")
	assert.Error(t, err)
}

func TestDirectionOppositeAndDelta(t *testing.T) {
	for _, d := range AllDirections() {
		assert.Equal(t, d, d.Opposite().Opposite())
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
		assert.Equal(t, 1, dx*dx+dy*dy)
	}
}
