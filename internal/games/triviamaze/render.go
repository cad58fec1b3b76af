package triviamaze

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/trivia-maze/internal/core"
	"github.com/vovakirdan/trivia-maze/internal/maze"
)

// Map cell geometry: each room is "[x]" followed by one column for its east
// door; each room row is followed by one row for south doors.
const (
	roomW    = 4
	roomH    = 2
	mapLeft  = 2
	mapTop   = 3
	panelGap = 3
)

// minScreen returns the smallest terminal that fits the map and side panel.
func (g *Game) minScreen() (int, int) {
	size := g.maze.Size()
	w := mapLeft + size*roomW + panelGap + 36
	h := mapTop + size*roomH + 3
	return w, max(h, 16)
}

// Render draws the maze, HUD and question panel.
func (g *Game) Render(dst *core.Screen) {
	minW, minH := g.minScreen()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", minW, minH), core.ColorBrightRed)
		return
	}

	g.renderHUD(dst)
	g.renderMap(dst)

	panelX := mapLeft + g.maze.Size()*roomW + panelGap
	panelW := dst.Width() - panelX - 1
	switch g.phase {
	case PhaseQuestion:
		g.renderQuestion(dst, panelX, mapTop, panelW)
	default:
		g.renderRoom(dst, panelX, mapTop)
	}

	g.renderFooter(dst)

	switch g.phase {
	case PhaseWon:
		g.renderBanner(dst, "YOU ESCAPED THE MAZE", core.ColorBrightGreen)
	case PhaseLost:
		g.renderBanner(dst, "TRAPPED: THE EXIT IS UNREACHABLE", core.ColorBrightRed)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(mapLeft, 0, g.Title(), core.ColorBrightCyan)
	hud := fmt.Sprintf("Score: %d   Correct: %d   Wrong: %d   Room: %s   Deck: %d/%d",
		g.score, g.correct, g.wrong, g.maze.Player(), g.bank.Remaining(), g.bank.Len())
	dst.DrawTextColored(mapLeft, 1, hud, core.ColorWhite)
}

func (g *Game) renderMap(dst *core.Screen) {
	snap := g.maze.Snapshot()

	reachable := make(map[maze.Coord]bool)
	if rooms, err := g.maze.ReachableRooms(snap.Player); err == nil {
		for _, c := range rooms {
			reachable[c] = true
		}
	}

	for y := 0; y < snap.Size; y++ {
		for x := 0; x < snap.Size; x++ {
			c := maze.Coord{X: x, Y: y}
			room := snap.Rooms[y][x]
			sx := mapLeft + x*roomW
			sy := mapTop + y*roomH

			glyph, color := g.roomGlyph(snap, c, reachable[c])
			dst.SetColored(sx, sy, '[', color)
			dst.SetColored(sx+1, sy, glyph, color)
			dst.SetColored(sx+2, sy, ']', color)

			drawDoor(dst, sx+3, sy, room.Door(maze.East), '─')
			drawDoor(dst, sx+1, sy+1, room.Door(maze.South), '│')
		}
	}
}

func (g *Game) roomGlyph(snap maze.Snapshot, c maze.Coord, reachable bool) (rune, core.Color) {
	switch {
	case c == snap.Player:
		return '@', core.ColorPlayer
	case c == snap.Goal:
		if !reachable {
			return 'E', core.ColorLostExit
		}
		return 'E', core.ColorExit
	case c == snap.Start:
		return 'S', core.ColorStart
	case !reachable:
		return ' ', core.ColorGray
	default:
		return ' ', core.ColorWhite
	}
}

func drawDoor(dst *core.Screen, x, y int, st maze.DoorState, open rune) {
	switch st {
	case maze.DoorOpen:
		dst.SetColored(x, y, open, core.ColorDoor)
	case maze.DoorDead:
		dst.SetColored(x, y, '×', core.ColorSealedDoor)
	}
}

func (g *Game) renderRoom(dst *core.Screen, x, y int) {
	room, _ := g.maze.Snapshot().Room(g.maze.Player())
	dst.DrawTextColored(x, y, "Exits from this room:", core.ColorBrightWhite)

	for i, d := range maze.AllDirections() {
		st := room.Door(d)
		color := core.ColorGreen
		switch {
		case st.Passable():
		case st == maze.DoorDead:
			color = core.ColorRed
		default:
			color = core.ColorGray
		}
		dst.DrawTextColored(x+2, y+2+i, maze.ExitLabel(d, st), color)
	}

	dst.DrawTextColored(x, y+7, "Legend:", core.ColorBrightWhite)
	dst.DrawTextColored(x+2, y+8, "@ you   S start   E exit", core.ColorWhite)
	dst.DrawTextColored(x+2, y+9, "─ │ door   × sealed door", core.ColorWhite)
}

func (g *Game) renderQuestion(dst *core.Screen, x, y, w int) {
	q := g.pending.question
	header := fmt.Sprintf("The %s door asks", g.pending.dir)
	if q.Category != "" {
		header += " (" + q.Category + ")"
	}
	dst.DrawTextColored(x, y, header+":", core.ColorQuestion)

	row := y + 2
	for _, line := range wrap(q.Prompt, w) {
		dst.DrawTextColored(x, row, line, core.ColorBrightWhite)
		row++
	}
	row++
	for i, choice := range q.Choices {
		dst.DrawTextColored(x+2, row, fmt.Sprintf("%d) %s", i+1, choice), core.ColorChoice)
		row++
	}
	row++
	dst.DrawTextColored(x, row, "Press 1-"+fmt.Sprint(len(q.Choices))+" to answer, Esc to step back", core.ColorHint)
}

func (g *Game) renderFooter(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextColored(mapLeft, h-2, g.message, core.ColorBrightYellow)
	dst.DrawTextColored(mapLeft, h-1, "Arrows/WASD move   Ctrl+S save   R restart   Q quit", core.ColorHint)
}

func (g *Game) renderBanner(dst *core.Screen, title string, color core.Color) {
	text := fmt.Sprintf("  %s  Final score: %d  (R to play again) ", title, g.score)
	w := len([]rune(text)) + 2
	x := (dst.Width() - w) / 2
	y := dst.Height()/2 - 1
	for i := 0; i < 3; i++ {
		dst.DrawText(x, y+i, strings.Repeat(" ", w))
	}
	dst.DrawBox(x, y-1, w, 5, color)
	dst.DrawTextColored(x+1, y+1, text, color)
}

// wrap splits text into lines of at most width runes, breaking on spaces.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
