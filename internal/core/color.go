package core

// Color is a cell foreground, mapped to a terminal style by the platform.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// Roles used by the maze renderer.
const (
	ColorPlayer     = ColorBrightYellow
	ColorStart      = ColorCyan
	ColorExit       = ColorBrightGreen
	ColorLostExit   = ColorRed // exit no longer reachable
	ColorDoor       = ColorGray
	ColorSealedDoor = ColorBrightRed
	ColorQuestion   = ColorBrightMagenta
	ColorChoice     = ColorYellow
	ColorHint       = ColorGray
)
