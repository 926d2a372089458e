package core

// Color is the foreground of a screen cell. The tui renderer maps each
// value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Roles of the road scene.
const (
	ColorTile      = ColorGreen
	ColorSoil      = ColorGray
	ColorPlayer    = ColorBrightCyan
	ColorFinish    = ColorBrightYellow
	ColorStartMenu = ColorCyan
	ColorEndMenu   = ColorRed
	ColorSteps     = ColorYellow
	ColorTimer     = ColorWhite
)
