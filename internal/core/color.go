package core

// Color represents a foreground color for a screen cell.
// The terminal renderer maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the arena renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)
