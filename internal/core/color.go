package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// TileColor maps a tile value to its display color, following the classic
// warm-to-hot palette as values grow.
func TileColor(value int) Color {
	switch {
	case value <= 0:
		return ColorDefault
	case value <= 4:
		return ColorWhite
	case value <= 16:
		return ColorYellow
	case value <= 64:
		return ColorOrange
	case value <= 256:
		return ColorBrightRed
	case value <= 1024:
		return ColorBrightMagenta
	default:
		return ColorBrightYellow
	}
}
