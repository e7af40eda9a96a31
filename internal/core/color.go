package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRose
	ColorAmber
	ColorEmerald
	ColorViolet
	ColorCyan
	ColorPink
	ColorSky
	ColorIce
	ColorSlate
	ColorWhite
	ColorRed
	ColorGreen
)

// ParseColor maps a palette name from configuration to a Color.
// Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "rose":
		return ColorRose
	case "amber":
		return ColorAmber
	case "emerald":
		return ColorEmerald
	case "violet":
		return ColorViolet
	case "cyan":
		return ColorCyan
	case "pink":
		return ColorPink
	case "sky":
		return ColorSky
	case "ice":
		return ColorIce
	case "slate":
		return ColorSlate
	case "white":
		return ColorWhite
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	default:
		return ColorDefault
	}
}
