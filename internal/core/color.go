package core

import "strings"

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color code.
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
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorGray:    "gray",
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor converts a color name to a Color.
// Returns ColorDefault and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "grey" {
		name = "gray"
	}
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}
