package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorPink
	ColorPurple
)

// colorNames lists the names accepted by ParseColor.
var colorNames = map[string]Color{
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"brightred":     ColorBrightRed,
	"lightgreen":    ColorBrightGreen,
	"brightgreen":   ColorBrightGreen,
	"brightyellow":  ColorBrightYellow,
	"brightblue":    ColorBrightBlue,
	"brightmagenta": ColorBrightMagenta,
	"brightcyan":    ColorBrightCyan,
	"brightwhite":   ColorBrightWhite,
	"orange":        ColorOrange,
	"gray":          ColorGray,
	"grey":          ColorGray,
	"pink":          ColorPink,
	"purple":        ColorPurple,
}

// ParseColor resolves a color name such as "lightgreen" or "orange".
// Matching ignores case, spaces, dashes and underscores.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	if c, ok := colorNames[key]; ok {
		return c, nil
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
