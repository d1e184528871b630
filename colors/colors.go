// Package colors contains functions to quickly generate the color.RGBA values the demo overlays are drawn with, by name
// (i.e. "White()", "LightGray()", "Label()", etc).
package colors

import "image/color"

// White generates a color.RGBA instance of the provided name.
func White() color.RGBA {
	return color.RGBA{255, 255, 255, 255}
}

// LightGray generates a color.RGBA instance of the provided name.
func LightGray() color.RGBA {
	return color.RGBA{200, 200, 200, 255}
}

// DarkGray generates a color.RGBA instance of the provided name; this is the background the demos clear to.
func DarkGray() color.RGBA {
	return color.RGBA{60, 70, 80, 255}
}

// Label generates the color used for the label above each printed value.
func Label() color.RGBA {
	return color.RGBA{255, 220, 120, 255}
}

// Warning generates the color used for values that fell back to a default (for example, a failed DirectionToDirection).
func Warning() color.RGBA {
	return color.RGBA{255, 110, 100, 255}
}
