package style

import "github.com/muesli/termenv"

// ColorConfig holds the colors for each semantic role.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// Dark uses bright colors for dark backgrounds.
var Dark = ColorConfig{
	Success: "10",  // bright green
	Warning: "11",  // bright yellow
	Error:   "9",   // bright red
	Info:    "14",  // bright cyan
	Muted:   "245", // medium gray
	Header:  "bold",
}

// Light uses dark saturated colors for light backgrounds.
var Light = ColorConfig{
	Success: "28",  // dark green
	Warning: "130", // dark orange
	Error:   "124", // dark red
	Info:    "27",  // dark blue
	Muted:   "243", // medium-dark gray
	Header:  "bold",
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// Palette picks the palette matching the terminal background.
func Palette(dark bool) ColorConfig {
	if dark {
		return Dark
	}
	return Light
}
