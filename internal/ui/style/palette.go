package style

import "github.com/muesli/termenv"

// Palette holds the semantic colors. Values are ANSI color numbers (0-255)
// or "bold".
type Palette struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Border  string
}

// DefaultPalette returns bright colors for dark backgrounds and dark,
// saturated colors for light ones.
func DefaultPalette(dark bool) Palette {
	if dark {
		return Palette{
			Success: "10",  // bright green
			Warning: "11",  // bright yellow
			Error:   "9",   // bright red
			Info:    "14",  // bright cyan
			Muted:   "245", // medium gray
			Header:  "bold",
			Border:  "240",
		}
	}
	return Palette{
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243",
		Header:  "bold",
		Border:  "250",
	}
}

// IsDarkBackground reports whether the terminal background is dark.
// Defaults to dark when the terminal cannot be queried.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}
