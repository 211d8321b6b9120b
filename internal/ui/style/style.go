// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss colors are chosen. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  Palette

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	borderStyle  lipgloss.Style
)

// Init initializes the style package with the given enabled state.
// It also respects NO_COLOR and IBSTAT_NO_COLOR environment variables;
// if either is set (to any non-empty value), styling is disabled
// regardless of the enabled parameter.
//
// This function should be called once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("IBSTAT_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = DefaultPalette(IsDarkBackground())
		initStyles(colors)
	}
}

func initStyles(p Palette) {
	// ANSI256 covers both the basic 16 colors and the extended range.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(p.Success)
	warningStyle = makeStyle(p.Warning)
	errorStyle = makeStyle(p.Error)
	infoStyle = makeStyle(p.Info)
	mutedStyle = makeStyle(p.Muted)
	headerStyle = makeStyle(p.Header)
	borderStyle = makeStyle(p.Border)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations and gains.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages and losses.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles command tokens and identifiers.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Amount styles a formatted number by its sign: gains as Success, losses as Error.
func Amount(text string, value float64) string {
	switch {
	case value > 0:
		return Success(text)
	case value < 0:
		return Error(text)
	default:
		return text
	}
}

// BorderStyle returns the style used for table borders.
func BorderStyle() lipgloss.Style {
	if !enabled {
		return lipgloss.NewStyle()
	}
	return borderStyle
}
