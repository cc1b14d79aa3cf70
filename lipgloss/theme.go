// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/madlibs"

// Compile-time interface verification.
var _ madlibs.Theme = (*Theme)(nil)

// Theme implements madlibs.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles madlibs.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() madlibs.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme called name ("dark" or "light").
func ThemeByName(name string) (*Theme, bool) {
	switch name {
	case "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	default:
		return nil, false
	}
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: madlibs.Styles{
			Title: madlibs.ColorPair{
				Foreground: "#f9e2af", // Yellow
			},
			Label: madlibs.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Input: madlibs.ColorPair{
				Foreground: "#cdd6f4", // Text
			},
			Placeholder: madlibs.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Story: madlibs.ColorPair{
				Foreground: "#cdd6f4",
			},
			Slot: madlibs.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#a6e3a1", // Green
			},
			Help: madlibs.ColorPair{
				Foreground: "#6c7086",
			},
			Status: madlibs.ColorPair{
				Foreground: "#fab387", // Peach
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: madlibs.Styles{
			Title: madlibs.ColorPair{
				Foreground: "#df8e1d",
			},
			Label: madlibs.ColorPair{
				Foreground: "#1e66f5",
			},
			Input: madlibs.ColorPair{
				Foreground: "#4c4f69",
			},
			Placeholder: madlibs.ColorPair{
				Foreground: "#9ca0b0",
			},
			Story: madlibs.ColorPair{
				Foreground: "#4c4f69",
			},
			Slot: madlibs.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#40a02b",
			},
			Help: madlibs.ColorPair{
				Foreground: "#9ca0b0",
			},
			Status: madlibs.ColorPair{
				Foreground: "#fe640b",
			},
		},
	}
}
