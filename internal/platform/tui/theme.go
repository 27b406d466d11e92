package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lines/internal/core"
)

// Theme contains all configurable visual styles of the terminal UI.
type Theme struct {
	Name string

	// Screen cell colors, keyed by core.Color
	Palette map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuControls    lipgloss.Style
}

// Style returns the style for a screen colour, falling back to the default.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Palette[c]; ok {
		return s
	}
	return t.Palette[core.ColorDefault]
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the default visual theme using the ANSI palette.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("4"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9"),
			core.ColorBrightGreen:   fg("10"),
			core.ColorBrightYellow:  fg("11"),
			core.ColorBrightBlue:    fg("12"),
			core.ColorBrightMagenta: fg("13"),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15"),
			core.ColorOrange:        fg("208"),
			core.ColorBrown:         fg("130"),
			core.ColorGray:          fg("245"),
		},

		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),
		MenuControls:    fg("241"),
	}
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "pastel"
	theme.Palette = clonePalette(theme.Palette)
	theme.Palette[core.ColorBrightRed] = fg("210")     // Pastel red
	theme.Palette[core.ColorBrightGreen] = fg("157")   // Pastel green
	theme.Palette[core.ColorBrightBlue] = fg("111")    // Pastel blue
	theme.Palette[core.ColorBrightYellow] = fg("229")  // Pastel yellow
	theme.Palette[core.ColorBrightMagenta] = fg("218") // Pastel pink
	theme.Palette[core.ColorBrightCyan] = fg("123")    // Pastel cyan
	theme.Palette[core.ColorOrange] = fg("216")        // Peach
	theme.Palette[core.ColorBrown] = fg("180")         // Tan
	theme.MenuTitle = fg("183").Bold(true)
	return theme
}

// NeonTheme returns a high-contrast 256-colour theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.Palette = clonePalette(theme.Palette)
	theme.Palette[core.ColorBrightRed] = fg("196")
	theme.Palette[core.ColorBrightGreen] = fg("118")
	theme.Palette[core.ColorBrightBlue] = fg("33")
	theme.Palette[core.ColorBrightYellow] = fg("227")
	theme.Palette[core.ColorBrightMagenta] = fg("199")
	theme.Palette[core.ColorBrightCyan] = fg("87")
	theme.Palette[core.ColorOrange] = fg("202")
	theme.Palette[core.ColorBrown] = fg("136")
	theme.Palette[core.ColorGray] = fg("238")
	return theme
}

func clonePalette(p map[core.Color]lipgloss.Style) map[core.Color]lipgloss.Style {
	out := make(map[core.Color]lipgloss.Style, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"pastel":  PastelTheme,
	"neon":    NeonTheme,
}

// ThemeNames returns the names accepted by ThemeByName, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	mk, ok := themes[name]
	if !ok {
		return DefaultTheme(), fmt.Errorf("tui: unknown theme %q", name)
	}
	return mk(), nil
}

// Global theme variable (can be changed at startup)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return currentTheme
}
