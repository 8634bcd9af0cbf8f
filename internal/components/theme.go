// Package components holds the lipgloss building blocks used by the viewkit TUI.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/viewkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/viewkit/internal/color"
)

// Theme is the set of colors shared by every component.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Danger  lipgloss.Color
	Success lipgloss.Color
	Border  lipgloss.Color

	badges map[breakpoint.Breakpoint]string
}

var defaultBadges = map[breakpoint.Breakpoint]string{
	breakpoint.XS: "#ef5350",
	breakpoint.SM: "#ffa726",
	breakpoint.MD: "#ffee58",
	breakpoint.LG: "#66bb6a",
	breakpoint.XL: "#1e88e5",
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	badges := make(map[breakpoint.Breakpoint]string, len(defaultBadges))
	for bp, hex := range defaultBadges {
		badges[bp] = hex
	}
	return Theme{
		Primary: lipgloss.Color("99"),
		Accent:  lipgloss.Color("212"),
		Muted:   lipgloss.Color("245"),
		Danger:  lipgloss.Color("196"),
		Success: lipgloss.Color("42"),
		Border:  lipgloss.Color("240"),
		badges:  badges,
	}
}

// WithBadges returns a copy of t with badge colors overridden by name
// ("xs".."xl"). Unknown names and unparseable colors are skipped.
func (t Theme) WithBadges(overrides map[string]string) Theme {
	badges := make(map[breakpoint.Breakpoint]string, len(t.badges))
	for bp, hex := range t.badges {
		badges[bp] = hex
	}
	for name, hex := range overrides {
		bp, err := breakpoint.ParseBreakpoint(name)
		if err != nil {
			continue
		}
		if _, ok := color.HexToRGB(hex); !ok {
			continue
		}
		badges[bp] = hex
	}
	t.badges = badges
	return t
}

// BadgeColor returns the background hex for bp.
func (t Theme) BadgeColor(bp breakpoint.Breakpoint) string {
	if hex, ok := t.badges[bp]; ok {
		return hex
	}
	return defaultBadges[bp]
}

// BadgeStyle renders bp's badge: its background color with whichever of
// black or white contrasts best as foreground.
func (t Theme) BadgeStyle(bp breakpoint.Breakpoint) lipgloss.Style {
	bg := t.BadgeColor(bp)
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if bg == "" {
		return style
	}
	if rgb, ok := color.HexToRGB(bg); ok {
		bg = fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
	}
	return style.
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(color.ContrastColor(bg)))
}

// Badge renders bp as a colored label.
func (t Theme) Badge(bp breakpoint.Breakpoint) string {
	return t.BadgeStyle(bp).Render(bp.String())
}
