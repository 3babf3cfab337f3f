package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/phaseflow/internal/render"
)

// Theme bundles the terminal palette with the surface style it implies.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	FadeAlpha float64
	TrailSlow colorful.Color
	TrailFast colorful.Color
}

var (
	ThemeDark = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("86"),
		Accent:    lipgloss.Color("213"),
		Text:      lipgloss.Color("252"),
		Muted:     lipgloss.Color("242"),
		Warning:   lipgloss.Color("220"),
		Error:     lipgloss.Color("196"),
		FadeAlpha: 0.88,
		TrailSlow: colorful.Color{R: 0.18, G: 0.35, B: 0.80},
		TrailFast: colorful.Color{R: 0.95, G: 0.55, B: 0.15},
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		Primary:   lipgloss.Color("46"),
		Accent:    lipgloss.Color("118"),
		Text:      lipgloss.Color("46"),
		Muted:     lipgloss.Color("22"),
		Warning:   lipgloss.Color("226"),
		Error:     lipgloss.Color("196"),
		FadeAlpha: 0.91,
		TrailSlow: colorful.Color{R: 0.0, G: 0.45, B: 0.1},
		TrailFast: colorful.Color{R: 0.4, G: 1.0, B: 0.4},
	}

	ThemePaper = Theme{
		Name:      "paper",
		Primary:   lipgloss.Color("25"),
		Accent:    lipgloss.Color("124"),
		Text:      lipgloss.Color("235"),
		Muted:     lipgloss.Color("248"),
		Warning:   lipgloss.Color("130"),
		Error:     lipgloss.Color("124"),
		FadeAlpha: 0.85,
		TrailSlow: colorful.Color{R: 0.2, G: 0.3, B: 0.6},
		TrailFast: colorful.Color{R: 0.8, G: 0.2, B: 0.2},
	}
)

var themes = []Theme{ThemeDark, ThemePhosphor, ThemePaper}

// ThemeNames lists the available themes in cycling order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// GetTheme returns the named theme, falling back to dark.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// Style translates a theme into the renderer's surface style.
func (t Theme) Style() render.Style {
	s := render.DefaultStyle()
	s.FadeAlpha = t.FadeAlpha
	s.Slow = t.TrailSlow
	s.Fast = t.TrailFast
	if t.Name == "paper" {
		s.Background = color.NRGBA{245, 243, 238, 255}
		s.Grid = color.NRGBA{220, 218, 210, 255}
		s.Arrow = color.NRGBA{160, 160, 170, 255}
		s.EqFill = color.NRGBA{30, 30, 40, 255}
		s.SeedDot = color.NRGBA{20, 20, 20, 255}
	}
	return s
}
