package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/alarm-clock/internal/domain/settings"
	"github.com/oshokin/alarm-clock/internal/parser"
)

// Theme holds the styles used by Text.
type Theme struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Dim     lipgloss.Style
	Frame   lipgloss.Style
}

// DefaultTheme returns the standard dump styles.
func DefaultTheme() Theme {
	return Theme{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:   lipgloss.NewStyle().Width(18),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Text renders the settings, fonts and alarms of a snapshot.
func Text(snap *parser.Snapshot, theme Theme) string {
	s := snap.Settings

	row := func(label string, value any) string {
		return theme.Label.Render(label) + theme.Value.Render(fmt.Sprint(value))
	}

	sections := []string{
		theme.Heading.Render("Settings"),
		row("Title", fmt.Sprintf("%q", s.Title)),
		row("Sound file name", fmt.Sprintf("%q", s.SoundFileName)),
		row("Screen width", s.ScreenWidth),
		row("Screen height", s.ScreenHeight),
		row("Dim delay", s.DimDelay),
		row("Bright value", s.Bright),
		row("Dim value", s.Dim),
		"",
		theme.Heading.Render("Fonts"),
	}

	for _, size := range settings.FontSizes() {
		f := snap.Fonts[size]
		sections = append(sections, row(titleCase(size.String()), fmt.Sprintf("%3d %s", f.Size, f.FileName)))
	}

	sections = append(sections, "", theme.Heading.Render(fmt.Sprintf("Alarms (%d)", len(snap.Alarms))))

	if len(snap.Alarms) == 0 {
		sections = append(sections, theme.Dim.Render("none"))
	}

	for _, a := range snap.Alarms {
		days := strings.Join(a.Days.Names(), ", ")
		if days == "" {
			days = theme.Dim.Render("no days")
		}

		sections = append(sections, row(a.Clock(), days))
	}

	return theme.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
