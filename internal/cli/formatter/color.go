package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored status label such as "● ON TRACK".
func StatusPill(status domain.Status) string {
	switch status {
	case domain.StatusGreen:
		return StyleGreen.Render("● ON TRACK")
	case domain.StatusYellow:
		return StyleYellow.Render("● ATTENTION")
	case domain.StatusRed:
		return StyleRed.Render("● AT RISK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// RiskColor returns the lipgloss style corresponding to the given risk level.
func RiskColor(risk domain.RiskLevel) lipgloss.Style {
	switch risk {
	case domain.RiskHigh:
		return StyleRed
	case domain.RiskMedium:
		return StyleYellow
	case domain.RiskLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// RiskIndicator returns a colored risk indicator string such as "● HIGH".
func RiskIndicator(risk domain.RiskLevel) string {
	return RiskColor(risk).Render("● " + strings.ToUpper(string(risk)))
}

// TrendArrow returns a colored arrow for the record trend.
func TrendArrow(trend domain.Trend) string {
	switch trend {
	case domain.TrendImproving:
		return StyleGreen.Render("↑")
	case domain.TrendDeclining:
		return StyleRed.Render("↓")
	default:
		return StyleDim.Render("→")
	}
}

// HealthStyle picks a style by health score band.
func HealthStyle(health float64) lipgloss.Style {
	switch {
	case health > 80:
		return StyleGreen
	case health >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
