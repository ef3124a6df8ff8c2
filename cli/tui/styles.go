// Package tui provides Bubble Tea TUI components for the pviz CLI.
//
// TUI rules:
//   - TUI is opt-in only (--tui flag)
//   - TUI is read-only (structure and residue views)
//   - TUI uses same data payloads as non-TUI rendering
//   - No TUI-exclusive data allowed
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/structure"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// Tier color palette, matching the structure coloring scheme so the
// terminal legend agrees with the rendered model.
var (
	veryHighColor  = lipgloss.Color(structure.ColorVeryHigh)
	confidentColor = lipgloss.Color(structure.ColorConfident)
	lowColor       = lipgloss.Color(structure.ColorLow)
	veryLowColor   = lipgloss.Color(structure.ColorVeryLow)
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	accentColor    = lipgloss.Color("#3B82F6") // Blue
)

// Styles for TUI components.
var (
	// TitleStyle for headers and titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	// LabelStyle for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(16)

	// ValueStyle for field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// BoxStyle for bordered containers.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	// StatBoxStyle for tier stat display boxes.
	StatBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 2).
			Width(20).
			Align(lipgloss.Center)

	// StatLabelStyle for stat labels.
	StatLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Align(lipgloss.Center)

	// StatValueStyle for stat values.
	StatValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Align(lipgloss.Center)
)

// TierColor returns the lipgloss color for a confidence tier.
func TierColor(tier types.ConfidenceTier) lipgloss.Color {
	switch tier {
	case types.TierVeryHigh:
		return veryHighColor
	case types.TierConfident:
		return confidentColor
	case types.TierLow:
		return lowColor
	case types.TierVeryLow:
		return veryLowColor
	default:
		return mutedColor
	}
}

// TierStyle returns a foreground style for a confidence tier.
func TierStyle(tier types.ConfidenceTier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TierColor(tier))
}

// tierLabel is the human-readable name shown next to tier values.
func tierLabel(tier types.ConfidenceTier) string {
	switch tier {
	case types.TierVeryHigh:
		return "Very High"
	case types.TierConfident:
		return "Confident"
	case types.TierLow:
		return "Low"
	case types.TierVeryLow:
		return "Very Low"
	default:
		return string(tier)
	}
}
