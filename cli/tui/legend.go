package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// LegendModel is a Bubble Tea model for the confidence legend view: one
// stat box per tier plus the aggregate summary line.
type LegendModel struct {
	viewType string
	data     any
	width    int
	height   int
	quitting bool
}

// NewLegendModel creates a new legend model.
func NewLegendModel(viewType string, data any) LegendModel {
	return LegendModel{
		viewType: viewType,
		data:     data,
	}
}

// Init implements tea.Model.
func (m LegendModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m LegendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m LegendModel) View() string {
	if m.quitting {
		return ""
	}

	stats, ok := m.data.(*types.ConfidenceStatistics)
	if !ok {
		return "Invalid data type for confidence_legend"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Model Confidence"))
	b.WriteString("\n\n")

	boxes := []string{
		m.renderTierBox(types.TierVeryHigh, stats.VeryHigh, stats.VeryHighPercent),
		m.renderTierBox(types.TierConfident, stats.Confident, stats.ConfidentPercent),
		m.renderTierBox(types.TierLow, stats.Low, stats.LowPercent),
		m.renderTierBox(types.TierVeryLow, stats.VeryLow, stats.VeryLowPercent),
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n",
		LabelStyle.Render("Residues:"),
		ValueStyle.Render(fmt.Sprintf("%d", stats.Total))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		LabelStyle.Render("Mean pLDDT:"),
		ValueStyle.Render(fmt.Sprintf("%.1f", stats.AverageConfidence))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		LabelStyle.Render("High Conf:"),
		ValueStyle.Render(fmt.Sprintf("%d%%", stats.HighConfidencePercent))))

	help := HelpStyle.Render("Press q or Ctrl+C to quit")
	return b.String() + "\n" + help
}

func (m LegendModel) renderTierBox(tier types.ConfidenceTier, count, percent int) string {
	color := TierColor(tier)
	boxStyle := StatBoxStyle.BorderForeground(color)

	valueStr := StatValueStyle.Foreground(color).Render(fmt.Sprintf("%d (%d%%)", count, percent))
	labelStr := StatLabelStyle.Render(tierLabel(tier))

	content := lipgloss.JoinVertical(lipgloss.Center, valueStr, labelStr)

	return boxStyle.Render(content)
}

// RunLegendTUI runs the confidence legend TUI.
func RunLegendTUI(viewType string, data any) error {
	model := NewLegendModel(viewType, data)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RenderLegendStatic renders legend data without full TUI (for fallback).
func RenderLegendStatic(viewType string, data any) string {
	model := NewLegendModel(viewType, data)
	model.width = 80
	model.height = 24
	return lipgloss.NewStyle().Padding(1, 2).Render(model.View())
}
