package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// ResiduesModel is a Bubble Tea model for browsing a per-residue
// confidence table. The list can run to thousands of rows, so it
// scrolls inside a viewport.
type ResiduesModel struct {
	viewType string
	data     any
	viewport viewport.Model
	ready    bool
	quitting bool
}

// NewResiduesModel creates a new residue browser model.
func NewResiduesModel(viewType string, data any) ResiduesModel {
	return ResiduesModel{
		viewType: viewType,
		data:     data,
	}
}

// Init implements tea.Model.
func (m ResiduesModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ResiduesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 3
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.renderRows())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ResiduesModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		// No WindowSizeMsg yet; render unscrolled for static output.
		return m.renderHeader() + "\n" + m.renderRows() + "\n" + m.renderFooter()
	}
	return m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderFooter()
}

func (m ResiduesModel) renderHeader() string {
	return TitleStyle.Render("Residue Confidence") + "\n" +
		LabelStyle.Render("res   code chain") + LabelStyle.Render("score  tier")
}

func (m ResiduesModel) renderFooter() string {
	return HelpStyle.Render("↑/↓ scroll · q or Ctrl+C to quit")
}

func (m ResiduesModel) renderRows() string {
	residues, ok := m.data.([]types.ResidueConfidence)
	if !ok {
		return "Invalid data type for confidence_residues"
	}
	if len(residues) == 0 {
		return "(no residues)"
	}

	var b strings.Builder
	for _, r := range residues {
		row := fmt.Sprintf("%5d  %-3s  %-3s  %5.1f  %s",
			r.ResidueNumber, r.ResidueCode, r.Chain, r.Score, tierLabel(r.Tier))
		b.WriteString(TierStyle(r.Tier).Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

// RunResiduesTUI runs the residue browser TUI.
func RunResiduesTUI(viewType string, data any) error {
	model := NewResiduesModel(viewType, data)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RenderResiduesStatic renders the residue table without full TUI (for
// fallback).
func RenderResiduesStatic(viewType string, data any) string {
	model := NewResiduesModel(viewType, data)
	return lipgloss.NewStyle().Padding(1, 2).Render(model.View())
}
