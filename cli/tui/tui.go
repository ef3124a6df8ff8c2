package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines key bindings shared by the TUI views.
type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Run starts the appropriate TUI based on the view type.
// Returns an error if the view type doesn't support TUI.
func Run(viewType string, data any) error {
	if !IsTUISupported(viewType) {
		return fmt.Errorf("TUI mode is not supported for %s", viewType)
	}

	switch viewType {
	case "confidence_legend":
		return RunLegendTUI(viewType, data)
	case "confidence_residues":
		return RunResiduesTUI(viewType, data)
	}

	return fmt.Errorf("unknown view type: %s", viewType)
}

// IsTUISupported returns true if the view type supports TUI mode.
// Only the read-only confidence views support TUI.
func IsTUISupported(viewType string) bool {
	return strings.HasPrefix(viewType, "confidence_") &&
		(viewType == "confidence_legend" || viewType == "confidence_residues")
}

// SupportedTUIViews returns a list of view types that support TUI.
func SupportedTUIViews() []string {
	return []string{
		"confidence_legend",
		"confidence_residues",
	}
}
