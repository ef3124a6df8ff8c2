package tui

import (
	"strings"
	"testing"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

func TestIsTUISupported(t *testing.T) {
	tests := []struct {
		viewType string
		want     bool
	}{
		{"confidence_legend", true},
		{"confidence_residues", true},

		// Not supported: plain output commands
		{"info", false},
		{"search", false},
		{"version", false},

		// Not supported: unknown
		{"confidence_other", false},
		{"unknown", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.viewType, func(t *testing.T) {
			got := IsTUISupported(tt.viewType)
			if got != tt.want {
				t.Errorf("IsTUISupported(%q) = %v, want %v", tt.viewType, got, tt.want)
			}
		})
	}
}

func TestSupportedTUIViews(t *testing.T) {
	views := SupportedTUIViews()

	if len(views) != 2 {
		t.Errorf("SupportedTUIViews() returned %d views, expected 2", len(views))
	}

	for _, v := range views {
		if !IsTUISupported(v) {
			t.Errorf("SupportedTUIViews() returned %q but IsTUISupported returns false", v)
		}
	}
}

func TestRun_UnsupportedViewType(t *testing.T) {
	err := Run("search", nil)
	if err == nil {
		t.Error("Expected error for unsupported view type")
	}
}

func TestRenderLegendStatic(t *testing.T) {
	stats := &types.ConfidenceStatistics{
		Total:                 4,
		VeryHigh:              1,
		Confident:             1,
		Low:                   1,
		VeryLow:               1,
		VeryHighPercent:       25,
		ConfidentPercent:      25,
		LowPercent:            25,
		VeryLowPercent:        25,
		AverageConfidence:     72.9,
		HighConfidencePercent: 50,
	}

	out := RenderLegendStatic("confidence_legend", stats)

	for _, want := range []string{"Model Confidence", "Very High", "Very Low", "72.9", "50%"} {
		if !strings.Contains(out, want) {
			t.Errorf("legend output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderLegendStatic_InvalidData(t *testing.T) {
	out := RenderLegendStatic("confidence_legend", "wrong")
	if !strings.Contains(out, "Invalid data type") {
		t.Errorf("expected invalid data message, got:\n%s", out)
	}
}

func TestRenderResiduesStatic(t *testing.T) {
	residues := []types.ResidueConfidence{
		{ResidueNumber: 1, ResidueCode: "VAL", Chain: "A", Score: 95.5, Tier: types.TierVeryHigh},
		{ResidueNumber: 2, ResidueCode: "LEU", Chain: "A", Score: 45.3, Tier: types.TierVeryLow},
	}

	out := RenderResiduesStatic("confidence_residues", residues)

	for _, want := range []string{"Residue Confidence", "VAL", "LEU", "95.5", "45.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("residue output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderResiduesStatic_Empty(t *testing.T) {
	out := RenderResiduesStatic("confidence_residues", []types.ResidueConfidence{})
	if !strings.Contains(out, "no residues") {
		t.Errorf("expected empty marker, got:\n%s", out)
	}
}
