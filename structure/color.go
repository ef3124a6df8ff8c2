package structure

import "github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"

// Model confidence colors, matching the structure-prediction
// convention of the data source (AlphaFold DB).
const (
	ColorVeryHigh  = "#0053D6" // deep blue
	ColorConfident = "#65CBF3" // light blue
	ColorLow       = "#FFDB13" // yellow
	ColorVeryLow   = "#FF7D45" // orange

	// ColorNeutral is used for residues absent from the confidence
	// table.
	ColorNeutral = "#CCCCCC"
)

// ColorForScore maps a 0-100 reliability score to its tier color.
func ColorForScore(score float64) string {
	return ColorForTier(types.TierForScore(score))
}

// ColorForTier maps a confidence tier to its hex color.
func ColorForTier(tier types.ConfidenceTier) string {
	switch tier {
	case types.TierVeryHigh:
		return ColorVeryHigh
	case types.TierConfident:
		return ColorConfident
	case types.TierLow:
		return ColorLow
	default:
		return ColorVeryLow
	}
}

// ColorFunc resolves the display color for an atom by residue
// identity. The renderer calls it once per atom during a style pass.
type ColorFunc func(residueNumber int, chain string) string

// BuildColorFunc returns a ColorFunc closed over an index of the given
// residue table. Lookup is O(1) per call; structures with many
// thousands of residues must not pay a linear scan per atom.
// Residues absent from the table resolve to ColorNeutral.
func BuildColorFunc(residues []types.ResidueConfidence) ColorFunc {
	index := make(map[residueKey]string, len(residues))
	for _, r := range residues {
		index[residueKey{number: r.ResidueNumber, chain: r.Chain}] = ColorForScore(r.Score)
	}

	return func(residueNumber int, chain string) string {
		if color, ok := index[residueKey{number: residueNumber, chain: chain}]; ok {
			return color
		}
		return ColorNeutral
	}
}
