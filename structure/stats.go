package structure

import (
	"math"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// ComputeStatistics aggregates a residue confidence table in a single
// pass: per-tier counts, percentages rounded to the nearest whole
// percent, the mean score rounded to one decimal place, and the
// combined very_high + confident percentage. An empty table yields all
// zeros.
func ComputeStatistics(residues []types.ResidueConfidence) types.ConfidenceStatistics {
	stats := types.ConfidenceStatistics{Total: len(residues)}
	if len(residues) == 0 {
		return stats
	}

	var sum float64
	for _, r := range residues {
		sum += r.Score
		switch r.Tier {
		case types.TierVeryHigh:
			stats.VeryHigh++
		case types.TierConfident:
			stats.Confident++
		case types.TierLow:
			stats.Low++
		default:
			stats.VeryLow++
		}
	}

	total := len(residues)
	stats.VeryHighPercent = wholePercent(stats.VeryHigh, total)
	stats.ConfidentPercent = wholePercent(stats.Confident, total)
	stats.LowPercent = wholePercent(stats.Low, total)
	stats.VeryLowPercent = wholePercent(stats.VeryLow, total)
	stats.HighConfidencePercent = wholePercent(stats.VeryHigh+stats.Confident, total)
	stats.AverageConfidence = math.Round(sum/float64(total)*10) / 10

	return stats
}

func wholePercent(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}
