package types

// ConfidenceTier is one of four ordinal confidence buckets derived
// from a 0-100 per-residue reliability score.
type ConfidenceTier string

// Tiers in ascending order of reliability.
const (
	TierVeryLow   ConfidenceTier = "very_low"
	TierLow       ConfidenceTier = "low"
	TierConfident ConfidenceTier = "confident"
	TierVeryHigh  ConfidenceTier = "very_high"
)

// TierForScore classifies a 0-100 reliability score into a tier.
// Boundaries: >=90 very_high, >=70 confident, >=50 low, else very_low.
func TierForScore(score float64) ConfidenceTier {
	switch {
	case score >= 90:
		return TierVeryHigh
	case score >= 70:
		return TierConfident
	case score >= 50:
		return TierLow
	default:
		return TierVeryLow
	}
}

// ResidueConfidence is the per-residue confidence entry extracted from
// one structure payload. One entry exists per residue that has a
// resolved backbone marker atom; entries are unique per
// (ResidueNumber, Chain) within a payload and are never mutated after
// construction.
type ResidueConfidence struct {
	// ResidueNumber is the residue sequence number within its chain.
	ResidueNumber int `msgpack:"residue_number" json:"residue_number"`
	// ResidueCode is the three-letter residue code (e.g. "VAL").
	ResidueCode string `msgpack:"residue_code" json:"residue_code"`
	// Chain is the single-character chain identifier.
	Chain string `msgpack:"chain" json:"chain"`
	// Score is the per-residue reliability value (0-100), taken from
	// the payload's per-atom reliability field.
	Score float64 `msgpack:"score" json:"score"`
	// Tier is the confidence tier derived from Score.
	Tier ConfidenceTier `msgpack:"tier" json:"tier"`
}

// ConfidenceStatistics aggregates a residue confidence table for a
// legend/summary display. Derived entirely from the current table;
// recomputed on demand, never cached across structure loads.
type ConfidenceStatistics struct {
	// Total is the number of residues in the table.
	Total int `json:"total"`

	// Per-tier counts.
	VeryHigh  int `json:"very_high"`
	Confident int `json:"confident"`
	Low       int `json:"low"`
	VeryLow   int `json:"very_low"`

	// Per-tier percentages, rounded to the nearest whole percent.
	VeryHighPercent  int `json:"very_high_percent"`
	ConfidentPercent int `json:"confident_percent"`
	LowPercent       int `json:"low_percent"`
	VeryLowPercent   int `json:"very_low_percent"`

	// AverageConfidence is the arithmetic mean score, rounded to one
	// decimal place. Zero for an empty table.
	AverageConfidence float64 `json:"average_confidence"`
	// HighConfidencePercent is the combined very_high + confident
	// percentage, rounded to the nearest whole percent.
	HighConfidencePercent int `json:"high_confidence_percent"`
}
