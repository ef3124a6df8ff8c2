package types

import "testing"

func TestTierForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  ConfidenceTier
	}{
		{100, TierVeryHigh},
		{95, TierVeryHigh},
		{90, TierVeryHigh},
		{89.9, TierConfident},
		{70, TierConfident},
		{69.9, TierLow},
		{50, TierLow},
		{49.9, TierVeryLow},
		{0, TierVeryLow},
	}

	for _, tt := range tests {
		if got := TierForScore(tt.score); got != tt.want {
			t.Errorf("TierForScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestTierForScore_MonotonicNonDecreasing(t *testing.T) {
	rank := map[ConfidenceTier]int{
		TierVeryLow:   0,
		TierLow:       1,
		TierConfident: 2,
		TierVeryHigh:  3,
	}

	prev := TierForScore(0)
	for s := 0.5; s <= 100; s += 0.5 {
		cur := TierForScore(s)
		if rank[cur] < rank[prev] {
			t.Fatalf("tier decreased from %q to %q at score %v", prev, cur, s)
		}
		prev = cur
	}
}

func TestLoadState_Terminal(t *testing.T) {
	for _, s := range []LoadState{StateIdle, StateFetching, StateValidating, StateParsing} {
		if s.Terminal() {
			t.Errorf("%q should not be terminal", s)
		}
	}
	for _, s := range []LoadState{StateReady, StateFailed} {
		if !s.Terminal() {
			t.Errorf("%q should be terminal", s)
		}
	}
}
