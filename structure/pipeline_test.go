package structure

import (
	"fmt"
	"strings"
	"testing"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// atomLine renders a PDB ATOM record with the given atom name, residue,
// chain, sequence number, and temperature factor at their fixed columns.
func atomLine(serial int, name, resName, chain string, resSeq int, temp float64) string {
	return fmt.Sprintf("ATOM  %5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		serial, " "+name, resName, chain, resSeq, 0.0, 0.0, 0.0, 1.00, temp, "C")
}

func testPayload(lines ...string) []byte {
	return []byte("HEADER    PREDICTED STRUCTURE\n" + strings.Join(lines, "\n") + "\nEND\n")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		wantErr bool
	}{
		{"empty", nil, true},
		{"whitespace only", []byte("  \n\t\n"), true},
		{"no header", []byte("this is not a structure\nat all\n"), true},
		{"header without coordinates", []byte("HEADER    SOMETHING\nTITLE     X\nEND\n"), true},
		{"header and atom", testPayload(atomLine(1, "CA", "VAL", "A", 1, 95.5)), false},
		{"atom only", []byte(atomLine(1, "CA", "VAL", "A", 1, 95.5) + "\n"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.payload)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestExtract_OneEntryPerResidue(t *testing.T) {
	// A residue contributes N, CA, C, O backbone atoms; only the CA
	// record may produce an entry.
	payload := testPayload(
		atomLine(1, "N", "VAL", "A", 1, 95.50),
		atomLine(2, "CA", "VAL", "A", 1, 95.50),
		atomLine(3, "C", "VAL", "A", 1, 95.50),
		atomLine(4, "O", "VAL", "A", 1, 95.50),
		atomLine(5, "N", "LEU", "A", 2, 85.25),
		atomLine(6, "CA", "LEU", "A", 2, 85.25),
		atomLine(7, "C", "LEU", "A", 2, 85.25),
	)

	residues := ExtractResidueConfidence(payload)
	if len(residues) != 2 {
		t.Fatalf("got %d residues, want 2", len(residues))
	}

	first := residues[0]
	if first.ResidueNumber != 1 || first.ResidueCode != "VAL" || first.Chain != "A" {
		t.Errorf("first residue = %+v", first)
	}
	if first.Score != 95.5 {
		t.Errorf("first score = %v, want 95.5", first.Score)
	}
	if first.Tier != types.TierVeryHigh {
		t.Errorf("first tier = %q, want very_high", first.Tier)
	}
	if second := residues[1]; second.ResidueNumber != 2 || second.Tier != types.TierConfident {
		t.Errorf("second residue = %+v", second)
	}
}

func TestExtract_AlternateLocationDeduped(t *testing.T) {
	// Two CA records for the same (number, chain) pair must yield one
	// entry; the first occurrence wins.
	payload := testPayload(
		atomLine(1, "CA", "SER", "A", 7, 91.00),
		atomLine(2, "CA", "SER", "A", 7, 12.00),
	)

	residues := ExtractResidueConfidence(payload)
	if len(residues) != 1 {
		t.Fatalf("got %d residues, want 1", len(residues))
	}
	if residues[0].Score != 91.0 {
		t.Errorf("score = %v, want the first occurrence (91.0)", residues[0].Score)
	}
}

func TestExtract_SkipsMalformedLines(t *testing.T) {
	// Valid columns up to the reliability field, then garbage there.
	garbageTemp := atomLine(3, "CA", "GLY", "A", 2, 80)[:60] + "XXXXXX"
	payload := testPayload(
		"ATOM  truncated line",
		atomLine(1, "CA", "VAL", "A", 1, 95.50),
		garbageTemp,
		"HETATM    9  CA  HOH A 100       0.000   0.000   0.000  1.00 50.00           C",
		atomLine(4, "CA", "ALA", "B", 1, 45.30),
	)

	residues := ExtractResidueConfidence(payload)
	if len(residues) != 2 {
		t.Fatalf("got %d residues, want 2 (malformed and HETATM lines skipped)", len(residues))
	}
	if residues[0].Chain != "A" || residues[1].Chain != "B" {
		t.Errorf("chains = %q, %q", residues[0].Chain, residues[1].Chain)
	}
}

func TestExtract_PreservesPayloadOrder(t *testing.T) {
	payload := testPayload(
		atomLine(1, "CA", "MET", "A", 3, 70),
		atomLine(2, "CA", "MET", "A", 1, 70),
		atomLine(3, "CA", "MET", "A", 2, 70),
	)

	residues := ExtractResidueConfidence(payload)
	want := []int{3, 1, 2}
	for i, r := range residues {
		if r.ResidueNumber != want[i] {
			t.Errorf("residues[%d].ResidueNumber = %d, want %d", i, r.ResidueNumber, want[i])
		}
	}
}

func TestExtract_EmptyPayload(t *testing.T) {
	if got := ExtractResidueConfidence(nil); len(got) != 0 {
		t.Errorf("got %d residues from empty payload", len(got))
	}
}
