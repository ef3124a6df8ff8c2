// Package structure implements the confidence extraction pipeline for
// predicted-structure payloads.
//
// A payload is PDB-format text whose per-atom temperature-factor
// column carries the model's per-residue reliability score (pLDDT,
// 0-100). The pipeline validates the payload, extracts one confidence
// entry per residue via the backbone marker atom, and derives a
// renderer coloring function plus aggregate statistics.
package structure

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// backboneMarker is the single atom per residue used to deduplicate
// per-residue data. Every standard amino acid has exactly one alpha
// carbon.
const backboneMarker = "CA"

// ErrMalformedStructure indicates a payload that fails top-level
// validation. This is a data problem, not a transient fault, and is
// never retried.
var ErrMalformedStructure = errors.New("malformed structure payload")

// headerMarkers are record names whose presence identifies PDB text.
var headerMarkers = []string{"HEADER", "TITLE", "MODEL", "ATOM"}

// Validate checks the payload's shape: it must be non-empty text
// containing a recognizable header marker and at least one coordinate
// record. Per-line problems are not validated here; malformed
// individual lines are skipped during extraction.
func Validate(payload []byte) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return fmt.Errorf("%w: empty payload", ErrMalformedStructure)
	}

	hasHeader := false
	hasAtom := false
	scanner := bufio.NewScanner(bytes.NewReader(payload))
	for scanner.Scan() {
		record := recordName(scanner.Text())
		if !hasHeader {
			for _, marker := range headerMarkers {
				if record == marker {
					hasHeader = true
					break
				}
			}
		}
		if record == "ATOM" {
			hasAtom = true
		}
		if hasHeader && hasAtom {
			return nil
		}
	}

	if !hasHeader {
		return fmt.Errorf("%w: no recognizable header record", ErrMalformedStructure)
	}
	return fmt.Errorf("%w: no coordinate records", ErrMalformedStructure)
}

// ExtractResidueConfidence scans the payload line by line and returns
// one entry per residue, in payload order. Only coordinate records for
// the backbone marker atom are kept, so a residue with N, CA, C, O
// atoms contributes exactly one entry. Malformed lines are skipped
// silently; they never fail the whole pipeline.
func ExtractResidueConfidence(payload []byte) []types.ResidueConfidence {
	residues := make([]types.ResidueConfidence, 0, 256)
	seen := make(map[residueKey]struct{})

	scanner := bufio.NewScanner(bytes.NewReader(payload))
	for scanner.Scan() {
		rc, ok := parseAtomRecord(scanner.Text())
		if !ok {
			continue
		}
		// Alternate-location CA records would otherwise double-count a
		// residue; keep the first occurrence per (number, chain).
		key := residueKey{number: rc.ResidueNumber, chain: rc.Chain}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		residues = append(residues, rc)
	}

	return residues
}

type residueKey struct {
	number int
	chain  string
}

// PDB ATOM record fixed columns (1-based, inclusive): record name 1-6,
// atom name 13-16, residue name 18-20, chain ID 22, residue sequence
// number 23-26, temperature factor 61-66. Predicted-structure files
// store the per-residue reliability score in the temperature-factor
// column.
func parseAtomRecord(line string) (types.ResidueConfidence, bool) {
	if len(line) < 66 || recordName(line) != "ATOM" {
		return types.ResidueConfidence{}, false
	}
	if strings.TrimSpace(line[12:16]) != backboneMarker {
		return types.ResidueConfidence{}, false
	}

	resCode := strings.TrimSpace(line[17:20])
	chain := strings.TrimSpace(line[21:22])
	if resCode == "" || chain == "" {
		return types.ResidueConfidence{}, false
	}

	number, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return types.ResidueConfidence{}, false
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	if err != nil {
		return types.ResidueConfidence{}, false
	}

	return types.ResidueConfidence{
		ResidueNumber: number,
		ResidueCode:   resCode,
		Chain:         chain,
		Score:         score,
		Tier:          types.TierForScore(score),
	}, true
}

// recordName returns the trimmed record name field of a PDB line.
func recordName(line string) string {
	if len(line) < 6 {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line[:6])
}
