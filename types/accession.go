// Package types defines core domain types for the protein visualizer.
//
//nolint:revive // types is a common Go package naming convention
package types

import (
	"fmt"
	"regexp"
	"strings"
)

// Accession is a validated, normalized protein accession identifier.
// It is always uppercase and whitespace-trimmed, and is used as the
// cache/lookup key and URL path segment for both upstream APIs.
type Accession string

// accessionPattern matches UniProt-style accessions: 6-10 alphanumeric
// characters after normalization.
var accessionPattern = regexp.MustCompile(`^[A-Z0-9]{6,10}$`)

// ParseAccession validates and normalizes a raw accession string.
// Normalization trims surrounding whitespace and uppercases.
// It is idempotent: ParseAccession(string(a)) returns a unchanged.
func ParseAccession(raw string) (Accession, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !accessionPattern.MatchString(normalized) {
		return "", fmt.Errorf("invalid accession %q: must be 6-10 alphanumeric characters", raw)
	}
	return Accession(normalized), nil
}

func (a Accession) String() string {
	return string(a)
}
