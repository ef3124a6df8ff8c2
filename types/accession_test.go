package types

import "testing"

func TestParseAccession_Normalizes(t *testing.T) {
	tests := []struct {
		in   string
		want Accession
	}{
		{"P69905", "P69905"},
		{"p69905", "P69905"},
		{"  p69905\n", "P69905"},
		{"a0a024r1r8", "A0A024R1R8"},
	}

	for _, tt := range tests {
		got, err := ParseAccession(tt.in)
		if err != nil {
			t.Errorf("ParseAccession(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAccession(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAccession_Idempotent(t *testing.T) {
	first, err := ParseAccession("  p69905 ")
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := ParseAccession(string(first))
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if first != second {
		t.Errorf("normalization not idempotent: %q != %q", first, second)
	}
}

func TestParseAccession_Rejects(t *testing.T) {
	tests := []string{
		"",
		"P6990",        // too short
		"P69905P69905", // too long
		"P69-05",       // non-alphanumeric
		"P69 905",      // inner whitespace
	}

	for _, in := range tests {
		if _, err := ParseAccession(in); err == nil {
			t.Errorf("ParseAccession(%q): expected error, got nil", in)
		}
	}
}
