package types

// ProteinMetadata is one protein record from the metadata API,
// converted to a typed shape at the client's parsing boundary.
// Instances are immutable once constructed; a re-fetch supersedes the
// previous instance rather than mutating it.
type ProteinMetadata struct {
	// Accession is the normalized primary accession.
	Accession Accession `msgpack:"accession" json:"accession"`
	// Name is the display name (recommended name, falling back to the
	// first submitted name, falling back to the accession).
	Name string `msgpack:"name" json:"name"`
	// Organism is the source organism name.
	Organism string `msgpack:"organism" json:"organism"`
	// SequenceLength is the sequence length in residues, if reported.
	SequenceLength *int `msgpack:"sequence_length,omitempty" json:"sequence_length,omitempty"`
	// Genes are the gene names, order-preserving, possibly empty.
	Genes []string `msgpack:"genes,omitempty" json:"genes,omitempty"`
	// Function is the free-text function description, possibly empty.
	Function string `msgpack:"function,omitempty" json:"function,omitempty"`
	// AnnotationScore is the upstream annotation score scaled to 0-100,
	// if reported. It is an informational metadata-level estimate and is
	// never fed to the per-residue confidence pipeline.
	AnnotationScore *float64 `msgpack:"annotation_score,omitempty" json:"annotation_score,omitempty"`
	// UpdatedAt is the last annotation update date as reported upstream
	// (ISO 8601 date), or empty if unknown.
	UpdatedAt string `msgpack:"updated_at,omitempty" json:"updated_at,omitempty"`
}
