package uniprot

import (
	"encoding/json"
	"fmt"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/fetch"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// annotationScoreScale converts the upstream 1-5 annotation score to
// the 0-100 display range.
const annotationScoreScale = 20

// rawEntry mirrors the subset of the upstream entry JSON this module
// reads. Alternate field names (recommended vs submitted protein name,
// scientific vs common organism name) are all declared here so the
// defaulting rules live in one place.
type rawEntry struct {
	PrimaryAccession   string `json:"primaryAccession"`
	ProteinDescription struct {
		RecommendedName rawProteinName   `json:"recommendedName"`
		SubmissionNames []rawProteinName `json:"submissionNames"`
	} `json:"proteinDescription"`
	Organism struct {
		ScientificName string `json:"scientificName"`
		CommonName     string `json:"commonName"`
	} `json:"organism"`
	Genes []struct {
		GeneName struct {
			Value string `json:"value"`
		} `json:"geneName"`
	} `json:"genes"`
	Sequence *struct {
		Length int `json:"length"`
	} `json:"sequence"`
	Comments []struct {
		CommentType string `json:"commentType"`
		Texts       []struct {
			Value string `json:"value"`
		} `json:"texts"`
	} `json:"comments"`
	AnnotationScore *float64 `json:"annotationScore"`
	EntryAudit      struct {
		LastAnnotationUpdateDate string `json:"lastAnnotationUpdateDate"`
		LastSequenceUpdateDate   string `json:"lastSequenceUpdateDate"`
	} `json:"entryAudit"`
}

type rawProteinName struct {
	FullName struct {
		Value string `json:"value"`
	} `json:"fullName"`
}

type rawSearchResponse struct {
	Results []json.RawMessage `json:"results"`
}

// parseEntry converts one upstream entry into typed ProteinMetadata.
// Defaulting rules: name falls back from recommended name to the first
// submitted name to the accession; organism falls back from scientific
// to common name; function is the first FUNCTION comment text.
func parseEntry(body []byte) (*types.ProteinMetadata, error) {
	var raw rawEntry
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode entry: %v", fetch.ErrMalformed, err)
	}

	acc, err := types.ParseAccession(raw.PrimaryAccession)
	if err != nil {
		return nil, fmt.Errorf("%w: entry accession: %v", fetch.ErrMalformed, err)
	}

	meta := &types.ProteinMetadata{
		Accession: acc,
		Name:      displayName(&raw, acc),
		Organism:  organismName(&raw),
		Function:  functionText(&raw),
		UpdatedAt: updatedAt(&raw),
	}

	if raw.Sequence != nil && raw.Sequence.Length >= 0 {
		length := raw.Sequence.Length
		meta.SequenceLength = &length
	}
	if raw.AnnotationScore != nil {
		scaled := *raw.AnnotationScore * annotationScoreScale
		meta.AnnotationScore = &scaled
	}
	for _, g := range raw.Genes {
		if g.GeneName.Value != "" {
			meta.Genes = append(meta.Genes, g.GeneName.Value)
		}
	}

	return meta, nil
}

// parseSearchResults converts a search response. Entries that fail to
// parse individually are skipped; upstream occasionally includes
// records without a usable accession.
func parseSearchResults(body []byte) ([]types.ProteinMetadata, error) {
	var raw rawSearchResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", fetch.ErrMalformed, err)
	}

	results := make([]types.ProteinMetadata, 0, len(raw.Results))
	for _, entry := range raw.Results {
		meta, err := parseEntry(entry)
		if err != nil {
			continue
		}
		results = append(results, *meta)
	}
	return results, nil
}

func displayName(raw *rawEntry, acc types.Accession) string {
	if v := raw.ProteinDescription.RecommendedName.FullName.Value; v != "" {
		return v
	}
	for _, n := range raw.ProteinDescription.SubmissionNames {
		if n.FullName.Value != "" {
			return n.FullName.Value
		}
	}
	return string(acc)
}

func organismName(raw *rawEntry) string {
	if raw.Organism.ScientificName != "" {
		return raw.Organism.ScientificName
	}
	if raw.Organism.CommonName != "" {
		return raw.Organism.CommonName
	}
	return "Unknown organism"
}

func functionText(raw *rawEntry) string {
	for _, c := range raw.Comments {
		if c.CommentType != "FUNCTION" {
			continue
		}
		for _, t := range c.Texts {
			if t.Value != "" {
				return t.Value
			}
		}
	}
	return ""
}

func updatedAt(raw *rawEntry) string {
	if raw.EntryAudit.LastAnnotationUpdateDate != "" {
		return raw.EntryAudit.LastAnnotationUpdateDate
	}
	return raw.EntryAudit.LastSequenceUpdateDate
}
