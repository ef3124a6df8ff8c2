// Package render turns pviz payloads into terminal output.
//
// Format selection rules:
//   - --format flag always wins
//   - otherwise the config file's output format applies
//   - otherwise a TTY gets table, anything else gets json
//   - Invalid formats are errors
//
// Color handling:
//   - --no-color affects table output only
//   - TUI mode is unaffected by --no-color (uses its own styling)
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/cli/tui"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// Format represents an output format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses a format string, returning an error for invalid formats.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	case "yaml":
		return FormatYAML, nil
	case "":
		return "", nil // Let caller decide default
	default:
		return "", fmt.Errorf("invalid format: %q (must be json, table, or yaml)", s)
	}
}

// Row is one label/value line of a detail table.
type Row struct {
	Label string
	Value string
}

// Tabler lets a payload type describe its own table shape. Payloads
// that do not implement it and have no dedicated table layout fall
// back to JSON in table mode.
type Tabler interface {
	TableRows() []Row
}

// Renderer handles output formatting.
type Renderer struct {
	format  Format
	noColor bool
	out     io.Writer
}

// NewRenderer creates a renderer from CLI context, applying the format
// selection rules above. fallback is the config file's output format
// and may be empty.
func NewRenderer(c *cli.Context, fallback Format) (*Renderer, error) {
	format, err := resolveFormat(c.String("format"), fallback)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		format:  format,
		noColor: c.Bool("no-color"),
		out:     os.Stdout,
	}, nil
}

// resolveFormat picks the effective format: flag, then config
// fallback, then the TTY rule.
func resolveFormat(flagValue string, fallback Format) (Format, error) {
	format, err := ParseFormat(flagValue)
	if err != nil {
		return "", err
	}
	if format == "" {
		format, err = ParseFormat(string(fallback))
		if err != nil {
			return "", fmt.Errorf("config output format: %w", err)
		}
	}
	if format == "" {
		if isTTY(os.Stdout) {
			format = FormatTable
		} else {
			format = FormatJSON
		}
	}
	return format, nil
}

// NewRendererWithWriter creates a renderer with a custom writer (for testing).
func NewRendererWithWriter(format Format, noColor bool, out io.Writer) *Renderer {
	return &Renderer{
		format:  format,
		noColor: noColor,
		out:     out,
	}
}

// Render outputs the data in the configured format.
func (r *Renderer) Render(data any) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(data)
	case FormatTable:
		return r.renderTable(data)
	case FormatYAML:
		return r.renderYAML(data)
	default:
		return fmt.Errorf("unknown format: %s", r.format)
	}
}

// RenderTUI initiates TUI mode for the given view type.
// TUI is opt-in only and read-only.
func (r *Renderer) RenderTUI(viewType string, data any) error {
	if !tui.IsTUISupported(viewType) {
		return fmt.Errorf("--tui is not supported for %s", viewType)
	}

	return tui.Run(viewType, data)
}

func (r *Renderer) renderJSON(data any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (r *Renderer) renderYAML(data any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	return enc.Encode(data)
}

// renderTable dispatches to a dedicated layout per payload shape.
func (r *Renderer) renderTable(data any) error {
	switch v := data.(type) {
	case types.ProteinMetadata:
		return r.metadataDetail(&v)
	case *types.ProteinMetadata:
		return r.metadataDetail(v)
	case []types.ProteinMetadata:
		return r.metadataList(v)
	case []types.ResidueConfidence:
		return r.residueTable(v)
	case types.ConfidenceStatistics:
		return r.statisticsTable(&v)
	case *types.ConfidenceStatistics:
		return r.statisticsTable(v)
	case Tabler:
		return r.rowsTable(v.TableRows())
	default:
		return r.renderJSON(data)
	}
}

// metadataDetail prints one metadata record as label/value rows.
// Optional fields that are absent are omitted rather than printed
// empty.
func (r *Renderer) metadataDetail(meta *types.ProteinMetadata) error {
	rows := []Row{
		{"Accession", meta.Accession.String()},
		{"Name", meta.Name},
		{"Organism", meta.Organism},
	}
	if meta.SequenceLength != nil {
		rows = append(rows, Row{"Length", strconv.Itoa(*meta.SequenceLength) + " residues"})
	}
	if len(meta.Genes) > 0 {
		rows = append(rows, Row{"Genes", strings.Join(meta.Genes, ", ")})
	}
	if meta.AnnotationScore != nil {
		rows = append(rows, Row{"Annotation score", formatScore(*meta.AnnotationScore)})
	}
	if meta.UpdatedAt != "" {
		rows = append(rows, Row{"Updated", meta.UpdatedAt})
	}
	if meta.Function != "" {
		rows = append(rows, Row{"Function", meta.Function})
	}
	return r.rowsTable(rows)
}

// metadataList prints search results, one record per line.
func (r *Renderer) metadataList(results []types.ProteinMetadata) error {
	if len(results) == 0 {
		fmt.Fprintln(r.out, "(no results)")
		return nil
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ACCESSION\tNAME\tORGANISM\tLENGTH")
	for i := range results {
		m := &results[i]
		length := ""
		if m.SequenceLength != nil {
			length = strconv.Itoa(*m.SequenceLength)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Accession, m.Name, m.Organism, length)
	}
	return nil
}

// residueTable prints the per-residue confidence table. The tier
// column carries the structure color for its tier unless color is
// disabled.
func (r *Renderer) residueTable(residues []types.ResidueConfidence) error {
	if len(residues) == 0 {
		fmt.Fprintln(r.out, "(no results)")
		return nil
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "CHAIN\tRESIDUE\tCODE\tSCORE\tTIER")
	for _, res := range residues {
		tier := string(res.Tier)
		if !r.noColor {
			tier = tui.TierStyle(res.Tier).Render(tier)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			res.Chain, res.ResidueNumber, res.ResidueCode, formatScore(res.Score), tier)
	}
	return nil
}

// statisticsTable prints the confidence summary: total, per-tier
// breakdown with percentages, and the aggregate scores.
func (r *Renderer) statisticsTable(stats *types.ConfidenceStatistics) error {
	// Color goes on the count cell: it is the last column, so escape
	// sequences cannot skew the tab alignment.
	tierRow := func(tier types.ConfidenceTier, label string, count, percent int) Row {
		value := fmt.Sprintf("%d (%d%%)", count, percent)
		if !r.noColor {
			value = tui.TierStyle(tier).Render(value)
		}
		return Row{label, value}
	}

	rows := []Row{
		{"Residues", strconv.Itoa(stats.Total)},
		tierRow(types.TierVeryHigh, "Very high", stats.VeryHigh, stats.VeryHighPercent),
		tierRow(types.TierConfident, "Confident", stats.Confident, stats.ConfidentPercent),
		tierRow(types.TierLow, "Low", stats.Low, stats.LowPercent),
		tierRow(types.TierVeryLow, "Very low", stats.VeryLow, stats.VeryLowPercent),
		{"Average confidence", formatScore(stats.AverageConfidence)},
		{"High confidence", fmt.Sprintf("%d%%", stats.HighConfidencePercent)},
	}
	return r.rowsTable(rows)
}

func (r *Renderer) rowsTable(rows []Row) error {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	for _, row := range rows {
		fmt.Fprintf(w, "%s:\t%s\n", row.Label, row.Value)
	}
	return nil
}

// formatScore renders a 0-100 confidence value with one decimal place.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// isTTY returns true if the writer is a TTY.
func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
