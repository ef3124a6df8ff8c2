package cmd

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/cli/render"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/loader"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// StructureResponse is the summary payload for the structure command.
type StructureResponse struct {
	Accession      types.Accession            `json:"accession"`
	State          types.LoadState            `json:"state"`
	Name           string                     `json:"name,omitempty"`
	Organism       string                     `json:"organism,omitempty"`
	SequenceLength *int                       `json:"sequence_length,omitempty"`
	Statistics     types.ConfidenceStatistics `json:"statistics"`
}

// TableRows is the table layout for the load summary: identity first,
// then the confidence digest.
func (sr StructureResponse) TableRows() []render.Row {
	rows := []render.Row{
		{Label: "Accession", Value: sr.Accession.String()},
		{Label: "State", Value: string(sr.State)},
	}
	if sr.Name != "" {
		rows = append(rows, render.Row{Label: "Name", Value: sr.Name})
	}
	if sr.Organism != "" {
		rows = append(rows, render.Row{Label: "Organism", Value: sr.Organism})
	}
	if sr.SequenceLength != nil {
		rows = append(rows, render.Row{Label: "Length", Value: strconv.Itoa(*sr.SequenceLength) + " residues"})
	}
	return append(rows,
		render.Row{Label: "Residues", Value: strconv.Itoa(sr.Statistics.Total)},
		render.Row{Label: "Average confidence", Value: strconv.FormatFloat(sr.Statistics.AverageConfidence, 'f', 1, 64)},
		render.Row{Label: "High confidence", Value: fmt.Sprintf("%d%%", sr.Statistics.HighConfidencePercent)},
	)
}

// newStructureResponse builds the summary payload from a completed
// load session.
func newStructureResponse(res *loader.Result) StructureResponse {
	resp := StructureResponse{
		Accession:  res.Accession,
		State:      res.State,
		Statistics: res.Statistics,
	}
	if res.Metadata != nil {
		resp.Name = res.Metadata.Name
		resp.Organism = res.Metadata.Organism
		resp.SequenceLength = res.Metadata.SequenceLength
	}
	return resp
}

// StructureCommand returns the structure command.
// Structure runs a full load session: metadata and predicted structure
// fetched concurrently, the payload validated and parsed, and the
// per-residue confidence summarised.
func StructureCommand() *cli.Command {
	flags := append(ReadOnlyFlags(), FetchFlags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:  "residues",
		Usage: "Show the per-residue confidence table instead of the summary",
	})

	return &cli.Command{
		Name:      "structure",
		Usage:     "Load a predicted structure and show its confidence profile",
		ArgsUsage: "<accession>",
		Flags:     flags,
		Action:    structureAction,
	}
}

func structureAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("accession required", 1)
	}
	acc, err := types.ParseAccession(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	d, err := buildDeps(c)
	if err != nil {
		return err
	}
	defer d.Close()

	r, err := d.renderer(c)
	if err != nil {
		return err
	}

	res := d.loader.Load(c.Context, acc)
	if res.State == types.StateFailed {
		return failureExit(res.Err)
	}

	if c.Bool("residues") {
		if c.Bool("tui") {
			return r.RenderTUI("confidence_residues", res.Residues)
		}
		return r.Render(res.Residues)
	}

	if c.Bool("tui") {
		return r.RenderTUI("confidence_legend", &res.Statistics)
	}
	return r.Render(newStructureResponse(res))
}
