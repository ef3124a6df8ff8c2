package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// InfoCommand returns the info command.
// Info fetches and displays the metadata record for one accession.
func InfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Show protein metadata for an accession",
		ArgsUsage: "<accession>",
		Flags:     append(ReadOnlyFlags(), FetchFlags()...),
		Action:    infoAction,
	}
}

func infoAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("accession required", 1)
	}
	acc, err := types.ParseAccession(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("tui") {
		return cli.Exit("--tui is not supported for info command", 1)
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

	meta, err := d.metadata.GetByAccession(c.Context, acc)
	if err != nil {
		return failureExit(err)
	}

	return r.Render(meta)
}
