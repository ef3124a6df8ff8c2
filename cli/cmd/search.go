package cmd

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// SearchCommand returns the search command.
// Search runs a free-text query against the metadata API and lists
// matching records.
func SearchCommand() *cli.Command {
	flags := append(ReadOnlyFlags(), FetchFlags()...)
	flags = append(flags, &cli.IntFlag{
		Name:  "limit",
		Usage: "Maximum number of results",
	})

	return &cli.Command{
		Name:      "search",
		Usage:     "Search proteins by name or keyword",
		ArgsUsage: "<query>",
		Flags:     flags,
		Action:    searchAction,
	}
}

func searchAction(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return cli.Exit("search query required", 1)
	}

	if c.Bool("tui") {
		return cli.Exit("--tui is not supported for search command", 1)
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

	results, err := d.metadata.Search(c.Context, query, d.searchLimit(c))
	if err != nil {
		return failureExit(err)
	}

	return r.Render(results)
}
