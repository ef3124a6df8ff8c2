package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/cli/render"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// VersionResponse is the response for the version command.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// TableRows is the table layout for version output.
func (vr VersionResponse) TableRows() []render.Row {
	return []render.Row{
		{Label: "Version", Value: vr.Version},
		{Label: "Commit", Value: vr.Commit},
	}
}

// VersionCommand returns the version command. It must not contact any
// API endpoint.
func VersionCommand(commit string) *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show version information",
		Flags:  ReadOnlyFlags(),
		Action: versionAction(commit),
	}
}

func versionAction(commit string) cli.ActionFunc {
	return func(c *cli.Context) error {
		// Version has no --config flag, so there is no config-file
		// format default here.
		r, err := render.NewRenderer(c, "")
		if err != nil {
			return err
		}

		if c.Bool("tui") {
			return cli.Exit("--tui is not supported for version command", 1)
		}

		resp := VersionResponse{
			Version: types.Version,
			Commit:  commit,
		}

		return r.Render(resp)
	}
}
