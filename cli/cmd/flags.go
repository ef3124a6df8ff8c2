// Package cmd provides CLI commands for the pviz binary.
package cmd

import "github.com/urfave/cli/v2"

// Shared flags for read-only commands.
var (
	// FormatFlag selects output format: json, table, yaml.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}

	// NoColorFlag disables colored output.
	NoColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	}

	// TUIFlag enables Bubble Tea interactive mode.
	// Only valid for the confidence views of the structure command.
	TUIFlag = &cli.BoolFlag{
		Name:  "tui",
		Usage: "Enable interactive TUI mode (structure command only)",
	}

	// ConfigFlag points at a pviz.yaml config file.
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to pviz.yaml config file",
	}

	// VerboseFlag enables structured debug logging to stderr.
	VerboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Enable debug logging",
	}
)

// ReadOnlyFlags returns the shared flags for all read-only commands.
// Includes --tui so that unsupported commands can provide explicit error
// messages instead of generic "flag not defined" errors.
func ReadOnlyFlags() []cli.Flag {
	return []cli.Flag{
		FormatFlag,
		NoColorFlag,
		TUIFlag,
	}
}

// FetchFlags returns flags for commands that issue API requests.
// Values override config file defaults.
func FetchFlags() []cli.Flag {
	return []cli.Flag{
		ConfigFlag,
		VerboseFlag,
		&cli.StringFlag{
			Name:  "metadata-url",
			Usage: "Metadata API base URL override",
		},
		&cli.StringFlag{
			Name:  "structure-url",
			Usage: "Structure repository base URL override",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Per-request timeout (e.g. 30s)",
		},
		&cli.IntFlag{
			Name:  "max-attempts",
			Usage: "Total attempts per request, including retries",
		},
		&cli.DurationFlag{
			Name:  "base-delay",
			Usage: "Backoff unit between retries (e.g. 1s)",
		},
		&cli.StringFlag{
			Name:  "cache-url",
			Usage: "Redis cache URL (empty disables caching)",
		},
	}
}
