package command

import (
	"io"

	"github.com/urfave/cli/v2"
)

// NewApp builds the hashreduce command line application writing to stdout and stderr
func NewApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "hashreduce",
		Usage:     "count a word across key,value sources with a chained hash table",
		ArgsUsage: "WORD [none|tech|thread]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "directory the source files are resolved against",
			},
			&cli.Int64Flag{
				Name:  "table-size",
				Usage: "number of buckets in every table",
			},
			&cli.StringFlag{
				Name:  "policy",
				Usage: "insert policy, \"append\" or \"update\"",
			},
			&cli.BoolFlag{
				Name:  "exact",
				Usage: "count only exact key matches instead of bucket occupancy",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "history-db",
				Usage: "SQLite file to record runs in",
			},
			&cli.IntFlag{
				Name:  "list-history",
				Usage: "print the last N recorded runs as YAML and exit",
			},
		},
		Action: RunAction,
	}
}
