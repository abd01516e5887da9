package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/wordcounter/internal/count"
	"github.com/dtnitsch/wordcounter/models"
	"github.com/dtnitsch/wordcounter/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "wordcounter",
		Usage:           "count word occurrences in .txt files, on one thread or many",
		UsageText:       help.UsageText,
		Description:     help.Description,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "single",
				Aliases: []string{"s"},
				Usage:   "count on a single thread (writes " + models.SingleThreadResultFile + ")",
			},
			&cli.BoolFlag{
				Name:    "parallel",
				Aliases: []string{"p"},
				Usage:   "count on a pool of workers (writes " + models.ParallelResultFile + ")",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   models.DefaultWorkerCount(),
				Usage:   "number of concurrent workers in parallel mode",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Value: ".",
				Usage: "directory for the result file",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config file; flags override its values",
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "also write a YAML run manifest to this path",
			},
			&cli.BoolFlag{
				Name:  "detect-language",
				Usage: "detect the dominant language of the input",
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "print the N most frequent words",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Action: count.CountAction,
	}
}
