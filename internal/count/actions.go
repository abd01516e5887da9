package count

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/wordcounter/models"
	"github.com/dtnitsch/wordcounter/pkg/mapreduce"
	"github.com/dtnitsch/wordcounter/pkg/reporter"
	"github.com/urfave/cli/v2"
)

func CountAction(c *cli.Context) error {
	config, err := ConfigFromContext(c)
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if config.Quiet {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	logger.Info("Starting word count run", "mode", config.Mode.String(), "files", len(config.Files), "workers", config.Workers)

	out := c.App.Writer
	report, _, err := Run(logger, out, config)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "WordCount (%s) took: %s s\n", config.Mode, reporter.FormatSeconds(report.Elapsed))

	if config.Top > 0 {
		fmt.Fprintf(out, "\nTop %d words:\n", config.Top)
		if err := mapreduce.PrintTopKeywords(out, report.Counts, config.Top); err != nil {
			return fmt.Errorf("failed to print top words: %w", err)
		}
	}

	return nil
}

// ConfigFromContext resolves the run configuration: defaults, then the
// optional --config file, then explicitly set flags and positional files.
func ConfigFromContext(c *cli.Context) (*models.Config, error) {
	single, parallel := c.Bool("single"), c.Bool("parallel")
	if single == parallel {
		return nil, fmt.Errorf("%w: choose exactly one of -s or -p", ErrUnrecognizedCommand)
	}

	config := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if config, err = models.LoadConfig(path); err != nil {
			return nil, err
		}
	}

	config.Mode = models.ModeSingleThread
	if parallel {
		config.Mode = models.ModeParallel
	}

	if c.NArg() > 0 {
		config.Files = c.Args().Slice()
	}
	if len(config.Files) == 0 {
		return nil, fmt.Errorf("%w: no input files given", ErrUnrecognizedCommand)
	}

	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("manifest") {
		config.Manifest = c.String("manifest")
	}
	if c.IsSet("detect-language") {
		config.DetectLanguage = c.Bool("detect-language")
	}
	if c.IsSet("top") {
		config.Top = c.Int("top")
	}
	if c.IsSet("quiet") {
		config.Quiet = c.Bool("quiet")
	}

	config.Normalize()
	return config, nil
}
