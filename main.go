package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"procexport/collector"
	"procexport/config"
	"procexport/exporter"
	"procexport/logger"
	"procexport/models"
	"procexport/prompt"
	"procexport/sorter"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	a := &app{
		lister:     collector.SystemLister{},
		in:         os.Stdin,
		out:        os.Stdout,
		isTerminal: stdinIsTerminal,
	}

	if err := a.command().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	lister     collector.Lister
	in         io.Reader
	out        io.Writer
	isTerminal func() bool
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "procexport",
		Short:         "Export the running processes to a CSV file",
		Long:          "Take a snapshot of every visible process and export name, PID, user, start time, thread count and status to a CSV file, sorted by the chosen column.",
		Version:       fmt.Sprintf("%s (%s) built on %s", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP(config.KeySort, "s", "", "sort column: Name, PID, User or Status (prompts when unset)")
	flags.StringP(config.KeyOutputDir, "d", config.DefaultOutputDir, "directory the CSV file is written to")
	flags.StringP(config.KeyOutputFile, "o", config.DefaultOutputFile, "name of the CSV file")
	flags.String(config.KeyLogLevel, "info", "log level: debug, info, warn, error")
	flags.String(config.KeyLogEncoding, "console", "log encoding: console or json")
	flags.Bool(config.KeyPreview, false, "print the sorted processes as a table")
	flags.Bool(config.KeyNoPrompt, false, "never prompt for the sort column")

	return cmd
}

func (a *app) run(ctx context.Context, cfg *config.Config) error {
	log, err := logger.GetLogger(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if !cfg.EnvFileLoaded {
		log.Debug("No .env file found, using environment variables")
	}
	log.Debugf("procexport %s (%s) built on %s", version, commit, date)

	collector.DetectVisibility(log)

	records, err := collector.New(a.lister, log).Collect(ctx)
	if err != nil {
		return err
	}

	token, err := a.sortToken(cfg)
	if err != nil {
		return err
	}
	key, ok := models.ParseSortKey(token)
	if !ok {
		fmt.Fprintln(a.out, "Invalid choice, defaulting to alphabetical sorting.")
	}
	log.Debugw("Sorting processes", "key", key.String())

	sorted := sorter.Sort(records, key)

	if cfg.Preview {
		exporter.Preview(a.out, sorted)
	}

	path, err := config.ResolveDestination(cfg)
	if err != nil {
		return err
	}
	if err := exporter.New(log).Export(path, sorted); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Background processes have been exported to '%s' successfully.\n", path)
	return nil
}

// sortToken returns the configured token, or asks for one when running
// interactively. Without either the default Name key is used.
func (a *app) sortToken(cfg *config.Config) (string, error) {
	if cfg.SortConfigured() {
		return cfg.Sort, nil
	}
	if cfg.NoPrompt || !a.isTerminal() {
		return models.SortByName.String(), nil
	}

	p := &prompt.SortPrompter{In: a.in, Out: a.out}
	return p.Ask()
}
