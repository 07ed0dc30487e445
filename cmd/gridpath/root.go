package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/instrument"
	"github.com/katalvlaran/gridpath/runner"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	envFile   string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Shortest-path searches over grids, valleys, tunnels and voxels",
		Long: `gridpath runs Dijkstra and time-expanded A* searches described in a
YAML job file, or a single search given on the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().StringVar(&g.envFile, "env", ".env", "dotenv file with GRIDPATH_* overrides")

	root.AddCommand(newRunCmd(g), newDistancesCmd(g), newJourneyCmd(g))
	return root
}

// overrideLog copies explicitly given logging flags into f.
func overrideLog(cmd *cobra.Command, g *globalFlags, f *config.File) {
	if cmd.Flags().Changed("log-level") {
		f.Log.Level = g.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		f.Log.Format = g.logFormat
	}
}

// newLogger builds the slog logger selected by level and format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("log format %q: want text or json", format)
}

// execute runs f and prints one line per job. Metrics are dumped when
// f.Metrics.File is set.
func execute(cmd *cobra.Command, f *config.File) error {
	logger, err := newLogger(cmd.ErrOrStderr(), f.Log.Level, f.Log.Format)
	if err != nil {
		return err
	}
	r := runner.New(logger, instrument.New(), f.Workers)

	outcomes, runErr := r.Run(cmd.Context(), f)
	w := cmd.OutOrStdout()
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			fmt.Fprintf(w, "%s\terror: %v\n", o.Job, o.Err)
		case len(o.Legs) > 1:
			fmt.Fprintf(w, "%s\t%d\t%v\n", o.Job, o.Value, o.Legs)
		default:
			fmt.Fprintf(w, "%s\t%d\n", o.Job, o.Value)
		}
	}

	if f.Metrics.File != "" {
		if err := r.Metrics().WriteTextfile(f.Metrics.File); err != nil {
			logger.Error("metrics dump failed", "error", err)
		}
	}

	return runErr
}
