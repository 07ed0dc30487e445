package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
)

// single wraps one job into a validated File. The environment is applied
// first, then explicitly given flags.
func single(cmd *cobra.Command, g *globalFlags, job config.Job) (*config.File, error) {
	f := config.Default()
	f.Workers = 1
	f.Jobs = []config.Job{job}
	if err := config.ApplyEnv(&f, g.envFile); err != nil {
		return nil, err
	}
	overrideLog(cmd, g, &f)
	if err := config.Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

func newDistancesCmd(g *globalFlags) *cobra.Command {
	job := config.Job{Kind: config.KindDistances}
	var reverse, nearest bool
	cmd := &cobra.Command{
		Use:   "distances FILE",
		Short: "Shortest distance between two markers of a grid",
		Long: `Reads a grid from FILE and prints the fewest steps from the start marker
to the goal marker. With --nearest the goal is any cell whose rune is
listed in --target.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job.Name = args[0]
			job.File = args[0]
			job.Traversal = "forward"
			if reverse {
				job.Traversal = "reverse"
			}
			if nearest {
				job.Kind = config.KindNearest
			}
			f, err := single(cmd, g, job)
			if err != nil {
				return err
			}

			return execute(cmd, f)
		},
	}
	cmd.Flags().StringVar(&job.Start, "start", "S", "start marker rune")
	cmd.Flags().StringVar(&job.Goal, "goal", "E", "goal marker rune")
	cmd.Flags().StringVar(&job.Target, "target", "", "runes accepted as goal with --nearest")
	cmd.Flags().StringVar(&job.Rule, "rule", "climb:1", `step rule: "any" or "climb:N"`)
	cmd.Flags().StringVar(&job.Legend, "legend", "elevation", "cell legend: elevation or maze")
	cmd.Flags().BoolVar(&job.Diagonal, "diagonal", false, "allow diagonal moves")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "walk edges backwards (distance to the start marker)")
	cmd.Flags().BoolVar(&nearest, "nearest", false, "stop at the nearest --target cell")

	return cmd
}

func newJourneyCmd(g *globalFlags) *cobra.Command {
	job := config.Job{Kind: config.KindJourney}
	cmd := &cobra.Command{
		Use:   "journey FILE",
		Short: "Cross a blizzard valley one or more times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if job.Legs < 1 {
				return fmt.Errorf("--legs must be at least 1, got %d", job.Legs)
			}
			job.Name = args[0]
			job.File = args[0]
			f, err := single(cmd, g, job)
			if err != nil {
				return err
			}

			return execute(cmd, f)
		},
	}
	cmd.Flags().IntVar(&job.Legs, "legs", 1, "number of crossings, alternating entrance and exit")

	return cmd
}
