package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every job of a YAML job file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := config.Load(path, g.envFile)
			if err != nil {
				return err
			}
			overrideLog(cmd, g, f)

			return execute(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "jobs.yaml", "job file")

	return cmd
}
