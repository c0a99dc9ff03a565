package main

import (
	"fmt"

	"github.com/beka-birhanu/vinom-treasure/service"
	"github.com/spf13/cobra"
)

func newAppraiseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appraise",
		Short: "Pack the best knapsack from every treasure in a maze",
		Long: `Appraise ignores the route and solves the knapsack over the whole treasure
registry of the generated maze. Use it to compare the solvers or to see what a
hunt could have earned at best.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := appraisalRequest(a.cfg)
			if err != nil {
				return err
			}

			m, err := req.Maze.Build()
			if err != nil {
				return err
			}
			hunter := service.NewHunter(req.Capacity, req.Algorithm, a.logger(cmd.ErrOrStderr()),
				service.WithMaxRecursiveItems(a.cfg.GetInt(cfgKeyMaxRecursiveItems)))
			items, sol, err := hunter.Appraise(m)
			if err != nil {
				return err
			}

			diag, err := writeDiagnostics(a.cfg.GetString(cfgKeyOut), fmt.Sprintf("appraisal-%d", req.Maze.Seed), sol)
			if err != nil {
				return fmt.Errorf("write diagnostics: %w", err)
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return printJSON(out, map[string]any{"items": items, "solution": sol})
			}
			fmt.Fprintf(out, "%d treasures, capacity %d, solver %s\n", len(items), req.Capacity, sol.Algorithm)
			for _, it := range items {
				fmt.Fprintf(out, "  %s weight %d value %d\n", it.Location, it.Weight, it.Value)
			}
			fmt.Fprintf(out, "best: weight %d, value %d, %d packed\n", sol.Weight, sol.Value, len(sol.Selected))
			if diag != "" {
				fmt.Fprintf(out, "diagnostics: %s\n", diag)
			}
			return nil
		},
	}

	addMazeFlags(cmd)
	return cmd
}
