package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newHuntCmd(a *app) *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "hunt",
		Short: "Generate a maze, walk its waypoint tour and pack the best treasures",
		Long: `Hunt generates a seeded maze, walks from the entrance through every corner
and the centre to the exit, and packs the most valuable treasures found on the
way into a knapsack. The reward is the packed value minus the number of
distinct cells walked.

Example:
  mazehunt hunt --rows 8 --cols 12 --seed 42 --capacity 25
  mazehunt hunt --algorithm recur --items 12 --out diag`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := huntRequest(a.cfg)
			if err != nil {
				return err
			}

			m, err := req.Maze.Build()
			if err != nil {
				return err
			}
			hunter := service.NewHunter(req.Capacity, req.Algorithm, a.logger(cmd.ErrOrStderr()),
				service.WithMaxRecursiveItems(a.cfg.GetInt(cfgKeyMaxRecursiveItems)))
			outcome, err := hunter.Run(m, req.Entrance, req.Exit)
			if err != nil {
				return err
			}

			hunt := outcome.Record(uuid.Nil, req, time.Now().UTC())
			if !noSave {
				store, err := a.openHistory()
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Save(hunt); err != nil {
					return fmt.Errorf("save hunt: %w", err)
				}
			}

			diag, err := writeDiagnostics(a.cfg.GetString(cfgKeyOut), "hunt-"+hunt.ID.String()[:8], outcome.Solution)
			if err != nil {
				return fmt.Errorf("write diagnostics: %w", err)
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return printJSON(out, hunt)
			}
			fmt.Fprint(out, m.String())
			printHunt(out, hunt)
			if diag != "" {
				fmt.Fprintf(out, "diagnostics: %s\n", diag)
			}
			return nil
		},
	}

	addMazeFlags(cmd)
	cmd.Flags().String("entrance", "", "entrance cell as row,col")
	cmd.Flags().String("exit", "", "exit cell as row,col (default: opposite corner)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the hunt in the history")
	return cmd
}

func printHunt(w io.Writer, h *dmn.Hunt) {
	fmt.Fprintf(w, "hunt:       %s\n", h.ID)
	fmt.Fprintf(w, "maze:       %dx%d seed %d\n", h.Request.Maze.Rows, h.Request.Maze.Cols, h.Request.Maze.Seed)
	fmt.Fprintf(w, "route:      %s -> %s, %d steps, %d distinct cells\n",
		h.Request.Entrance, h.Request.Exit, len(h.Path), h.CellsExplored)
	fmt.Fprintf(w, "treasures:  %d found of %d in the maze\n", len(h.Discovered), h.Summary.ItemCount)
	fmt.Fprintf(w, "knapsack:   %s, weight %d/%d, value %d\n",
		h.Request.Algorithm, h.Knapsack.Weight, h.Request.Capacity, h.Knapsack.Value)
	for _, c := range h.Knapsack.Selected {
		fmt.Fprintf(w, "  packed %s\n", c)
	}
	if h.Calls != nil {
		fmt.Fprintf(w, "calls:      %d (first base case at call %d)\n", h.Calls.Calls, h.Calls.CallsAtFirstBase)
	}
	fmt.Fprintf(w, "reward:     %d\n", h.Reward)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
