package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded hunts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			hunts, err := store.ByExplorer(uuid.Nil, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return printJSON(out, hunts)
			}
			if len(hunts) == 0 {
				fmt.Fprintln(out, "no hunts recorded")
				return nil
			}
			for _, h := range hunts {
				fmt.Fprintf(out, "%s  %s  %dx%d seed %-6d %-7s capacity %-4d reward %d\n",
					h.ID.String()[:8], h.CreatedAt.Format("2006-01-02 15:04:05"),
					h.Request.Maze.Rows, h.Request.Maze.Cols, h.Request.Maze.Seed,
					h.Request.Algorithm, h.Request.Capacity, h.Reward)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum hunts to list (0 for all)")
	return cmd
}
