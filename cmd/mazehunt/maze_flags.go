package main

import (
	"fmt"
	"strconv"
	"strings"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/game"
	"github.com/beka-birhanu/vinom-treasure/game/maze"
	"github.com/beka-birhanu/vinom-treasure/knapsack"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addMazeFlags registers the flags shared by hunt and appraise. Defaults live
// in the config layer, so flags only win when set.
func addMazeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("rows", 0, "maze rows")
	f.Int("cols", 0, "maze columns")
	f.Int64("seed", 0, "maze seed; the same seed builds the same maze")
	f.Int("capacity", 0, "knapsack capacity")
	f.String("algorithm", "", "knapsack solver: recur or dynamic")
	f.String("out", "", "directory for solver diagnostics (<name>.csv or <name>.txt)")
	f.Int("max-recursive-items", 0, "largest treasure count the recursive solver accepts")
	f.Int("max-table-cells", 0, "budget for (treasures+1)*(capacity+1) solver table cells")
	f.Int("items", 0, "number of treasures")
	f.Int("min-weight", 0, "lightest treasure")
	f.Int("max-weight", 0, "heaviest treasure")
	f.Int("min-value", 0, "cheapest treasure")
	f.Int("max-value", 0, "most valuable treasure")
	f.Float32("common-prob", 0, "probability a treasure keeps its drawn value")
}

// mazeSpec reads the maze settings. The treasure count is capped at the cell
// count so small mazes work with the default settings.
func mazeSpec(v *viper.Viper) dmn.MazeSpec {
	rows, cols := v.GetInt(cfgKeyRows), v.GetInt(cfgKeyCols)
	return dmn.MazeSpec{
		Rows: rows,
		Cols: cols,
		Seed: v.GetInt64(cfgKeySeed),
		Treasures: maze.TreasureModel{
			Count:      min(v.GetInt(cfgKeyCount), max(rows*cols, 0)),
			MinWeight:  v.GetInt(cfgKeyMinWeight),
			MaxWeight:  v.GetInt(cfgKeyMaxWeight),
			MinValue:   v.GetInt(cfgKeyMinValue),
			MaxValue:   v.GetInt(cfgKeyMaxValue),
			CommonProb: float32(v.GetFloat64(cfgKeyCommonProb)),
		},
	}
}

func huntRequest(v *viper.Viper) (dmn.HuntRequest, error) {
	spec := mazeSpec(v)

	entrance, err := parseCell(v.GetString(cfgKeyEntrance))
	if err != nil {
		return dmn.HuntRequest{}, fmt.Errorf("entrance: %w", err)
	}
	exit := game.Cell{Row: spec.Rows - 1, Col: spec.Cols - 1}
	if raw := v.GetString(cfgKeyExit); raw != "" {
		if exit, err = parseCell(raw); err != nil {
			return dmn.HuntRequest{}, fmt.Errorf("exit: %w", err)
		}
	}

	req := dmn.HuntRequest{
		Maze:      spec,
		Entrance:  entrance,
		Exit:      exit,
		Capacity:  v.GetInt(cfgKeyCapacity),
		Algorithm: knapsack.Algorithm(v.GetString(cfgKeyAlgorithm)),
	}.WithDefaults()
	return req, req.ValidateWithin(limits(v))
}

func appraisalRequest(v *viper.Viper) (dmn.AppraisalRequest, error) {
	req := dmn.AppraisalRequest{
		Maze:      mazeSpec(v),
		Capacity:  v.GetInt(cfgKeyCapacity),
		Algorithm: knapsack.Algorithm(v.GetString(cfgKeyAlgorithm)),
	}.WithDefaults()
	return req, req.ValidateWithin(limits(v))
}

func limits(v *viper.Viper) dmn.Limits {
	return dmn.Limits{MaxTableCells: v.GetInt(cfgKeyMaxTableCells)}
}

// parseCell reads "row,col".
func parseCell(s string) (game.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return game.Cell{}, fmt.Errorf("invalid cell %q (expected row,col)", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return game.Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return game.Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return game.Cell{Row: row, Col: col}, nil
}
