// Package knapsack solves the 0/1 knapsack problem exactly over treasures
// found in a maze.
//
// Two interchangeable solvers are provided. SolveRecursive enumerates both
// branches of every decision and is exponential in the item count; it serves as
// a reference implementation. SolveDynamic fills a memo table top-down and
// reconstructs the chosen items by backtracking; its table can be exported as
// CSV for inspection. Both return the same optimal value for the same input,
// though they may choose different subsets when several optima exist.
package knapsack

import (
	"errors"
	"fmt"
	"sort"

	"github.com/beka-birhanu/vinom-treasure/game"
)

var (
	ErrInvalidSolver = errors.New("knapsack: incorrect knapsack solver used")
	ErrNegativeInput = errors.New("knapsack: weights, values and capacity must be non-negative")
)

// Algorithm selects a knapsack solver.
type Algorithm string

const (
	Recursive Algorithm = "recur"
	Dynamic   Algorithm = "dynamic"
)

// ParseAlgorithm maps a solver name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case Recursive, Dynamic:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSolver, s)
}

// Item is a treasure that may go into the knapsack.
type Item struct {
	Location game.Cell `json:"location" bson:"location"`
	Weight   int       `json:"weight" bson:"weight"`
	Value    int       `json:"value" bson:"value"`
}

// Result is an optimal selection. Selected lists item locations; Weight and
// Value are their totals.
type Result struct {
	Selected []game.Cell `json:"selected" bson:"selected"`
	Weight   int         `json:"weight" bson:"weight"`
	Value    int         `json:"value" bson:"value"`
}

// Solution bundles a Result with the diagnostics of the solver that produced it.
type Solution struct {
	Result
	Algorithm Algorithm    `json:"algorithm" bson:"algorithm"`
	Table     *Table       `json:"-" bson:"-"` // dynamic solver only
	Calls     *CallCounter `json:"calls,omitempty" bson:"calls,omitempty"`
}

// Validate rejects negative capacities, weights or values.
func Validate(items []Item, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: capacity %d", ErrNegativeInput, capacity)
	}
	for _, it := range items {
		if it.Weight < 0 || it.Value < 0 {
			return fmt.Errorf("%w: item at %s", ErrNegativeInput, it.Location)
		}
	}
	return nil
}

// Solve runs the selected algorithm over all items.
func Solve(items []Item, capacity int, algo Algorithm) (Solution, error) {
	if err := Validate(items, capacity); err != nil {
		return Solution{}, err
	}

	switch algo {
	case Recursive:
		calls := &CallCounter{}
		res := SolveRecursive(items, capacity, len(items), calls)
		return Solution{Result: res, Algorithm: algo, Calls: calls}, nil
	case Dynamic:
		res, table := SolveDynamic(items, capacity, len(items))
		return Solution{Result: res, Algorithm: algo, Table: table}, nil
	}
	return Solution{}, fmt.Errorf("%w: %q", ErrInvalidSolver, algo)
}

// ItemsFromGrid lists every treasure in the grid, sorted by row then column.
func ItemsFromGrid(g game.Grid) []Item {
	treasures := g.Treasures()
	items := make([]Item, 0, len(treasures))
	for c, t := range treasures {
		items = append(items, Item{Location: c, Weight: t.Weight, Value: t.Value})
	}
	SortItems(items)
	return items
}

// SortItems orders items by row, then column.
func SortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i].Location, items[j].Location
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
}
