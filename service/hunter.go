package service

import (
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/game"
	"github.com/beka-birhanu/vinom-treasure/game/route"
	"github.com/beka-birhanu/vinom-treasure/knapsack"
	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/google/uuid"
)

const (
	DefaultMaxRecursiveItems = 22
)

var (
	ErrTooManyItems = errors.New("too many treasures for the recursive solver")
)

// Outcome is the result of one hunt through a grid.
type Outcome struct {
	Path          []game.Cell       `json:"path"`
	Discovered    []knapsack.Item   `json:"discovered"`
	Solution      knapsack.Solution `json:"solution"`
	CellsExplored int               `json:"cells_explored"`
	Summary       game.Summary      `json:"summary"`
}

// Reward is the knapsack value minus the number of distinct cells walked.
func (o *Outcome) Reward() int {
	return o.Solution.Value - o.CellsExplored
}

// Record turns the outcome into a new hunt record for explorerID.
func (o *Outcome) Record(explorerID uuid.UUID, req dmn.HuntRequest, at time.Time) *dmn.Hunt {
	return &dmn.Hunt{
		ID:            uuid.New(),
		ExplorerID:    explorerID,
		Request:       req,
		Path:          o.Path,
		Discovered:    o.Discovered,
		Knapsack:      o.Solution.Result,
		Calls:         o.Solution.Calls,
		CellsExplored: o.CellsExplored,
		Reward:        o.Reward(),
		Summary:       o.Summary,
		CreatedAt:     at,
	}
}

// HunterOption configures a Hunter.
type HunterOption func(*Hunter)

// WithMaxRecursiveItems caps the item count handed to the recursive solver.
func WithMaxRecursiveItems(n int) HunterOption {
	return func(h *Hunter) {
		if n > 0 {
			h.maxRecursiveItems = n
		}
	}
}

// Hunter walks the waypoint tour of a grid, picks up every treasure it
// passes and packs the best subset it can carry.
type Hunter struct {
	capacity          int
	algo              knapsack.Algorithm
	maxRecursiveItems int
	logger            i.Logger
}

// NewHunter creates a hunter with a knapsack of the given capacity.
func NewHunter(capacity int, algo knapsack.Algorithm, logger i.Logger, opts ...HunterOption) *Hunter {
	h := &Hunter{
		capacity:          capacity,
		algo:              algo,
		maxRecursiveItems: DefaultMaxRecursiveItems,
		logger:            logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run hunts from entrance to exit. An illegal path is fatal and yields no outcome.
func (h *Hunter) Run(g game.Grid, entrance, exit game.Cell) (*Outcome, error) {
	algo, err := knapsack.ParseAlgorithm(string(h.algo))
	if err != nil {
		return nil, err
	}

	path := route.Build(g, entrance, exit)
	visited := route.Distinct(path)

	discovered := make([]knapsack.Item, 0)
	for _, c := range visited {
		if t, ok := g.Treasure(c); ok {
			discovered = append(discovered, knapsack.Item{Location: c, Weight: t.Weight, Value: t.Value})
		}
	}
	knapsack.SortItems(discovered)
	h.logger.Info(fmt.Sprintf("Walked %d steps over %d cells, found %d treasures", len(path), len(visited), len(discovered)))

	if algo == knapsack.Recursive && len(discovered) > h.maxRecursiveItems {
		return nil, fmt.Errorf("%w: %d found, limit is %d", ErrTooManyItems, len(discovered), h.maxRecursiveItems)
	}

	solution, err := knapsack.Solve(discovered, h.capacity, algo)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Path:          path,
		Discovered:    discovered,
		Solution:      solution,
		CellsExplored: len(visited),
		Summary:       g.Summary(),
	}

	if err := route.Verify(g, path, entrance, exit); err != nil {
		h.logger.Error(fmt.Sprintf("Rejecting hunt: %v", err))
		return nil, err
	}

	h.logger.Info(fmt.Sprintf("Packed %d treasures, weight %d/%d, value %d, reward %d",
		len(solution.Selected), solution.Weight, h.capacity, solution.Value, outcome.Reward()))
	return outcome, nil
}

// Appraise solves the knapsack over every treasure in the grid, ignoring any path.
func (h *Hunter) Appraise(g game.Grid) ([]knapsack.Item, knapsack.Solution, error) {
	algo, err := knapsack.ParseAlgorithm(string(h.algo))
	if err != nil {
		return nil, knapsack.Solution{}, err
	}

	items := knapsack.ItemsFromGrid(g)
	if algo == knapsack.Recursive && len(items) > h.maxRecursiveItems {
		return nil, knapsack.Solution{}, fmt.Errorf("%w: %d in maze, limit is %d", ErrTooManyItems, len(items), h.maxRecursiveItems)
	}

	solution, err := knapsack.Solve(items, h.capacity, algo)
	if err != nil {
		return nil, knapsack.Solution{}, err
	}
	h.logger.Info(fmt.Sprintf("Appraised %d treasures: best value %d at weight %d/%d",
		len(items), solution.Value, solution.Weight, h.capacity))
	return items, solution, nil
}
