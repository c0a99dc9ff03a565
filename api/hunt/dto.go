// Package huntapi exposes treasure hunts, appraisals and the leaderboard over HTTP.
package huntapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/game"
	"github.com/beka-birhanu/vinom-treasure/game/maze"
	"github.com/beka-birhanu/vinom-treasure/knapsack"
)

// MazeRequest describes the maze to generate.
type MazeRequest struct {
	Rows      int                 `json:"rows" binding:"required"`
	Cols      int                 `json:"cols" binding:"required"`
	Seed      int64               `json:"seed"`
	Treasures *maze.TreasureModel `json:"treasures"`
}

func (m MazeRequest) toSpec() dmn.MazeSpec {
	spec := dmn.MazeSpec{Rows: m.Rows, Cols: m.Cols, Seed: m.Seed}
	if m.Treasures != nil {
		spec.Treasures = *m.Treasures
	}
	return spec
}

// HuntRequest represents a request to run a hunt.
type HuntRequest struct {
	Maze      MazeRequest `json:"maze" binding:"required"`
	Entrance  game.Cell   `json:"entrance"`
	Exit      game.Cell   `json:"exit"`
	Capacity  int         `json:"capacity"`
	Algorithm string      `json:"algorithm"`
}

func (r HuntRequest) toDomain() dmn.HuntRequest {
	return dmn.HuntRequest{
		Maze:      r.Maze.toSpec(),
		Entrance:  r.Entrance,
		Exit:      r.Exit,
		Capacity:  r.Capacity,
		Algorithm: knapsack.Algorithm(r.Algorithm),
	}
}

// AppraisalRequest represents a request to appraise a whole maze.
type AppraisalRequest struct {
	Maze      MazeRequest `json:"maze" binding:"required"`
	Capacity  int         `json:"capacity"`
	Algorithm string      `json:"algorithm"`
}

func (r AppraisalRequest) toDomain() dmn.AppraisalRequest {
	return dmn.AppraisalRequest{
		Maze:      r.Maze.toSpec(),
		Capacity:  r.Capacity,
		Algorithm: knapsack.Algorithm(r.Algorithm),
	}
}

// HuntResponse is the public view of a hunt.
type HuntResponse struct {
	ID            string                `json:"id"`
	Request       dmn.HuntRequest       `json:"request"`
	Path          []game.Cell           `json:"path"`
	Discovered    []knapsack.Item       `json:"discovered"`
	Selected      []game.Cell           `json:"selected"`
	Weight        int                   `json:"weight"`
	Value         int                   `json:"value"`
	CellsExplored int                   `json:"cells_explored"`
	Reward        int                   `json:"reward"`
	Calls         *knapsack.CallCounter `json:"calls,omitempty"`
	Summary       game.Summary          `json:"summary"`
	CreatedAt     time.Time             `json:"created_at"`
}

func huntResponse(h *dmn.Hunt) HuntResponse {
	return HuntResponse{
		ID:            h.ID.String(),
		Request:       h.Request,
		Path:          h.Path,
		Discovered:    h.Discovered,
		Selected:      h.Knapsack.Selected,
		Weight:        h.Knapsack.Weight,
		Value:         h.Knapsack.Value,
		CellsExplored: h.CellsExplored,
		Reward:        h.Reward,
		Calls:         h.Calls,
		Summary:       h.Summary,
		CreatedAt:     h.CreatedAt,
	}
}

// HuntSummary is one row of a hunt listing.
type HuntSummary struct {
	ID        string    `json:"id"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Seed      int64     `json:"seed"`
	Capacity  int       `json:"capacity"`
	Algorithm string    `json:"algorithm"`
	Reward    int       `json:"reward"`
	CreatedAt time.Time `json:"created_at"`
}

func huntSummary(h *dmn.Hunt) HuntSummary {
	return HuntSummary{
		ID:        h.ID.String(),
		Rows:      h.Request.Maze.Rows,
		Cols:      h.Request.Maze.Cols,
		Seed:      h.Request.Maze.Seed,
		Capacity:  h.Request.Capacity,
		Algorithm: string(h.Request.Algorithm),
		Reward:    h.Reward,
		CreatedAt: h.CreatedAt,
	}
}
