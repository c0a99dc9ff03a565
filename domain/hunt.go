package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-treasure/game"
	"github.com/beka-birhanu/vinom-treasure/game/maze"
	"github.com/beka-birhanu/vinom-treasure/knapsack"
	"github.com/google/uuid"
)

var (
	ErrInvalidRequest = errors.New("invalid hunt request")
	ErrHuntNotFound   = errors.New("hunt not found")
)

// DefaultTreasureModel is used when a request leaves the treasure model empty.
var DefaultTreasureModel = maze.TreasureModel{
	Count:      10,
	MinWeight:  1,
	MaxWeight:  10,
	MinValue:   5,
	MaxValue:   50,
	CommonProb: 0.9,
}

// DefaultMaxTableCells bounds (treasures+1)*(capacity+1), the size of the
// dynamic solver's table, for requests validated without explicit limits.
const DefaultMaxTableCells = 4_000_000

// Limits caps the work a single request may ask for.
type Limits struct {
	MaxTableCells int
}

// DefaultLimits applies when a caller sets no limits of its own.
var DefaultLimits = Limits{MaxTableCells: DefaultMaxTableCells}

func (l Limits) checkCapacity(treasures, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: capacity must be non-negative", ErrInvalidRequest)
	}
	maxCells := l.MaxTableCells
	if maxCells <= 0 {
		maxCells = DefaultMaxTableCells
	}
	// (treasures+1)*(capacity+1) <= maxCells, without overflowing.
	if capacity >= maxCells/(treasures+1) {
		return fmt.Errorf("%w: capacity %d with %d treasures exceeds the %d cell solver budget",
			ErrInvalidRequest, capacity, treasures, maxCells)
	}
	return nil
}

// MazeSpec describes a reproducible treasure maze.
type MazeSpec struct {
	Rows      int                `json:"rows" bson:"rows"`
	Cols      int                `json:"cols" bson:"cols"`
	Seed      int64              `json:"seed" bson:"seed"`
	Treasures maze.TreasureModel `json:"treasures" bson:"treasures"`
}

// Build generates the maze and scatters its treasures.
func (s MazeSpec) Build() (*maze.WillsonMaze, error) {
	m, err := maze.New(s.Rows, s.Cols, maze.WithSeed(s.Seed))
	if err != nil {
		return nil, err
	}
	if err := m.PopulateTreasures(s.Treasures); err != nil {
		return nil, err
	}
	return m, nil
}

func (s MazeSpec) withDefaults() MazeSpec {
	if s.Treasures == (maze.TreasureModel{}) {
		s.Treasures = DefaultTreasureModel
		s.Treasures.Count = min(DefaultTreasureModel.Count, max(s.Rows*s.Cols, 0))
	}
	return s
}

func (s MazeSpec) validate() error {
	if s.Rows <= 0 || s.Cols <= 0 || s.Rows > maze.MaxDimension || s.Cols > maze.MaxDimension {
		return fmt.Errorf("%w: maze sides must be between 1 and %d", ErrInvalidRequest, maze.MaxDimension)
	}
	if err := s.Treasures.Validate(s.Rows, s.Cols); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func (s MazeSpec) inBound(c game.Cell) bool {
	return c.Row >= 0 && c.Row < s.Rows && c.Col >= 0 && c.Col < s.Cols
}

// HuntRequest holds everything needed to reproduce a hunt.
type HuntRequest struct {
	Maze      MazeSpec           `json:"maze" bson:"maze"`
	Entrance  game.Cell          `json:"entrance" bson:"entrance"`
	Exit      game.Cell          `json:"exit" bson:"exit"`
	Capacity  int                `json:"capacity" bson:"capacity"`
	Algorithm knapsack.Algorithm `json:"algorithm" bson:"algorithm"`
}

// WithDefaults fills the treasure model and algorithm when they are left empty.
func (r HuntRequest) WithDefaults() HuntRequest {
	r.Maze = r.Maze.withDefaults()
	if r.Algorithm == "" {
		r.Algorithm = knapsack.Dynamic
	}
	return r
}

// Validate checks the request against DefaultLimits.
func (r HuntRequest) Validate() error {
	return r.ValidateWithin(DefaultLimits)
}

// ValidateWithin checks the request before any work is done.
func (r HuntRequest) ValidateWithin(l Limits) error {
	if err := r.Maze.validate(); err != nil {
		return err
	}
	if !r.Maze.inBound(r.Entrance) {
		return fmt.Errorf("%w: entrance %s is outside the maze", ErrInvalidRequest, r.Entrance)
	}
	if !r.Maze.inBound(r.Exit) {
		return fmt.Errorf("%w: exit %s is outside the maze", ErrInvalidRequest, r.Exit)
	}
	if err := l.checkCapacity(r.Maze.Treasures.Count, r.Capacity); err != nil {
		return err
	}
	if _, err := knapsack.ParseAlgorithm(string(r.Algorithm)); err != nil {
		return err
	}
	return nil
}

// Fingerprint identifies the request for one explorer. Equal requests from the
// same explorer always produce the same hunt.
func (r HuntRequest) Fingerprint(explorerID uuid.UUID) string {
	payload, _ := json.Marshal(struct {
		Explorer uuid.UUID   `json:"explorer"`
		Request  HuntRequest `json:"request"`
	}{explorerID, r})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Hunt is the stored record of one run.
type Hunt struct {
	ID            uuid.UUID             `json:"id" bson:"_id"`
	ExplorerID    uuid.UUID             `json:"explorer_id" bson:"explorerId"`
	Request       HuntRequest           `json:"request" bson:"request"`
	Path          []game.Cell           `json:"path" bson:"path"`
	Discovered    []knapsack.Item       `json:"discovered" bson:"discovered"`
	Knapsack      knapsack.Result       `json:"knapsack" bson:"knapsack"`
	Calls         *knapsack.CallCounter `json:"calls,omitempty" bson:"calls,omitempty"`
	CellsExplored int                   `json:"cells_explored" bson:"cellsExplored"`
	Reward        int                   `json:"reward" bson:"reward"`
	Summary       game.Summary          `json:"summary" bson:"summary"`
	CreatedAt     time.Time             `json:"created_at" bson:"createdAt"`
}

// AppraisalRequest asks for the best knapsack over every treasure of a maze.
type AppraisalRequest struct {
	Maze      MazeSpec           `json:"maze"`
	Capacity  int                `json:"capacity"`
	Algorithm knapsack.Algorithm `json:"algorithm"`
}

// WithDefaults fills the treasure model and algorithm when they are left empty.
func (r AppraisalRequest) WithDefaults() AppraisalRequest {
	r.Maze = r.Maze.withDefaults()
	if r.Algorithm == "" {
		r.Algorithm = knapsack.Dynamic
	}
	return r
}

// Validate checks the request against DefaultLimits.
func (r AppraisalRequest) Validate() error {
	return r.ValidateWithin(DefaultLimits)
}

// ValidateWithin checks the request before any work is done.
func (r AppraisalRequest) ValidateWithin(l Limits) error {
	if err := r.Maze.validate(); err != nil {
		return err
	}
	if err := l.checkCapacity(r.Maze.Treasures.Count, r.Capacity); err != nil {
		return err
	}
	if _, err := knapsack.ParseAlgorithm(string(r.Algorithm)); err != nil {
		return err
	}
	return nil
}

// Appraisal is the best knapsack over a whole treasure registry.
type Appraisal struct {
	Request  AppraisalRequest  `json:"request"`
	Items    []knapsack.Item   `json:"items"`
	Solution knapsack.Solution `json:"solution"`
	Summary  game.Summary      `json:"summary"`
}

// Standing is one leaderboard row.
type Standing struct {
	ExplorerID string `json:"explorer_id"`
	Reward     int    `json:"reward"`
}
