package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/beka-birhanu/vinom-treasure/game"
)

// Upper bounds on generated treasures. They keep every draw range and the
// registry totals of a MaxDimension x MaxDimension maze within int.
const (
	MaxTreasureWeight = 1 << 20
	MaxTreasureValue  = 1 << 20
)

var (
	ErrInvalidTreasureModel = errors.New("maze: invalid treasure model")
	ErrInvalidTreasure      = errors.New("maze: treasure weight and value must be non-negative")
)

// TreasureModel defines how treasures are scattered over a maze.
// Weights and values are drawn uniformly from their ranges. CommonProb is the
// base probability that a treasure keeps its drawn value; otherwise it becomes
// a jackpot worth MaxValue. Jackpots grow likelier toward the maze center.
type TreasureModel struct {
	Count      int     `json:"count" bson:"count"`            // Number of treasure cells
	MinWeight  int     `json:"min_weight" bson:"minWeight"`   // Lightest treasure
	MaxWeight  int     `json:"max_weight" bson:"maxWeight"`   // Heaviest treasure
	MinValue   int     `json:"min_value" bson:"minValue"`     // Cheapest treasure
	MaxValue   int     `json:"max_value" bson:"maxValue"`     // Most valuable treasure, also the jackpot
	CommonProb float32 `json:"common_prob" bson:"commonProb"` // Base probability of a non-jackpot (0.0 to 1.0)
}

// Validate checks the model against a maze of rows x cols cells.
// Generated treasures weigh at least 1: the solvers stop at capacity 0, so a
// weightless treasure would be left behind.
func (t TreasureModel) Validate(rows, cols int) error {
	switch {
	case t.Count < 0 || t.Count > rows*cols:
		return fmt.Errorf("%w: count %d does not fit %dx%d", ErrInvalidTreasureModel, t.Count, rows, cols)
	case t.MinWeight < 1 || t.MinWeight > t.MaxWeight || t.MaxWeight > MaxTreasureWeight:
		return fmt.Errorf("%w: weight range [%d, %d] must lie within [1, %d]",
			ErrInvalidTreasureModel, t.MinWeight, t.MaxWeight, MaxTreasureWeight)
	case t.MinValue < 0 || t.MinValue > t.MaxValue || t.MaxValue > MaxTreasureValue:
		return fmt.Errorf("%w: value range [%d, %d] must lie within [0, %d]",
			ErrInvalidTreasureModel, t.MinValue, t.MaxValue, MaxTreasureValue)
	case t.CommonProb < 0 || t.CommonProb > 1:
		return fmt.Errorf("%w: common probability %v", ErrInvalidTreasureModel, t.CommonProb)
	}
	return nil
}

// PlaceTreasure puts a treasure on c, replacing any treasure already there.
func (m *WillsonMaze) PlaceTreasure(c game.Cell, t game.Treasure) error {
	if !m.InBound(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBound, c)
	}
	if t.Weight < 0 || t.Value < 0 {
		return ErrInvalidTreasure
	}
	m.treasures[c] = t
	return nil
}

// PopulateTreasures scatters treasures over distinct random cells according to the model.
func (m *WillsonMaze) PopulateTreasures(t TreasureModel) error {
	if err := t.Validate(m.rows, m.cols); err != nil {
		return err
	}

	for _, idx := range m.rng.Perm(m.rows * m.cols)[:t.Count] {
		cell := game.Cell{Row: idx / m.cols, Col: idx % m.cols}

		treasure := game.Treasure{
			Weight: t.MinWeight + m.rng.Intn(t.MaxWeight-t.MinWeight+1),
			Value:  t.MinValue + m.rng.Intn(t.MaxValue-t.MinValue+1),
		}
		if m.rng.Float32() > calcProb(t.CommonProb, cell, m.cols, m.rows) {
			treasure.Value = t.MaxValue
		}
		m.treasures[cell] = treasure
	}

	return nil
}

// Treasure looks up the treasure on c.
func (m *WillsonMaze) Treasure(c game.Cell) (game.Treasure, bool) {
	t, ok := m.treasures[c]
	return t, ok
}

// Treasures returns a copy of the treasure registry.
func (m *WillsonMaze) Treasures() map[game.Cell]game.Treasure {
	out := make(map[game.Cell]game.Treasure, len(m.treasures))
	for c, t := range m.treasures {
		out[c] = t
	}
	return out
}

// Summary totals the treasure registry.
func (m *WillsonMaze) Summary() game.Summary {
	s := game.Summary{ItemCount: len(m.treasures)}
	for _, t := range m.treasures {
		s.TotalWeight += t.Weight
		s.TotalValue += t.Value
	}
	return s
}

// calcProb calculates the adjusted probability of keeping a common value
// based on the cell's distance from the center of the maze.
// The closer the cell is to the center, the lower the probability,
// making jackpots likelier there.
func calcProb(p float32, cell game.Cell, mazeWidth, mazeHeight int) float32 {
	midRow, midCol := mazeHeight/2, mazeWidth/2

	maxDist := float64(midRow + midCol)
	if maxDist == 0 {
		return p
	}

	// Manhattan distance to the center, normalized and inverted
	distToMid := math.Abs(float64(cell.Row-midRow)) + math.Abs(float64(cell.Col-midCol))
	proximity := 1.0 - distToMid/maxDist
	if proximity < 0 {
		proximity = 0
	}

	return p - p*float32(proximity)/10
}
