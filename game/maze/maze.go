/*
Package maze provides tools for creating rectangular treasure mazes.

It defines the `WillsonMaze` structure, composed of `Cell` objects that carry wall
configurations, plus a registry of treasures keyed by position.

Mazes are generated with Wilson's algorithm from a seeded random source, so the
same seed always yields the same layout. Open grids without internal walls can be
built for synthetic scenarios, and walls can be toggled between adjacent cells.

WillsonMaze implements game.Grid and provides an ASCII visualization of the maze.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/beka-birhanu/vinom-treasure/game"
)

// MaxDimension bounds both sides of a generated maze.
const MaxDimension = 50

// Direction names one of the four sides of a cell.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// directions lists the offsets in the fixed order neighbours are reported.
var directions = []struct {
	dir   Direction
	delta game.Cell
}{
	{North, game.Cell{Row: -1, Col: 0}},
	{South, game.Cell{Row: 1, Col: 0}},
	{East, game.Cell{Row: 0, Col: 1}},
	{West, game.Cell{Row: 0, Col: -1}},
}

var (
	ErrInvalidDimension = errors.New("maze: invalid maze dimensions")
	ErrOutOfBound       = errors.New("maze: cell is out of the maze")
	ErrNotAdjacent      = errors.New("maze: cells are not adjacent")
)

var _ game.Grid = &WillsonMaze{}

// move represents a step from one cell to a neighbour in a given direction.
type move struct {
	from game.Cell
	to   game.Cell
	dir  Direction
}

// WillsonMaze represents a rectangular maze consisting of cells with walls and treasures.
type WillsonMaze struct {
	rows      int                         // Number of rows
	cols      int                         // Number of columns
	grid      [][]*Cell                   // 2D grid of cells forming the maze
	treasures map[game.Cell]game.Treasure // Treasure registry
	rng       *rand.Rand                  // Random source used for generation and treasure placement
}

// Option configures maze construction.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithSeed makes generation reproducible from the given seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// New initializes a new maze of the given dimensions and generates its layout.
func New(rows, cols int, opts ...Option) (*WillsonMaze, error) {
	m, err := blank(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	m.generateMaze()
	return m, nil
}

// NewOpen initializes a maze with no internal walls. Only the outer boundary is walled.
func NewOpen(rows, cols int, opts ...Option) (*WillsonMaze, error) {
	m, err := blank(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for _, nbr := range m.neighbors(game.Cell{Row: r, Col: c}) {
				m.openWall(nbr)
			}
		}
	}
	return m, nil
}

func blank(rows, cols int, opts ...Option) (*WillsonMaze, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	grid := make([][]*Cell, rows)
	for i := range grid {
		grid[i] = make([]*Cell, cols)
		for j := range grid[i] {
			grid[i][j] = closed()
		}
	}

	return &WillsonMaze{
		rows:      rows,
		cols:      cols,
		grid:      grid,
		treasures: make(map[game.Cell]game.Treasure),
		rng:       o.rng,
	}, nil
}

// RowNum returns the number of rows.
func (m *WillsonMaze) RowNum() int {
	return m.rows
}

// ColNum returns the number of columns.
func (m *WillsonMaze) ColNum() int {
	return m.cols
}

// InBound reports whether c lies inside the maze.
func (m *WillsonMaze) InBound(c game.Cell) bool {
	return c.Row >= 0 && c.Row < m.rows && c.Col >= 0 && c.Col < m.cols
}

// Neighbours returns the in-bound cells next to c in North, South, East, West order.
func (m *WillsonMaze) Neighbours(c game.Cell) []game.Cell {
	moves := m.neighbors(c)
	result := make([]game.Cell, 0, len(moves))
	for _, mv := range moves {
		result = append(result, mv.to)
	}
	return result
}

// HasWall reports whether a wall separates a and b.
func (m *WillsonMaze) HasWall(a, b game.Cell) bool {
	if !m.InBound(a) || !m.InBound(b) {
		return true
	}
	dir, ok := direction(a, b)
	if !ok {
		return true
	}
	return m.grid[a.Row][a.Col].wall(dir)
}

// SetWall raises or removes the wall between two adjacent cells.
func (m *WillsonMaze) SetWall(a, b game.Cell, present bool) error {
	if !m.InBound(a) || !m.InBound(b) {
		return ErrOutOfBound
	}
	dir, ok := direction(a, b)
	if !ok {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}
	m.grid[a.Row][a.Col].setWall(dir, present)
	m.grid[b.Row][b.Col].setWall(opposite(dir), present)
	return nil
}

// direction finds the side of a that faces b.
func direction(a, b game.Cell) (Direction, bool) {
	for _, d := range directions {
		if a.Row+d.delta.Row == b.Row && a.Col+d.delta.Col == b.Col {
			return d.dir, true
		}
	}
	return "", false
}

func opposite(dir Direction) Direction {
	switch dir {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// randomCellPosition generates a random position within the maze.
func (m *WillsonMaze) randomCellPosition() game.Cell {
	return game.Cell{Row: m.rng.Intn(m.rows), Col: m.rng.Intn(m.cols)}
}

// randomUnvisitedCellPosition selects a random position that has not been visited.
func (m *WillsonMaze) randomUnvisitedCellPosition(visited map[game.Cell]struct{}) game.Cell {
	for {
		pos := m.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors finds all in-bound moves from a given cell position.
func (m *WillsonMaze) neighbors(pos game.Cell) []move {
	var result []move
	for _, d := range directions {
		neighbor := game.Cell{Row: pos.Row + d.delta.Row, Col: pos.Col + d.delta.Col}
		if m.InBound(neighbor) {
			result = append(result, move{from: pos, to: neighbor, dir: d.dir})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells in the specified direction.
func (m *WillsonMaze) openWall(mv move) {
	m.grid[mv.from.Row][mv.from.Col].setWall(mv.dir, false)
	m.grid[mv.to.Row][mv.to.Col].setWall(opposite(mv.dir), false)
}

// randomWalk performs a random walk from an unvisited cell until it hits the maze.
// Only the last exit of every cell is kept, which erases the loops of the walk.
func (m *WillsonMaze) randomWalk(visited map[game.Cell]struct{}) (game.Cell, map[game.Cell]move) {
	start := m.randomUnvisitedCellPosition(visited)
	exits := make(map[game.Cell]move)
	cell := start

	for {
		neighbors := m.neighbors(cell)
		next := neighbors[m.rng.Intn(len(neighbors))]
		exits[cell] = next
		if _, included := visited[next.to]; included {
			break
		}
		cell = next.to
	}

	return start, exits
}

// generateMaze carves a perfect maze using Wilson's algorithm.
func (m *WillsonMaze) generateMaze() {
	visited := make(map[game.Cell]struct{})
	visited[m.randomCellPosition()] = struct{}{}

	for len(visited) < m.rows*m.cols {
		cell, exits := m.randomWalk(visited)
		for {
			if _, included := visited[cell]; included {
				break
			}
			mv := exits[cell]
			m.openWall(mv)
			visited[cell] = struct{}{}
			cell = mv.to
		}
	}
}

// String provides a textual representation of the maze.
// Row 0 is printed first; treasure cells are marked with '$'.
func (m *WillsonMaze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.cols) + "\n")

	for row := 0; row < m.rows; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.cols; col++ {
			cell := m.grid[row][col]

			if _, ok := m.treasures[game.Cell{Row: row, Col: col}]; ok {
				cellRow += " $ "
			} else {
				cellRow += "   "
			}

			// Add east wall or space
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.cols; col++ {
			if m.grid[row][col].SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
