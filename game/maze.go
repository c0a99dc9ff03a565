package game

import "fmt"

// Cell identifies a grid position. Cells are compared and hashed by value.
type Cell struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

// String renders the cell as "(row, col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Treasure is the weight and value of an item lying on a cell.
type Treasure struct {
	Weight int `json:"weight" bson:"weight"`
	Value  int `json:"value" bson:"value"`
}

// Summary aggregates a grid's whole treasure registry.
type Summary struct {
	ItemCount   int `json:"item_count" bson:"itemCount"`
	TotalWeight int `json:"total_weight" bson:"totalWeight"`
	TotalValue  int `json:"total_value" bson:"totalValue"`
}

// Grid defines the read-only view of a maze that path finding and treasure
// discovery work against.
type Grid interface {
	// Neighbours returns the in-bound cells orthogonally adjacent to c, walls
	// ignored. The order is fixed for a given grid.
	Neighbours(c Cell) []Cell

	// HasWall reports whether a wall separates a and b. Cells that are not
	// adjacent are always separated.
	HasWall(a, b Cell) bool

	RowNum() int
	ColNum() int

	// Treasure looks up the treasure lying on c, if any.
	Treasure(c Cell) (Treasure, bool)

	// Treasures returns a copy of the treasure registry.
	Treasures() map[Cell]Treasure

	Summary() Summary
}

// Adjacent reports whether a and b share an edge.
func Adjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr+dc*dc == 1
}
