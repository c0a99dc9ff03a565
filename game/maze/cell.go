package maze

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
}

// closed returns a cell with all four walls up.
func closed() *Cell {
	return &Cell{
		NorthWall: true,
		SouthWall: true,
		EastWall:  true,
		WestWall:  true,
	}
}

// wall returns the flag of the wall facing dir.
func (c *Cell) wall(dir Direction) bool {
	switch dir {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	}
	return true
}

// setWall sets the flag of the wall facing dir.
func (c *Cell) setWall(dir Direction, present bool) {
	switch dir {
	case North:
		c.NorthWall = present
	case South:
		c.SouthWall = present
	case East:
		c.EastWall = present
	case West:
		c.WestWall = present
	}
}
