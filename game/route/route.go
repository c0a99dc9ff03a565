package route

import "github.com/beka-birhanu/vinom-treasure/game"

// Waypoints returns the fixed tour the route planner visits:
// entrance, then out and back between each corner and the center, then exit.
//
// The corners are named from row 0 upward: southwest (0, 0), southeast
// (0, cols-1), northeast (rows-1, cols-1) and northwest (rows-1, 0). The center
// is (rows/2, cols/2).
func Waypoints(g game.Grid, entrance, exit game.Cell) []game.Cell {
	rows, cols := g.RowNum(), g.ColNum()

	centre := game.Cell{Row: rows / 2, Col: cols / 2}
	southWest := game.Cell{Row: 0, Col: 0}
	southEast := game.Cell{Row: 0, Col: cols - 1}
	northEast := game.Cell{Row: rows - 1, Col: cols - 1}
	northWest := game.Cell{Row: rows - 1, Col: 0}

	return []game.Cell{
		entrance,
		southWest, centre, southWest,
		southEast, centre, southEast,
		northEast, centre, northEast,
		northWest, centre, northWest,
		southWest,
		exit,
	}
}

// Build concatenates the shortest paths between consecutive waypoints into one
// traversal path. Every segment after the first drops its leading cell, which is
// the waypoint the previous segment ended on.
//
// A segment between unreachable waypoints contributes nothing; the resulting
// path then fails Verify.
func Build(g game.Grid, entrance, exit game.Cell) []game.Cell {
	stops := Waypoints(g, entrance, exit)

	var path []game.Cell
	for i := 0; i+1 < len(stops); i++ {
		segment := FindPath(g, stops[i], stops[i+1])
		if i > 0 && len(segment) > 0 {
			segment = segment[1:]
		}
		path = append(path, segment...)
	}
	return path
}

// Distinct returns the cells of path with duplicates removed, in first-visit order.
func Distinct(path []game.Cell) []game.Cell {
	seen := make(map[game.Cell]struct{}, len(path))
	out := make([]game.Cell, 0, len(path))
	for _, c := range path {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
