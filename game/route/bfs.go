// Package route plans traversal paths through a game.Grid and checks that
// a path only takes legal steps.
//
// FindPath is a breadth-first search that returns a minimal-length path between
// two cells. Build chains such searches through a fixed waypoint tour covering the
// four corners and the center of the grid. Verify is the consistency gate applied
// to any path before it is trusted.
package route

import "github.com/beka-birhanu/vinom-treasure/game"

// FindPath returns a shortest wall-respecting path from start to goal, both
// ends included. It returns [start] when start equals goal and nil when goal
// cannot be reached, which only happens on an inconsistent grid.
func FindPath(g game.Grid, start, goal game.Cell) []game.Cell {
	if start == goal {
		return []game.Cell{start}
	}

	// A cell is enqueued at most once: presence in parent marks it seen.
	parent := map[game.Cell]game.Cell{start: start}
	queue := []game.Cell{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == goal {
			return reconstruct(parent, start, goal)
		}

		for _, nbr := range g.Neighbours(cur) {
			if _, seen := parent[nbr]; seen {
				continue
			}
			if g.HasWall(cur, nbr) {
				continue
			}
			parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}

	return nil
}

// reconstruct walks parent links back from goal to start and reverses them.
func reconstruct(parent map[game.Cell]game.Cell, start, goal game.Cell) []game.Cell {
	path := []game.Cell{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
