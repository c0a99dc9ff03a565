package route

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-treasure/game"
)

// ErrIllegalPath is matched by every *IllegalPathError.
var ErrIllegalPath = errors.New("illegal path")

// Reason classifies why a path was rejected.
type Reason int

const (
	EmptyPath Reason = iota + 1
	WrongStart
	WrongEnd
	NotAdjacent
	WallCrossed
)

func (r Reason) String() string {
	switch r {
	case EmptyPath:
		return "empty path"
	case WrongStart:
		return "wrong start"
	case WrongEnd:
		return "wrong end"
	case NotAdjacent:
		return "not adjacent"
	case WallCrossed:
		return "wall crossed"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// IllegalPathError reports the first rule a path breaks. For endpoint failures
// From holds the expected endpoint; for step failures From and To are the
// offending consecutive pair.
type IllegalPathError struct {
	Reason Reason
	From   game.Cell
	To     game.Cell
}

func (e *IllegalPathError) Error() string {
	switch e.Reason {
	case EmptyPath:
		return "illegal path: path is empty"
	case WrongStart:
		return fmt.Sprintf("illegal path: path does not start at entrance %s", e.From)
	case WrongEnd:
		return fmt.Sprintf("illegal path: path does not end at exit %s", e.From)
	case NotAdjacent:
		return fmt.Sprintf("illegal path: %s and %s are not adjacent", e.From, e.To)
	case WallCrossed:
		return fmt.Sprintf("illegal path: wall between %s and %s", e.From, e.To)
	}
	return "illegal path"
}

// Is lets errors.Is match ErrIllegalPath.
func (e *IllegalPathError) Is(target error) bool {
	return target == ErrIllegalPath
}

// Verify checks that path runs from entrance to exit through adjacent cells
// without crossing a wall.
func Verify(g game.Grid, path []game.Cell, entrance, exit game.Cell) error {
	if len(path) == 0 {
		return &IllegalPathError{Reason: EmptyPath}
	}
	if path[0] != entrance {
		return &IllegalPathError{Reason: WrongStart, From: entrance}
	}
	if path[len(path)-1] != exit {
		return &IllegalPathError{Reason: WrongEnd, From: exit}
	}

	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if !isNeighbour(g, prev, cur) {
			return &IllegalPathError{Reason: NotAdjacent, From: prev, To: cur}
		}
		if g.HasWall(prev, cur) {
			return &IllegalPathError{Reason: WallCrossed, From: prev, To: cur}
		}
	}
	return nil
}

func isNeighbour(g game.Grid, a, b game.Cell) bool {
	for _, n := range g.Neighbours(a) {
		if n == b {
			return true
		}
	}
	return false
}
