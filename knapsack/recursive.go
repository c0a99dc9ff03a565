package knapsack

import "github.com/beka-birhanu/vinom-treasure/game"

// CallCounter instruments a single SolveRecursive invocation.
type CallCounter struct {
	Calls            int `json:"calls" bson:"calls"`                           // total invocations
	CallsAtFirstBase int `json:"calls_at_first_base" bson:"callsAtFirstBase"` // Calls when a base case was first reached, 0 until then
}

func (c *CallCounter) enter() {
	if c != nil {
		c.Calls++
	}
}

func (c *CallCounter) base() {
	if c != nil && c.CallsAtFirstBase == 0 {
		c.CallsAtFirstBase = c.Calls
	}
}

// SolveRecursive considers the first n items and decides on the last of them:
// an item heavier than the remaining capacity is skipped, otherwise both
// including and excluding it are explored and inclusion is kept only if it is
// strictly better. counter may be nil.
func SolveRecursive(items []Item, capacity, n int, counter *CallCounter) Result {
	counter.enter()

	if capacity == 0 || n == 0 {
		counter.base()
		return Result{}
	}

	it := items[n-1]
	if it.Weight > capacity {
		return SolveRecursive(items, capacity, n-1, counter)
	}

	inc := SolveRecursive(items, capacity-it.Weight, n-1, counter)
	exc := SolveRecursive(items, capacity, n-1, counter)

	if inc.Value+it.Value > exc.Value {
		selected := make([]game.Cell, 0, len(inc.Selected)+1)
		selected = append(selected, inc.Selected...)
		return Result{
			Selected: append(selected, it.Location),
			Weight:   inc.Weight + it.Weight,
			Value:    inc.Value + it.Value,
		}
	}
	return exc
}
