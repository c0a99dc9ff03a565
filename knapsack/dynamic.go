package knapsack

// SolveDynamic computes the optimum over the first n items with a memoized
// top-down recursion:
//
//	table[0][c] = table[i][0] = 0
//	table[i][c] = table[i-1][c]                                   if w(i) > c
//	table[i][c] = max(table[i-1][c], table[i-1][c-w(i)] + v(i))   otherwise
//
// The chosen items are recovered by walking back from (n, capacity): item i was
// taken exactly when table[i][c] differs from table[i-1][c]. Cells the
// recursion never needed stay uncomputed in the returned table.
func SolveDynamic(items []Item, capacity, n int) (Result, *Table) {
	table := newTable(items[:n], capacity)

	var fill func(i, c int) int
	fill = func(i, c int) int {
		if e := table.cells[i][c]; e.Computed {
			return e.Value
		}

		var out int
		switch it := items[i-1]; {
		case it.Weight > c:
			out = fill(i-1, c)
		default:
			out = max(fill(i-1, c), fill(i-1, c-it.Weight)+it.Value)
		}

		table.cells[i][c] = Entry{Value: out, Computed: true}
		return out
	}

	res := Result{Value: fill(n, capacity)}

	for i, c := n, capacity; i > 0 && c > 0; i-- {
		if table.cells[i][c].Value != table.cells[i-1][c].Value {
			it := items[i-1]
			res.Selected = append(res.Selected, it.Location)
			res.Weight += it.Weight
			c -= it.Weight
		}
	}

	return res, table
}
