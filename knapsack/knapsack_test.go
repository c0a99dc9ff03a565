package knapsack

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-treasure/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cellA = game.Cell{Row: 0, Col: 0}
	cellB = game.Cell{Row: 0, Col: 1}
	cellC = game.Cell{Row: 0, Col: 2}
)

func scenarioItems() []Item {
	return []Item{
		{Location: cellA, Weight: 5, Value: 10},
		{Location: cellB, Weight: 4, Value: 40},
		{Location: cellC, Weight: 6, Value: 30},
	}
}

// bruteForce enumerates every subset and returns the best value.
func bruteForce(items []Item, capacity int) int {
	best := 0
	for mask := 0; mask < 1<<len(items); mask++ {
		w, v := 0, 0
		for i, it := range items {
			if mask&(1<<i) != 0 {
				w += it.Weight
				v += it.Value
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}
	return best
}

func randomItems(rng *rand.Rand, n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Location: game.Cell{Row: i / 4, Col: i % 4},
			Weight:   1 + rng.Intn(9),
			Value:    rng.Intn(50),
		}
	}
	return items
}

func checkResult(t *testing.T, items []Item, capacity int, res Result) {
	t.Helper()
	byCell := make(map[game.Cell]Item, len(items))
	for _, it := range items {
		byCell[it.Location] = it
	}

	w, v := 0, 0
	for _, c := range res.Selected {
		it, ok := byCell[c]
		require.True(t, ok, "selected unknown cell %s", c)
		w += it.Weight
		v += it.Value
	}
	assert.LessOrEqual(t, res.Weight, capacity)
	assert.Equal(t, w, res.Weight)
	assert.Equal(t, v, res.Value)
}

func TestScenarioOptimalSelection(t *testing.T) {
	items := scenarioItems()

	t.Run("recursive", func(t *testing.T) {
		res := SolveRecursive(items, 10, len(items), nil)
		assert.Equal(t, 70, res.Value)
		assert.Equal(t, 10, res.Weight)
		assert.ElementsMatch(t, []game.Cell{cellB, cellC}, res.Selected)
	})

	t.Run("dynamic", func(t *testing.T) {
		res, _ := SolveDynamic(items, 10, len(items))
		assert.Equal(t, 70, res.Value)
		assert.Equal(t, 10, res.Weight)
		assert.ElementsMatch(t, []game.Cell{cellB, cellC}, res.Selected)
	})
}

func TestZeroCapacity(t *testing.T) {
	items := scenarioItems()

	rec := SolveRecursive(items, 0, len(items), nil)
	assert.Empty(t, rec.Selected)
	assert.Zero(t, rec.Weight)
	assert.Zero(t, rec.Value)

	dyn, table := SolveDynamic(items, 0, len(items))
	assert.Empty(t, dyn.Selected)
	assert.Zero(t, dyn.Weight)
	assert.Zero(t, dyn.Value)
	assert.Equal(t, 1, table.Cols())
}

func TestNoItems(t *testing.T) {
	rec := SolveRecursive(nil, 10, 0, nil)
	assert.Zero(t, rec.Value)

	dyn, table := SolveDynamic(nil, 10, 0)
	assert.Zero(t, dyn.Value)
	assert.Equal(t, 1, table.Rows())
	assert.Equal(t, 11, table.Cols())
}

func TestSolversAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 200; round++ {
		items := randomItems(rng, rng.Intn(12))
		capacity := rng.Intn(30)

		rec := SolveRecursive(items, capacity, len(items), nil)
		dyn, _ := SolveDynamic(items, capacity, len(items))

		want := bruteForce(items, capacity)
		require.Equal(t, want, rec.Value, "round %d recursive", round)
		require.Equal(t, want, dyn.Value, "round %d dynamic", round)
		checkResult(t, items, capacity, rec)
		checkResult(t, items, capacity, dyn)
	}
}

func TestRecursiveTiesPreferExclusion(t *testing.T) {
	items := []Item{
		{Location: cellA, Weight: 3, Value: 7},
		{Location: cellB, Weight: 3, Value: 7},
	}
	res := SolveRecursive(items, 3, len(items), nil)
	assert.Equal(t, []game.Cell{cellA}, res.Selected)
}

func TestDynamicSubsetOfItems(t *testing.T) {
	items := scenarioItems()
	res, table := SolveDynamic(items, 10, 2)
	assert.Equal(t, 50, res.Value)
	assert.ElementsMatch(t, []game.Cell{cellA, cellB}, res.Selected)
	assert.Equal(t, 3, table.Rows())
}

func TestCallCounter(t *testing.T) {
	items := scenarioItems()

	calls := &CallCounter{}
	res := SolveRecursive(items, 10, len(items), calls)
	assert.Equal(t, 70, res.Value)
	assert.Equal(t, 12, calls.Calls)
	assert.Equal(t, 3, calls.CallsAtFirstBase)

	t.Run("scoped to one solve", func(t *testing.T) {
		again := &CallCounter{}
		SolveRecursive(items, 10, len(items), again)
		assert.Equal(t, *calls, *again)
	})

	t.Run("nil counter", func(t *testing.T) {
		assert.Equal(t, res, SolveRecursive(items, 10, len(items), nil))
	})
}

func TestTableZeroBorders(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	items := randomItems(rng, 6)
	_, table := SolveDynamic(items, 15, len(items))

	for c := 0; c < table.Cols(); c++ {
		v, ok := table.Value(0, c)
		assert.True(t, ok)
		assert.Zero(t, v)
	}
	for i := 0; i < table.Rows(); i++ {
		v, ok := table.Value(i, 0)
		assert.True(t, ok)
		assert.Zero(t, v)
	}
}

func TestTableCSV(t *testing.T) {
	_, table := SolveDynamic(scenarioItems(), 10, 3)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	want := ",0,1,2,3,4,5,6,7,8,9,10\n" +
		",0,0,0,0,0,0,0,0,0,0,0\n" +
		"\"(5, 10)\",0,#,#,#,0,#,10,#,#,#,10\n" +
		"\"(4, 40)\",0,#,#,#,40,#,#,#,#,#,50\n" +
		"\"(6, 30)\",0,#,#,#,#,#,#,#,#,#,70\n"
	assert.Equal(t, want, buf.String())
}

func TestSolve(t *testing.T) {
	items := scenarioItems()

	t.Run("dynamic carries table", func(t *testing.T) {
		sol, err := Solve(items, 10, Dynamic)
		require.NoError(t, err)
		assert.Equal(t, 70, sol.Value)
		assert.NotNil(t, sol.Table)
		assert.Nil(t, sol.Calls)
	})

	t.Run("recursive carries counter", func(t *testing.T) {
		sol, err := Solve(items, 10, Recursive)
		require.NoError(t, err)
		assert.Equal(t, 70, sol.Value)
		assert.Nil(t, sol.Table)
		require.NotNil(t, sol.Calls)
		assert.Equal(t, 12, sol.Calls.Calls)
	})

	t.Run("unknown solver", func(t *testing.T) {
		_, err := Solve(items, 10, Algorithm("greedy"))
		assert.True(t, errors.Is(err, ErrInvalidSolver))
	})

	t.Run("negative capacity", func(t *testing.T) {
		_, err := Solve(items, -1, Dynamic)
		assert.True(t, errors.Is(err, ErrNegativeInput))
	})

	t.Run("negative weight", func(t *testing.T) {
		bad := []Item{{Location: cellA, Weight: -2, Value: 1}}
		_, err := Solve(bad, 4, Recursive)
		assert.True(t, errors.Is(err, ErrNegativeInput))
	})
}

func TestParseAlgorithm(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Algorithm
		err  bool
	}{
		{in: "recur", want: Recursive},
		{in: "dynamic", want: Dynamic},
		{in: "Dynamic", err: true},
		{in: "", err: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tc.in)
			if tc.err {
				assert.ErrorIs(t, err, ErrInvalidSolver)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSortItems(t *testing.T) {
	items := []Item{
		{Location: game.Cell{Row: 2, Col: 0}},
		{Location: game.Cell{Row: 0, Col: 3}},
		{Location: game.Cell{Row: 0, Col: 1}},
	}
	SortItems(items)
	assert.Equal(t, []game.Cell{{Row: 0, Col: 1}, {Row: 0, Col: 3}, {Row: 2, Col: 0}},
		[]game.Cell{items[0].Location, items[1].Location, items[2].Location})
}
