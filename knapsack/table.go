package knapsack

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// unsetMark renders an uncomputed cell in exports.
const unsetMark = "#"

// Entry is one DP table cell: either a computed optimum or not yet computed.
type Entry struct {
	Value    int
	Computed bool
}

// Table is the DP table of a dynamic solve, (items+1) rows by (capacity+1) columns.
// Row i holds optima over the first i items; column c is the capacity.
type Table struct {
	items []Item
	cells [][]Entry
}

func newTable(items []Item, capacity int) *Table {
	cells := make([][]Entry, len(items)+1)
	for i := range cells {
		cells[i] = make([]Entry, capacity+1)
		cells[i][0] = Entry{Computed: true}
	}
	for c := range cells[0] {
		cells[0][c] = Entry{Computed: true}
	}
	return &Table{items: items, cells: cells}
}

// Rows returns the number of rows, one more than the item count.
func (t *Table) Rows() int {
	return len(t.cells)
}

// Cols returns the number of columns, one more than the capacity.
func (t *Table) Cols() int {
	return len(t.cells[0])
}

// Value returns the optimum at (i, c) and whether it was computed.
func (t *Table) Value(i, c int) (int, bool) {
	e := t.cells[i][c]
	return e.Value, e.Computed
}

// Records renders the table as rows of strings: a capacity header, the
// no-item row, then one row per item labelled "(weight, value)".
// Uncomputed cells are rendered as "#".
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.cells)+1)

	header := make([]string, 0, t.Cols()+1)
	header = append(header, "")
	for c := 0; c < t.Cols(); c++ {
		header = append(header, strconv.Itoa(c))
	}
	records = append(records, header)

	for i, row := range t.cells {
		label := ""
		if i > 0 {
			label = fmt.Sprintf("(%d, %d)", t.items[i-1].Weight, t.items[i-1].Value)
		}

		record := make([]string, 0, len(row)+1)
		record = append(record, label)
		for _, e := range row {
			if e.Computed {
				record = append(record, strconv.Itoa(e.Value))
			} else {
				record = append(record, unsetMark)
			}
		}
		records = append(records, record)
	}

	return records
}

// WriteCSV writes Records to w as CSV.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("write dp table: %w", err)
	}
	return nil
}
