package models

import "math"

// Neutral is the modifier that leaves combat effectiveness unchanged.
const Neutral = 100.0

// Table is the dense output table. Rows and columns share one name list,
// so the table is square by construction.
type Table struct {
	names []string
	pos   map[string]int
	cells [][]float64
}

// NewTable allocates a names x names table filled with Neutral.
// Duplicate names are collapsed onto their first occurrence.
func NewTable(names []string) *Table {
	t := &Table{pos: make(map[string]int, len(names))}
	for _, n := range names {
		if _, ok := t.pos[n]; ok {
			continue
		}
		t.pos[n] = len(t.names)
		t.names = append(t.names, n)
	}
	t.cells = make([][]float64, len(t.names))
	for i := range t.cells {
		row := make([]float64, len(t.names))
		for j := range row {
			row[j] = Neutral
		}
		t.cells[i] = row
	}
	return t
}

// Names returns the row (and column) names in output order.
func (t *Table) Names() []string {
	return t.names
}

// Index returns the row/column position of name.
func (t *Table) Index(name string) (int, bool) {
	i, ok := t.pos[name]
	return i, ok
}

// At returns cell (i, j).
func (t *Table) At(i, j int) float64 {
	return t.cells[i][j]
}

// SetAt stores cell (i, j).
func (t *Table) SetAt(i, j int, v float64) {
	t.cells[i][j] = v
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []float64 {
	return t.cells[i]
}

// Targets returns the column names of an existing row.
func (t *Table) Targets(name string) []string {
	if _, ok := t.pos[name]; !ok {
		return nil
	}
	return t.names
}

// Lookup returns the cell attacker -> defender.
func (t *Table) Lookup(attacker, defender string) (float64, bool) {
	i, ok := t.pos[attacker]
	if !ok {
		return 0, false
	}
	j, ok := t.pos[defender]
	if !ok {
		return 0, false
	}
	return t.cells[i][j], true
}

// Rounded returns cell (i, j) rounded half away from zero, as written to disk.
// Values outside the 32-bit range saturate at its bounds; NaN is 0.
func (t *Table) Rounded(i, j int) int {
	v := math.Round(t.cells[i][j])
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.names)
}
