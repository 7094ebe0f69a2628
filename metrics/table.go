package metrics

import "math"

// Level distinguishes class rows from the landscape row.
type Level int

const (
	// ClassLevel rows describe one class code.
	ClassLevel Level = iota
	// LandscapeLevel is the single whole-grid row.
	LandscapeLevel
)

// Row is one line of the result table. Class rows carry the class code;
// the landscape row's Class field is meaningless.
type Row struct {
	Level  Level
	Class  int
	values map[ID]float64
}

// Get returns the metric value, or NaN when the metric was not
// requested or does not apply at this row's level. NaN doubles as the
// "not applicable" sentinel inside computed values, so callers can
// filter on math.IsNaN uniformly.
func (r Row) Get(id ID) float64 {
	if v, ok := r.values[id]; ok {
		return v
	}
	return math.NaN()
}

// Has reports whether the metric was computed for this row.
func (r Row) Has(id ID) bool {
	_, ok := r.values[id]
	return ok
}

// Table is the structured output of Compute: class rows in ascending
// class-code order followed by one landscape row. Columns preserves the
// requested metric order.
type Table struct {
	Columns []ID
	Rows    []Row
}

// Class returns the row for a class code, if the class was present.
func (t *Table) Class(code int) (Row, bool) {
	for _, r := range t.Rows {
		if r.Level == ClassLevel && r.Class == code {
			return r, true
		}
	}
	return Row{}, false
}

// Landscape returns the whole-grid row.
func (t *Table) Landscape() Row {
	for _, r := range t.Rows {
		if r.Level == LandscapeLevel {
			return r
		}
	}
	return Row{}
}

// ClassRows returns only the class-level rows, in table order.
func (t *Table) ClassRows() []Row {
	var rows []Row
	for _, r := range t.Rows {
		if r.Level == ClassLevel {
			rows = append(rows, r)
		}
	}
	return rows
}
