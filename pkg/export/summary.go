package export

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats describes the present values of one numeric column.
type ColumnStats struct {
	Column string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize returns statistics for every numeric column with at least one
// present value, in column order.
func Summarize(t Table) []ColumnStats {
	var out []ColumnStats
	for c, name := range t.Columns {
		if !t.numeric(c) {
			continue
		}
		var xs []float64
		for _, r := range t.Rows {
			if v, ok := number(r[c]); ok {
				xs = append(xs, v)
			}
		}
		if len(xs) == 0 {
			continue
		}
		s := ColumnStats{
			Column: name,
			Count:  len(xs),
			Min:    floats.Min(xs),
			Max:    floats.Max(xs),
			Mean:   stat.Mean(xs, nil),
		}
		if len(xs) > 1 {
			s.StdDev = stat.StdDev(xs, nil)
		}
		out = append(out, s)
	}
	return out
}
