package export

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChartHTML renders one line per numeric column, oldest timestamp
// first. Absent values leave a gap in their line.
func WriteChartHTML(w io.Writer, t Table, title string) error {
	ti := t.column(TimeColumn)
	if ti < 0 {
		return fmt.Errorf("table %s has no %s column", t.Kind, TimeColumn)
	}
	rows := make([][]any, len(t.Rows))
	copy(rows, t.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		a, _ := rows[i][ti].(time.Time)
		b, _ := rows[j][ti].(time.Time)
		return a.Before(b)
	})

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date & Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: t.Kind.String()}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	xAxis := make([]string, len(rows))
	for i, r := range rows {
		ts, _ := r[ti].(time.Time)
		xAxis[i] = ts.Format("2006-01-02 15:04")
	}
	line.SetXAxis(xAxis)

	for c, name := range t.Columns {
		if c == ti || !t.numeric(c) {
			continue
		}
		data := make([]opts.LineData, len(rows))
		seen := false
		for i, r := range rows {
			if v, ok := number(r[c]); ok {
				data[i] = opts.LineData{Value: v}
				seen = true
			} else {
				data[i] = opts.LineData{Value: nil}
			}
		}
		if seen {
			line.AddSeries(name, data)
		}
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %v", err)
	}
	return nil
}
