package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes a workbook with the table on a sheet named after its kind
// and the column statistics on a "summary" sheet.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := t.Kind.String()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	for i, c := range t.Columns {
		if err := f.SetCellValue(sheet, cellName(i, 1), c); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for i, cell := range row {
			var v any
			switch c := cell.(type) {
			case time.Time:
				v = c.Format(time.RFC3339)
			case *float64:
				if c == nil {
					continue
				}
				v = *c
			default:
				v = c
			}
			if err := f.SetCellValue(sheet, cellName(i, r+2), v); err != nil {
				return err
			}
		}
	}

	const summary = "summary"
	if _, err := f.NewSheet(summary); err != nil {
		return err
	}
	headers := []string{"column", "count", "min", "max", "mean", "stddev"}
	for i, h := range headers {
		_ = f.SetCellValue(summary, cellName(i, 1), h)
	}
	for r, s := range Summarize(t) {
		vals := []any{s.Column, s.Count, s.Min, s.Max, s.Mean, s.StdDev}
		for i, v := range vals {
			_ = f.SetCellValue(summary, cellName(i, r+2), v)
		}
	}
	_, err := f.WriteTo(w)
	return err
}

func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return fmt.Sprintf("A%d", row)
	}
	return name
}
