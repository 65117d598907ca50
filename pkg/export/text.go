package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"
)

// formatCell renders a cell for text output; absent values are "".
func formatCell(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *float64:
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	default:
		return ""
	}
}

// WriteCSV writes the table to w with a header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	rec := make([]string, len(t.Columns))
	for _, r := range t.Rows {
		for i, cell := range r {
			rec[i] = formatCell(cell)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the table as an array of objects keyed by column name.
// Absent values are null.
func WriteJSON(w io.Writer, t Table) error {
	out := make([]map[string]any, len(t.Rows))
	for i, r := range t.Rows {
		obj := make(map[string]any, len(t.Columns))
		for j, cell := range r {
			obj[t.Columns[j]] = cell
		}
		out[i] = obj
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
