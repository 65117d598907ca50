// Package export renders result tables as CSV, JSON, XLSX or an HTML chart.
package export

import (
	"time"

	"github.com/willfleury/electricitymap/core/model"
)

// Table is a result table flattened to cells. A cell is a string, a
// time.Time, a float64 or a *float64 where nil is an absent value.
type Table struct {
	Kind    model.Kind
	Columns []string
	Rows    [][]any
}

// TimeColumn is the name of the timestamp column of every table.
const TimeColumn = "timestamp"

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

func (t Table) column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ConsumptionTable flattens consumption rows.
func ConsumptionTable(rows []model.ConsumptionRow) Table {
	t := Table{Kind: model.KindConsumption, Columns: model.ConsumptionColumns}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.CountryCode, r.Time, r.Consumption})
	}
	return t
}

// ProductionTable flattens production rows.
func ProductionTable(rows []model.ProductionRow) Table {
	t := Table{Kind: model.KindProduction, Columns: model.ProductionColumns}
	for _, r := range rows {
		cells := []any{r.CountryCode, r.Time}
		for _, v := range r.Mix.Values() {
			cells = append(cells, v)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// ExchangeTable flattens exchange rows.
func ExchangeTable(rows []model.ExchangeRow) Table {
	t := Table{Kind: model.KindExchange, Columns: model.ExchangeColumns}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.CountryFrom, r.CountryTo, r.Time, r.NetFlow})
	}
	return t
}

// PriceTable flattens price rows.
func PriceTable(rows []model.PriceRow) Table {
	t := Table{Kind: model.KindPrice, Columns: model.PriceColumns}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Currency, r.Price, r.Time})
	}
	return t
}

// number reports the numeric value of a cell.
func number(cell any) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	default:
		return 0, false
	}
}

// numeric reports whether column i holds numbers.
func (t Table) numeric(i int) bool {
	for _, r := range t.Rows {
		switch r[i].(type) {
		case float64, *float64:
			return true
		case string, time.Time:
			return false
		}
	}
	return false
}
