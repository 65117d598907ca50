package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/willfleury/electricitymap/core/model"
)

var t0 = time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)

func productionRows() []model.ProductionRow {
	return []model.ProductionRow{
		{CountryCode: "FR", Time: t0, Mix: model.Mix{Nuclear: model.Float(40000), Solar: model.Float(10)}},
		{CountryCode: "FR", Time: t0.Add(-time.Hour), Mix: model.Mix{Nuclear: model.Float(38000)}},
	}
}

func TestWriteCSVProduction(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ProductionTable(productionRows())))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "countryCode,timestamp,prod.biomass,prod.coal,prod.gas,prod.hydro,prod.nuclear,prod.oil,prod.solar,prod.wind,prod.geothermal,prod.unknown,storage.hydro", lines[0])
	assert.Equal(t, "FR,2023-01-01T10:00:00Z,,,,,40000,,10,,,,", lines[1])
	assert.Equal(t, "FR,2023-01-01T09:00:00Z,,,,,38000,,,,,,", lines[2])
}

func TestWriteCSVExchange(t *testing.T) {
	var buf bytes.Buffer
	rows := []model.ExchangeRow{{CountryFrom: "DE", CountryTo: "FR", Time: t0, NetFlow: -12.5}}
	require.NoError(t, WriteCSV(&buf, ExchangeTable(rows)))
	assert.Equal(t, "country_from,country_to,timestamp,net_flow\nDE,FR,2023-01-01T10:00:00Z,-12.5\n", buf.String())
}

func TestWriteJSONPrice(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	var buf bytes.Buffer
	rows := []model.PriceRow{{CountryCode: "FR", Currency: "EUR", Price: 61.25, Time: t0.In(paris)}}
	require.NoError(t, WriteJSON(&buf, PriceTable(rows)))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "EUR", got[0]["currency"])
	assert.Equal(t, 61.25, got[0]["price"])
	assert.Equal(t, "2023-01-01T11:00:00+01:00", got[0]["timestamp"])
}

func TestWriteJSONAbsentIsNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, ProductionTable(productionRows()[1:])))
	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	v, ok := got[0]["prod.coal"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestSummarize(t *testing.T) {
	stats := Summarize(ProductionTable(productionRows()))
	require.Len(t, stats, 2)
	assert.Equal(t, "prod.nuclear", stats[0].Column)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 38000.0, stats[0].Min)
	assert.Equal(t, 40000.0, stats[0].Max)
	assert.Equal(t, 39000.0, stats[0].Mean)
	assert.InDelta(t, 1414.21, stats[0].StdDev, 0.01)
	assert.Equal(t, "prod.solar", stats[1].Column)
	assert.Zero(t, stats[1].StdDev)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	rows := []model.ConsumptionRow{
		{CountryCode: "FR", Time: t0, Consumption: 100},
		{CountryCode: "FR", Time: t0.Add(time.Hour), Consumption: 120},
	}
	require.NoError(t, WriteXLSX(&buf, ConsumptionTable(rows)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{"consumption", "summary"}, f.GetSheetList())

	v, err := f.GetCellValue("consumption", "C1")
	require.NoError(t, err)
	assert.Equal(t, "consumption", v)
	v, err = f.GetCellValue("consumption", "C3")
	require.NoError(t, err)
	assert.Equal(t, "120", v)
	v, err = f.GetCellValue("summary", "E2")
	require.NoError(t, err)
	assert.Equal(t, "110", v)
}

func TestWriteChartHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChartHTML(&buf, ProductionTable(productionRows()), "FR production"))
	html := buf.String()
	assert.Contains(t, html, "FR production")
	assert.Contains(t, html, "prod.nuclear")
	assert.Contains(t, html, "prod.solar")
	assert.NotContains(t, html, "prod.coal")
	assert.Less(t, strings.Index(html, "2023-01-01 09:00"), strings.Index(html, "2023-01-01 10:00"))
}
