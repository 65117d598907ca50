package model

// Mix is the canonical production breakdown at one timestamp. A nil field
// means none of the category's raw fuel types was reported, which is
// different from a reported zero.
type Mix struct {
	Biomass      *float64 `json:"prod.biomass"`
	Coal         *float64 `json:"prod.coal"`
	Gas          *float64 `json:"prod.gas"`
	Hydro        *float64 `json:"prod.hydro"`
	Nuclear      *float64 `json:"prod.nuclear"`
	Oil          *float64 `json:"prod.oil"`
	Solar        *float64 `json:"prod.solar"`
	Wind         *float64 `json:"prod.wind"`
	Geothermal   *float64 `json:"prod.geothermal"`
	Unknown      *float64 `json:"prod.unknown"`
	HydroStorage *float64 `json:"storage.hydro"`
}

// MixColumns lists the column names of Mix.Values, in order.
var MixColumns = []string{
	"prod.biomass", "prod.coal", "prod.gas", "prod.hydro", "prod.nuclear",
	"prod.oil", "prod.solar", "prod.wind", "prod.geothermal", "prod.unknown",
	"storage.hydro",
}

// Values returns the fields in MixColumns order.
func (m Mix) Values() []*float64 {
	return []*float64{
		m.Biomass, m.Coal, m.Gas, m.Hydro, m.Nuclear,
		m.Oil, m.Solar, m.Wind, m.Geothermal, m.Unknown,
		m.HydroStorage,
	}
}

// Float returns a pointer to a copy of v.
func Float(v float64) *float64 { return &v }
