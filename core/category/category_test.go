package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsentWhenNoConstituent(t *testing.T) {
	mix := Aggregate(Values{}, Values{})
	for i, v := range mix.Values() {
		assert.Nil(t, v, "column %d", i)
	}
}

func TestBiomass(t *testing.T) {
	got := Biomass(Values{BiomassFuel: 5})
	require.NotNil(t, got)
	assert.Equal(t, 5.0, *got)

	got = Biomass(Values{BiomassFuel: 5, Waste: 2, Peat: 1})
	require.NotNil(t, got)
	assert.Equal(t, 8.0, *got)

	got = Biomass(Values{Waste: 0})
	require.NotNil(t, got, "a reported zero is not absent")
	assert.Equal(t, 0.0, *got)
}

func TestOilSentinel(t *testing.T) {
	assert.Nil(t, Oil(Values{FossilOil: -1.0}))
	assert.Nil(t, Oil(Values{FossilOil: -0.5, OilShale: -0.5}), "sentinel applies to the sum")

	got := Oil(Values{FossilOil: -1.5})
	require.NotNil(t, got)
	assert.Equal(t, -1.5, *got)
}

func TestHydroFlooring(t *testing.T) {
	mix := Aggregate(Values{HydroPumped: -4, HydroRunOfRiver: 2}, Values{})
	require.NotNil(t, mix.Hydro)
	assert.Equal(t, 2.0, *mix.Hydro)
	assert.Nil(t, mix.HydroStorage)
}

func TestHydroStorage(t *testing.T) {
	got := HydroStorage(Values{HydroPumped: 7})
	require.NotNil(t, got)
	assert.Equal(t, 7.0, *got)

	got = HydroStorage(Values{HydroPumped: -3})
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)
}

func TestAggregate(t *testing.T) {
	prod := Values{
		BrownCoal:      10,
		FossilGas:      4,
		Nuclear:        40,
		Solar:          0,
		WindOnshore:    3,
		WindOffshore:   2,
		GeothermalFuel: 1,
		Other:          6,
		Marine:         1,
	}
	mix := Aggregate(prod, Values{})
	cases := []struct {
		name string
		got  *float64
		want *float64
	}{
		{"biomass", mix.Biomass, nil},
		{"coal", mix.Coal, f(10)},
		{"gas", mix.Gas, f(4)},
		{"hydro", mix.Hydro, nil},
		{"nuclear", mix.Nuclear, f(40)},
		{"oil", mix.Oil, nil},
		{"solar", mix.Solar, f(0)},
		{"wind", mix.Wind, f(5)},
		{"geothermal", mix.Geothermal, f(1)},
		{"unknown", mix.Unknown, f(7)},
		{"storage", mix.HydroStorage, nil},
	}
	for _, c := range cases {
		if c.want == nil {
			assert.Nil(t, c.got, c.name)
			continue
		}
		if assert.NotNil(t, c.got, c.name) {
			assert.Equal(t, *c.want, *c.got, c.name)
		}
	}
}

func f(v float64) *float64 { return &v }
