// Package category collapses the platform's production types into the
// canonical categories of the production table.
//
// Every function takes a snapshot keyed by production type description
// ("Fossil Gas", "Wind Onshore", ...) and returns nil when none of the
// category's constituent types is present. Missing constituents of a present
// category count as 0.
package category

import (
	"math"

	"github.com/willfleury/electricitymap/core/model"
)

// Production type descriptions as published by the platform.
const (
	BiomassFuel       = "Biomass"
	BrownCoal         = "Fossil Brown coal/Lignite"
	CoalDerivedGas    = "Fossil Coal-derived gas"
	FossilGas         = "Fossil Gas"
	HardCoal          = "Fossil Hard coal"
	FossilOil         = "Fossil Oil"
	OilShale          = "Fossil Oil shale"
	Peat              = "Fossil Peat"
	GeothermalFuel    = "Geothermal"
	HydroPumped       = "Hydro Pumped Storage"
	HydroRunOfRiver   = "Hydro Run-of-river and poundage"
	HydroReservoir    = "Hydro Water Reservoir"
	Marine            = "Marine"
	Nuclear           = "Nuclear"
	OtherRenewable    = "Other renewable"
	Solar             = "Solar"
	Waste             = "Waste"
	WindOffshore      = "Wind Offshore"
	WindOnshore       = "Wind Onshore"
	Other             = "Other"
	oilNoDataSentinel = -1.0
)

// Values is a snapshot of production type → value at one timestamp.
type Values map[string]float64

func (v Values) anyOf(keys ...string) bool {
	for _, k := range keys {
		if _, ok := v[k]; ok {
			return true
		}
	}
	return false
}

func (v Values) sum(keys ...string) *float64 {
	if !v.anyOf(keys...) {
		return nil
	}
	total := 0.0
	for _, k := range keys {
		total += v[k]
	}
	return &total
}

func (v Values) single(key string) *float64 {
	x, ok := v[key]
	if !ok {
		return nil
	}
	return &x
}

// Biomass sums biomass, peat and waste.
func Biomass(v Values) *float64 { return v.sum(BiomassFuel, Peat, Waste) }

// Coal sums lignite and hard coal.
func Coal(v Values) *float64 { return v.sum(BrownCoal, HardCoal) }

// Gas sums coal-derived and fossil gas.
func Gas(v Values) *float64 { return v.sum(CoalDerivedGas, FossilGas) }

// Hydro sums hydro production. A negative pumped storage value means the
// plant was charging and contributes 0.
func Hydro(v Values) *float64 {
	if !v.anyOf(HydroPumped, HydroRunOfRiver, HydroReservoir) {
		return nil
	}
	total := math.Max(v[HydroPumped], 0) + v[HydroRunOfRiver] + v[HydroReservoir]
	return &total
}

// HydroStorage takes the storage snapshot, not the production one.
func HydroStorage(storage Values) *float64 {
	x, ok := storage[HydroPumped]
	if !ok {
		return nil
	}
	x = math.Max(0, x)
	return &x
}

// Oil treats a total of exactly -1 as the platform's no-data marker.
func Oil(v Values) *float64 {
	total := v.sum(FossilOil, OilShale)
	if total == nil || *total == oilNoDataSentinel {
		return nil
	}
	return total
}

// Wind sums onshore and offshore wind.
func Wind(v Values) *float64 { return v.sum(WindOnshore, WindOffshore) }

// Geothermal passes the geothermal value through.
func Geothermal(v Values) *float64 { return v.single(GeothermalFuel) }

// Unknown sums marine, other renewable and other.
func Unknown(v Values) *float64 { return v.sum(Marine, OtherRenewable, Other) }

// Aggregate builds the full mix for one timestamp.
func Aggregate(production, storage Values) model.Mix {
	return model.Mix{
		Biomass:      Biomass(production),
		Coal:         Coal(production),
		Gas:          Gas(production),
		Hydro:        Hydro(production),
		Nuclear:      production.single(Nuclear),
		Oil:          Oil(production),
		Solar:        production.single(Solar),
		Wind:         Wind(production),
		Geothermal:   Geothermal(production),
		Unknown:      Unknown(production),
		HydroStorage: HydroStorage(storage),
	}
}
