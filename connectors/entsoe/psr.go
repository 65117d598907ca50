package entsoe

import "github.com/willfleury/electricitymap/core/category"

// PsrType is a production type code (B01..B20).
type PsrType struct {
	Code        string
	Description string
}

var psrTypes = []PsrType{
	{"B01", category.BiomassFuel},
	{"B02", category.BrownCoal},
	{"B03", category.CoalDerivedGas},
	{"B04", category.FossilGas},
	{"B05", category.HardCoal},
	{"B06", category.FossilOil},
	{"B07", category.OilShale},
	{"B08", category.Peat},
	{"B09", category.GeothermalFuel},
	{"B10", category.HydroPumped},
	{"B11", category.HydroRunOfRiver},
	{"B12", category.HydroReservoir},
	{"B13", category.Marine},
	{"B14", category.Nuclear},
	{"B15", category.OtherRenewable},
	{"B16", category.Solar},
	{"B17", category.Waste},
	{"B18", category.WindOffshore},
	{"B19", category.WindOnshore},
	{"B20", category.Other},
}

// PsrTypes returns the known production types in code order.
func PsrTypes() []PsrType {
	out := make([]PsrType, len(psrTypes))
	copy(out, psrTypes)
	return out
}

// PsrDescription returns the description of code, or "" when unknown.
func PsrDescription(code string) string {
	for _, p := range psrTypes {
		if p.Code == code {
			return p.Description
		}
	}
	return ""
}
