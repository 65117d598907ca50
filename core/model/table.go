package model

import "time"

// ConsumptionRow is one row of the consumption table.
type ConsumptionRow struct {
	CountryCode string    `json:"countryCode"`
	Time        time.Time `json:"timestamp"`
	Consumption float64   `json:"consumption"`
}

// ProductionRow is one row of the production table. Absent categories are nil.
type ProductionRow struct {
	CountryCode string    `json:"countryCode"`
	Time        time.Time `json:"timestamp"`
	Mix
}

// ExchangeRow holds the net flow between two zones. CountryFrom and CountryTo
// are always in lexical order; a positive NetFlow goes from CountryFrom to
// CountryTo.
type ExchangeRow struct {
	CountryFrom string    `json:"country_from"`
	CountryTo   string    `json:"country_to"`
	Time        time.Time `json:"timestamp"`
	NetFlow     float64   `json:"net_flow"`
}

// PriceRow is one settled day-ahead price.
type PriceRow struct {
	CountryCode string    `json:"countryCode"`
	Currency    string    `json:"currency"`
	Price       float64   `json:"price"`
	Time        time.Time `json:"timestamp"`
}

// Table columns, in output order.
var (
	ConsumptionColumns = []string{"countryCode", "timestamp", "consumption"}
	ProductionColumns  = append([]string{"countryCode", "timestamp"}, MixColumns...)
	ExchangeColumns    = []string{"country_from", "country_to", "timestamp", "net_flow"}
	PriceColumns       = []string{"currency", "price", "timestamp"}
)
