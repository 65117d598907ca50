package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/willfleury/electricitymap/infra/sqlite"
	"github.com/willfleury/electricitymap/pkg/export"
)

var (
	dbPath string
	kind   string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Read collected rows back from a SQLite sink",
	RunE:  show,
}

func init() {
	showCmd.Flags().StringVar(&dbPath, "db", "grid.db", "SQLite database written by the sqlite sink")
	showCmd.Flags().StringVar(&kind, "kind", "consumption", "table: consumption, production, exchange or price")
	showCmd.Flags().StringVar(&country, "country", "", "country code; first country of an exchange pair")
	showCmd.Flags().StringVar(&toCountry, "to-country", "", "second country of an exchange pair")
	showCmd.Flags().StringVar(&fromTime, "from", "", "window start; default 24h before --to")
	showCmd.Flags().StringVar(&toTime, "to", "", "window end; default now")
	showCmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv, json, xlsx or html")
	showCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file; stdout when empty")
	_ = showCmd.MarkFlagRequired("country")
	rootCmd.AddCommand(showCmd)
}

func show(cmd *cobra.Command, _ []string) error {
	start, end, err := window(fromTime, toTime, time.Now())
	if err != nil {
		return err
	}
	if err := checkFormat(format); err != nil {
		return err
	}
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	store, err := sqlite.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	table, title, err := readTable(cmd.Context(), store, start, end)
	if err != nil {
		return err
	}
	return output(cmd, table, title)
}

func readTable(ctx context.Context, store *sqlite.Store, start, end time.Time) (export.Table, string, error) {
	switch kind {
	case "consumption":
		rows, err := store.QueryConsumption(ctx, country, start, end)
		return export.ConsumptionTable(rows), country + " consumption", err
	case "production":
		rows, err := store.QueryProduction(ctx, country, start, end)
		return export.ProductionTable(rows), country + " production", err
	case "price":
		rows, err := store.QueryPrice(ctx, country, start, end)
		return export.PriceTable(rows), country + " price", err
	case "exchange":
		if toCountry == "" {
			return export.Table{}, "", fmt.Errorf("--to-country is required for exchange")
		}
		a, b := country, toCountry
		if a > b {
			a, b = b, a
		}
		rows, err := store.QueryExchange(ctx, a, b, start, end)
		return export.ExchangeTable(rows), a + "/" + b + " exchange", err
	default:
		return export.Table{}, "", fmt.Errorf("unknown kind %q", kind)
	}
}
