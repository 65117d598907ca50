package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/willfleury/electricitymap/app"
	"github.com/willfleury/electricitymap/config"
	"github.com/willfleury/electricitymap/core/fetch"
	"github.com/willfleury/electricitymap/infra/logger"
	"github.com/willfleury/electricitymap/pkg/export"
)

var (
	country     string
	fromCountry string
	toCountry   string
	fromTime    string
	toTime      string
	format      string
	outPath     string
)

var consumptionCmd = &cobra.Command{
	Use:   "consumption",
	Short: "Realised total load of a country",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFetch(cmd, func(ctx context.Context, f *fetch.Fetcher, start, end time.Time) (export.Table, string, error) {
			rows, err := f.FetchConsumption(ctx, country, start, end)
			return export.ConsumptionTable(rows), country + " consumption", err
		})
	},
}

var productionCmd = &cobra.Command{
	Use:   "production",
	Short: "Realised generation mix of a country",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFetch(cmd, func(ctx context.Context, f *fetch.Fetcher, start, end time.Time) (export.Table, string, error) {
			rows, err := f.FetchProduction(ctx, country, start, end)
			return export.ProductionTable(rows), country + " production", err
		})
	},
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Day-ahead prices of a country",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFetch(cmd, func(ctx context.Context, f *fetch.Fetcher, start, end time.Time) (export.Table, string, error) {
			rows, err := f.FetchPrice(ctx, country, start, end)
			return export.PriceTable(rows), country + " price", err
		})
	},
}

var exchangeCmd = &cobra.Command{
	Use:   "exchange",
	Short: "Net physical flow between two countries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFetch(cmd, func(ctx context.Context, f *fetch.Fetcher, start, end time.Time) (export.Table, string, error) {
			rows, err := f.FetchExchange(ctx, fromCountry, toCountry, start, end)
			return export.ExchangeTable(rows), fromCountry + "/" + toCountry + " exchange", err
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{consumptionCmd, productionCmd, priceCmd} {
		c.Flags().StringVar(&country, "country", "", "country code, see 'grid countries'")
		_ = c.MarkFlagRequired("country")
	}
	exchangeCmd.Flags().StringVar(&fromCountry, "from-country", "", "first country code")
	exchangeCmd.Flags().StringVar(&toCountry, "to-country", "", "second country code")
	_ = exchangeCmd.MarkFlagRequired("from-country")
	_ = exchangeCmd.MarkFlagRequired("to-country")

	for _, c := range []*cobra.Command{consumptionCmd, productionCmd, priceCmd, exchangeCmd} {
		c.Flags().StringVar(&fromTime, "from", "", "window start (RFC3339, 2006-01-02T15:04 or 2006-01-02, UTC); default 24h before --to")
		c.Flags().StringVar(&toTime, "to", "", "window end; default now")
		c.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv, json, xlsx or html")
		c.Flags().StringVarP(&outPath, "out", "o", "", "output file; stdout when empty")
		rootCmd.AddCommand(c)
	}
}

type fetchFunc func(ctx context.Context, f *fetch.Fetcher, start, end time.Time) (export.Table, string, error)

func runFetch(cmd *cobra.Command, fn fetchFunc) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start, end, err := window(fromTime, toTime, time.Now())
	if err != nil {
		return err
	}
	if err := checkFormat(format); err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	table, title, err := fn(ctx, svc.Fetcher, start, end)
	if err != nil {
		return err
	}
	if table.Len() == 0 {
		logger.New("cli").Warnf("no data for %s between %s and %s", title, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return output(cmd, table, title)
}

// output renders the table to --out, or stdout when unset.
func output(cmd *cobra.Command, table export.Table, title string) error {
	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	return render(w, format, table, title)
}

func checkFormat(f string) error {
	switch f {
	case "csv", "json", "xlsx", "html":
		return nil
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func render(w io.Writer, f string, t export.Table, title string) error {
	switch f {
	case "json":
		return export.WriteJSON(w, t)
	case "xlsx":
		return export.WriteXLSX(w, t)
	case "html":
		return export.WriteChartHTML(w, t, title)
	default:
		return export.WriteCSV(w, t)
	}
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}

// window resolves --from/--to; empty --to is now and empty --from is 24h
// before the end.
func window(from, to string, now time.Time) (time.Time, time.Time, error) {
	end := now.UTC()
	if to != "" {
		t, err := parseTime(to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = t
	}
	start := end.Add(-24 * time.Hour)
	if from != "" {
		t, err := parseTime(from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from must be before --to")
	}
	return start, end, nil
}
