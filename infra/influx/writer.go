// Package influx writes result tables to InfluxDB, one point per row.
package influx

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/willfleury/electricitymap/core/model"
	"github.com/willfleury/electricitymap/core/sink"
	"github.com/willfleury/electricitymap/infra/logger"
)

// Config holds the connection settings of the writer.
type Config struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// Writer implements sink.Writer. The measurement is the table kind; entity
// names are tags and values are fields.
type Writer struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewWriter creates a writer for the given endpoint without checking it.
func NewWriter(cfg Config) *Writer {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &Writer{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-writer"),
	}
}

// NewWriterWithFallback pings the instance and returns a NopWriter if the
// health check fails.
func NewWriterWithFallback(cfg Config) sink.Writer {
	w := NewWriter(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := w.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			w.log.Errorf("influx health check error: %v", err)
		} else {
			w.log.Errorf("influx health status: %s", health.Status)
		}
		w.client.Close()
		return sink.NopWriter{}
	}
	return w
}

func (w *Writer) writePoints(ctx context.Context, points []*write.Point) error {
	if len(points) == 0 {
		return nil
	}
	if err := w.writeAPI.WritePoint(ctx, points...); err != nil {
		return err
	}
	w.log.Debugf("wrote %d %s points", len(points), points[0].Name())
	return nil
}

// WriteConsumption writes one consumption point per row.
func (w *Writer) WriteConsumption(ctx context.Context, rows []model.ConsumptionRow) error {
	points := make([]*write.Point, len(rows))
	for i, r := range rows {
		points[i] = write.NewPointWithMeasurement(model.KindConsumption.String()).
			AddTag("country", r.CountryCode).
			AddField("consumption", r.Consumption).
			SetTime(r.Time)
	}
	return w.writePoints(ctx, points)
}

// WriteProduction writes one production point per row. Absent categories
// are not written as fields; a row with no category at all is skipped.
func (w *Writer) WriteProduction(ctx context.Context, rows []model.ProductionRow) error {
	points := make([]*write.Point, 0, len(rows))
	for _, r := range rows {
		p := write.NewPointWithMeasurement(model.KindProduction.String()).
			AddTag("country", r.CountryCode).
			SetTime(r.Time)
		fields := 0
		for i, v := range r.Mix.Values() {
			if v == nil {
				continue
			}
			p.AddField(model.MixColumns[i], *v)
			fields++
		}
		if fields == 0 {
			continue
		}
		points = append(points, p)
	}
	return w.writePoints(ctx, points)
}

// WriteExchange writes one exchange point per row.
func (w *Writer) WriteExchange(ctx context.Context, rows []model.ExchangeRow) error {
	points := make([]*write.Point, len(rows))
	for i, r := range rows {
		points[i] = write.NewPointWithMeasurement(model.KindExchange.String()).
			AddTag("country_from", r.CountryFrom).
			AddTag("country_to", r.CountryTo).
			AddField("net_flow", r.NetFlow).
			SetTime(r.Time)
	}
	return w.writePoints(ctx, points)
}

// WritePrice writes one price point per row.
func (w *Writer) WritePrice(ctx context.Context, rows []model.PriceRow) error {
	points := make([]*write.Point, len(rows))
	for i, r := range rows {
		points[i] = write.NewPointWithMeasurement(model.KindPrice.String()).
			AddTag("country", r.CountryCode).
			AddTag("currency", r.Currency).
			AddField("price", r.Price).
			SetTime(r.Time)
	}
	return w.writePoints(ctx, points)
}

// Close releases the underlying client.
func (w *Writer) Close() error {
	w.client.Close()
	return nil
}
