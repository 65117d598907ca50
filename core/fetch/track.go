package fetch

import (
	"time"

	"github.com/willfleury/electricitymap/connectors/entsoe"
	"github.com/willfleury/electricitymap/core/metrics"
	"github.com/willfleury/electricitymap/core/model"
)

// tracker counts the requests of one fetch and reports its outcome.
type tracker struct {
	f        *Fetcher
	kind     model.Kind
	entity   string
	began    time.Time
	requests int
}

func (f *Fetcher) track(kind model.Kind, entity string) *tracker {
	return &tracker{f: f, kind: kind, entity: entity, began: time.Now()}
}

// query runs q and turns a failed result into an *UpstreamError.
func (t *tracker) query(q func() (entsoe.Result, error)) (entsoe.Result, error) {
	t.requests++
	res, err := q()
	if err != nil {
		return entsoe.Result{}, err
	}
	if res.Status == entsoe.StatusFailed {
		return entsoe.Result{}, &UpstreamError{Kind: t.kind, Reason: res.Reason}
	}
	return res, nil
}

func (t *tracker) done(rows int, err error) {
	outcome := metrics.OutcomeFound
	switch {
	case err != nil:
		outcome = metrics.OutcomeFailed
		t.f.log.Errorf("%s %s: %v", t.kind, t.entity, err)
		t.f.monitor.CaptureException(err, map[string]string{
			"kind":    t.kind.String(),
			"country": t.entity,
		})
	case rows == 0:
		outcome = metrics.OutcomeAbsent
		t.f.log.Infof("%s %s: no data", t.kind, t.entity)
	default:
		t.f.log.Debugf("%s %s: %d rows after %d requests", t.kind, t.entity, rows, t.requests)
	}
	if rerr := t.f.recorder.RecordFetch(metrics.FetchEvent{
		Kind:     t.kind,
		Entity:   t.entity,
		Outcome:  outcome,
		Requests: t.requests,
		Rows:     rows,
		Duration: time.Since(t.began),
		Time:     t.began,
	}); rerr != nil {
		t.f.log.Warnf("record fetch: %v", rerr)
	}
}
