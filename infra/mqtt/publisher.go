package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/willfleury/electricitymap/core/model"
	"github.com/willfleury/electricitymap/infra/logger"
)

// Message is the payload published for one table and entity.
type Message struct {
	BatchID     string    `json:"batch_id"`
	Kind        string    `json:"kind"`
	Entity      string    `json:"entity"`
	PublishedAt time.Time `json:"published_at"`
	Rows        any       `json:"rows"`
}

// Publisher implements sink.Writer. Each write publishes the rows of one
// entity as a single JSON message on <prefix>/<kind>/<entity>.
type Publisher struct {
	cli    pahoClient
	prefix string
	qos    byte
	retain bool
	log    logger.Logger
	now    func() time.Time
}

// NewPublisher connects to the broker.
func NewPublisher(cfg Config) (*Publisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	log := logger.New("mqtt_publisher")
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &Publisher{
		cli:    c,
		prefix: cfg.TopicPrefix,
		qos:    cfg.QoS,
		retain: cfg.Retain,
		log:    log,
		now:    time.Now,
	}, nil
}

// Topic returns the topic rows of kind for entity are published on.
func (p *Publisher) Topic(kind model.Kind, entity string) string {
	return fmt.Sprintf("%s/%s/%s", p.prefix, kind, entity)
}

func (p *Publisher) publish(ctx context.Context, kind model.Kind, entity string, rows any) error {
	msg := Message{
		BatchID:     uuid.NewString(),
		Kind:        kind.String(),
		Entity:      entity,
		PublishedAt: p.now().UTC(),
		Rows:        rows,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	topic := p.Topic(kind, entity)
	token := p.cli.Publish(topic, p.qos, p.retain, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	p.log.Debugf("published batch %s to %s", msg.BatchID, topic)
	return nil
}

// groupBy splits rows by entity, keeping first-seen order.
func groupBy[R any](rows []R, entity func(R) string) ([]string, map[string][]R) {
	var order []string
	groups := make(map[string][]R)
	for _, r := range rows {
		e := entity(r)
		if _, ok := groups[e]; !ok {
			order = append(order, e)
		}
		groups[e] = append(groups[e], r)
	}
	return order, groups
}

func publishGroups[R any](ctx context.Context, p *Publisher, kind model.Kind, rows []R, entity func(R) string) error {
	order, groups := groupBy(rows, entity)
	for _, e := range order {
		if err := p.publish(ctx, kind, e, groups[e]); err != nil {
			return err
		}
	}
	return nil
}

// WriteConsumption publishes consumption rows per country.
func (p *Publisher) WriteConsumption(ctx context.Context, rows []model.ConsumptionRow) error {
	return publishGroups(ctx, p, model.KindConsumption, rows, func(r model.ConsumptionRow) string { return r.CountryCode })
}

// WriteProduction publishes production rows per country.
func (p *Publisher) WriteProduction(ctx context.Context, rows []model.ProductionRow) error {
	return publishGroups(ctx, p, model.KindProduction, rows, func(r model.ProductionRow) string { return r.CountryCode })
}

// WriteExchange publishes exchange rows per country pair, as FROM-TO.
func (p *Publisher) WriteExchange(ctx context.Context, rows []model.ExchangeRow) error {
	return publishGroups(ctx, p, model.KindExchange, rows, func(r model.ExchangeRow) string { return r.CountryFrom + "-" + r.CountryTo })
}

// WritePrice publishes price rows per country.
func (p *Publisher) WritePrice(ctx context.Context, rows []model.PriceRow) error {
	return publishGroups(ctx, p, model.KindPrice, rows, func(r model.PriceRow) string { return r.CountryCode })
}

// Close gracefully closes the MQTT connection.
func (p *Publisher) Close() error {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
	return nil
}
