package influx

import (
	"github.com/willfleury/electricitymap/core/factory"
	"github.com/willfleury/electricitymap/core/sink"
)

func init() {
	_ = sink.RegisterWriter("influx", func(conf map[string]any) (sink.Writer, error) {
		var c Config
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewWriterWithFallback(c), nil
	})
}
