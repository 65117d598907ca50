package sqlite

import (
	"fmt"

	"github.com/willfleury/electricitymap/core/factory"
	"github.com/willfleury/electricitymap/core/sink"
)

func init() {
	_ = sink.RegisterWriter("sqlite", func(conf map[string]any) (sink.Writer, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Path == "" {
			return nil, fmt.Errorf("sqlite: path is required")
		}
		return NewStore(c.Path)
	})
}
