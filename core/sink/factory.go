package sink

import "github.com/willfleury/electricitymap/core/factory"

var writerRegistry = factory.NewRegistry[Writer]()

func init() {
	_ = RegisterWriter("nop", func(map[string]any) (Writer, error) { return NopWriter{}, nil })
}

// RegisterWriter adds a writer factory identified by name.
func RegisterWriter(name string, f factory.Factory[Writer]) error {
	return writerRegistry.Register(name, f)
}

// WriterTypes lists the registered writer types.
func WriterTypes() []string { return writerRegistry.Types() }

// NewWriter creates a Writer from configuration. Writers created before a
// failing entry are closed.
func NewWriter(cfgs []factory.ModuleConfig) (Writer, error) {
	if len(cfgs) == 0 {
		return NopWriter{}, nil
	}
	if len(cfgs) == 1 {
		return writerRegistry.Create(cfgs[0])
	}
	ws := make([]Writer, 0, len(cfgs))
	for _, c := range cfgs {
		w, err := writerRegistry.Create(c)
		if err != nil {
			_ = NewMulti(ws...).Close()
			return nil, err
		}
		ws = append(ws, w)
	}
	return NewMulti(ws...), nil
}
