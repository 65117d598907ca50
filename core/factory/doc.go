// Package factory provides a small generic registry used to instantiate
// pluggable modules (metrics sinks, table writers) from configuration.
// Modules are defined by a type string and a map of raw settings; factories
// decode the settings into typed structs with Decode.
//
// Example usage:
//
//	reg := factory.NewRegistry[sink.Writer]()
//	reg.Register("sqlite", func(conf map[string]any) (sink.Writer, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return sqlite.New(c.Path)
//	})
//	w, err := reg.Create(factory.ModuleConfig{Type: "sqlite", Conf: map[string]any{"path": "grid.db"}})
package factory
