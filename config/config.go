package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/willfleury/electricitymap/core/factory"
	"github.com/willfleury/electricitymap/core/metrics"
)

// EnvPrefix is the prefix of environment overrides. Nesting uses "__", so
// GRID_ENTSOE__TOKEN sets entsoe.token.
const EnvPrefix = "GRID_"

// TokenEnv is read when no token is configured otherwise.
const TokenEnv = "ENTSOE_TOKEN"

type Config struct {
	Entsoe    EntsoeConfig           `json:"entsoe"`
	Logging   LoggingConfig          `json:"logging"`
	Metrics   metrics.Config         `json:"metrics"`
	Sinks     []factory.ModuleConfig `json:"sinks"`
	Sentry    SentryConfig           `json:"sentry"`
	Collector CollectorConfig        `json:"collector"`
}

// Load reads the file at path, when given, then applies environment
// overrides, defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if cfg.Entsoe.Token == "" {
		cfg.Entsoe.Token = os.Getenv(TokenEnv)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies the defaults of every section.
func (c *Config) SetDefaults() {
	c.Entsoe.SetDefaults()
	c.Logging.SetDefaults()
	c.Sentry.SetDefaults()
	c.Collector.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Entsoe.Validate(); err != nil {
		return fmt.Errorf("entsoe: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Collector.Validate(); err != nil {
		return fmt.Errorf("collector: %w", err)
	}
	for i, s := range c.Sinks {
		if s.Type == "" {
			return fmt.Errorf("sinks[%d]: type is required", i)
		}
	}
	return nil
}
