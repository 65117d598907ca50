package config

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/willfleury/electricitymap/connectors/entsoe"
)

// CollectorConfig drives the scheduled collector.
type CollectorConfig struct {
	// Schedule is a standard five-field cron expression.
	Schedule    string   `json:"schedule"`
	WindowHours int      `json:"window_hours"`
	Countries   []string `json:"countries"`
	// Exchanges lists country pairs as "FR-DE".
	Exchanges []string `json:"exchanges"`
	Kinds     []string `json:"kinds"`
}

// SetDefaults applies sane defaults.
func (c *CollectorConfig) SetDefaults() {
	if c.Schedule == "" {
		c.Schedule = "5 * * * *"
	}
	if c.WindowHours == 0 {
		c.WindowHours = 24
	}
	if len(c.Kinds) == 0 {
		c.Kinds = []string{"consumption", "production", "price"}
	}
}

// Validate checks the schedule and pair syntax.
func (c CollectorConfig) Validate() error {
	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
	}
	if c.WindowHours < 0 {
		return fmt.Errorf("window_hours must not be negative")
	}
	for _, p := range c.Exchanges {
		if _, _, err := SplitPair(p); err != nil {
			return err
		}
	}
	for _, k := range c.Kinds {
		switch k {
		case "consumption", "production", "price":
		default:
			return fmt.Errorf("unknown kind %q", k)
		}
	}
	return nil
}

// SplitPair parses "FR-DE" into its two country codes. Codes may contain a
// hyphen themselves ("GB-NIR-IE"), so the split is the one whose both halves
// are known countries.
func SplitPair(p string) (string, string, error) {
	for i := 0; i < len(p); i++ {
		if p[i] != '-' {
			continue
		}
		a, b := p[:i], p[i+1:]
		if known(a) && known(b) {
			return a, b, nil
		}
	}
	return "", "", fmt.Errorf("invalid exchange pair %q, want two country codes as A-B", p)
}

func known(code string) bool {
	_, err := entsoe.Domain(code)
	return err == nil
}
