package reconcile

import (
	"time"

	"shadow-sync/core/version"
)

// Config holds configuration for the reconcilers.
type Config struct {
	// MaxVersion is the largest desired version before wrapping to 1.
	MaxVersion int `mapstructure:"max_version" default:"2147483647"`
	// MaxArraySlots bounds schedule array positions and count hints.
	MaxArraySlots int `mapstructure:"max_array_slots" default:"256"`
	// DefaultEnv is used when a request carries no environment tag.
	DefaultEnv string `mapstructure:"default_env" default:""`
	// TrimGraceSeconds keeps one-time events this long after they end.
	TrimGraceSeconds int `mapstructure:"trim_grace_seconds" default:"0"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		MaxVersion:    version.MaxVersionNumber,
		MaxArraySlots: 256,
	}
}

// TrimGrace returns TrimGraceSeconds as a duration.
func (c Config) TrimGrace() time.Duration {
	return time.Duration(c.TrimGraceSeconds) * time.Second
}

// Normalized fills zero values with defaults.
func (c Config) Normalized() Config {
	d := DefaultConfig()
	if c.MaxVersion <= 0 {
		c.MaxVersion = d.MaxVersion
	}
	if c.MaxArraySlots <= 0 {
		c.MaxArraySlots = d.MaxArraySlots
	}
	if c.TrimGraceSeconds < 0 {
		c.TrimGraceSeconds = 0
	}
	return c
}
