package server

import "shadow-sync/core/env"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Environment is the environment tag this deployment serves (prod, stage, dev, ...).
	Environment string `mapstructure:"environment" default:"dev"`
}

// IsValidEnvironment checks if the configured environment is a recognised tag.
func (c Config) IsValidEnvironment() bool {
	return env.IsKnown(c.Environment)
}
