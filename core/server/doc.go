// Package server holds the HTTP server configuration.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and the environment tag
// of the deployment. The environment is the default tag applied to requests
// that do not carry one, so a stage deployment cannot write to prod devices.
//
// # Usage
//
// This package is embedded by core/config and read by the start command.
package server
