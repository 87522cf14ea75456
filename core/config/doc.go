// Package config provides configuration management for shadow-sync.
//
// It loads an optional .env file with godotenv, then uses Viper with defaults
// taken from each section's `default` struct tags. Environment variables map
// to nested keys by replacing dots with underscores (SHADOW_BACKEND ->
// shadow.backend).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and deployment environment
//   - Log: level and format
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket
//   - Shadow: store backend, object prefix, conflict retries
//   - Reconcile: version limit, array slot limit, default env, trim grace
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Shadow.Backend)
package config
