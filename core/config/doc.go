// Package config provides configuration management for the locale manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of every section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, request timeout)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Database: optional MySQL, PostgreSQL or SQLite connection
//   - Locales: locale file backend, directory, format and base file
//   - Source: where the current translation tree is read from
//   - Usage: where translation lookups are discovered
//
// Environment variables map onto nested keys with underscores, e.g. LOCALES_DIR sets
// locales.dir and SOURCE_DIRS="config/locales,vendor/locales" sets source.dirs.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Locales.Dir)
package config
