// Package database handles database connections and schema checks.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL and SQLite
// connections from the application's configuration. The database is optional: it only
// backs the "database" tree source, where translations live as locale/key/value rows.
//
// # Connect
//
// Connect selects the dialector from Config.Driver, applies connection pool settings and
// pings the server within Config.TimeoutSeconds.
//
// # Schema Inspection
//
// GetTableColumns and RequireColumns let a source verify that an existing table carries
// the columns it reads before the first query runs.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	err = database.RequireColumns(db, "translations", "locale", "key", "value")
package database
