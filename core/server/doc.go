// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package defines the
// settings it reads: listen port, API key and the timeout applied to reconcile requests.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to configure Fiber and the auth middleware.
package server
