// Package utils provides common utility functions for the locale-manager application.
// It includes helpers for loose type conversion of decoded values (YAML keys, query
// parameters) that don't fit into domain-specific packages.
package utils
