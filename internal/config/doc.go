// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Values changeable at runtime
// from the admin API (API key, brand id, page size, batch threshold, scripts)
// are kept in the persisted settings store instead.
package config
