// Package config provides configuration loading, merging, and validation
// facilities for the reader-sync binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags (server only)
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the servers and
// [GetClientConfig] for the client.
package config
