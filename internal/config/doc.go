// Package config loads the lumapix client configuration from environment
// variables, command-line flags, and an optional JSON file, merging the three
// sources into a single validated [ClientConfig].
//
// Precedence is merge order: a later source only fills fields the earlier
// sources left at their zero value (environment first, then flags, then the
// JSON file named by either of them).
package config
