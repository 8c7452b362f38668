// Package config loads the process settings from environment variables.
// Connection credentials have no defaults: a missing or malformed value stops
// the process at startup instead of at the first query.
package config
