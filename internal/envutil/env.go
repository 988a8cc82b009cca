// Package envutil has small helpers for reading process environment values.
package envutil

import "os"

// SafeEnv reads key from the environment. An unset or empty variable yields
// fallback instead.
func SafeEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
