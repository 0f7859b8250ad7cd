package config

import "errors"

// ErrKeyNotFound is returned by Resolver.Value when no source holds the key.
var ErrKeyNotFound = errors.New("configuration key not found")

// Source is a named, prioritized provider of configuration values.
// Implementations must be immutable after construction so that lookups are
// safe for concurrent use.
type Source interface {
	// Name identifies the source in logs and diagnostics.
	Name() string

	// Ordinal ranks the source within a Resolver; sources with higher
	// ordinals are consulted first, so their values win on key collisions.
	Ordinal() int

	// Lookup returns the value stored under key and whether it was found.
	Lookup(key string) (string, bool)
}
