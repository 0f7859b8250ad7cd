package env

import (
	"os"
	"strings"
)

const (
	// DefaultName is the default source name.
	DefaultName = "env"
	// DefaultOrdinal ranks the source below CLI arguments but above file
	// sources in a resolver.
	DefaultOrdinal = 300
)

// LookupFunc looks up a single environment variable by its final name.
type LookupFunc func(name string) (string, bool)

// Config holds the construction parameters for the environment source.
type Config struct {
	Name    string
	Ordinal int
	// Lookup resolves a variable name; defaults to os.LookupEnv.
	Lookup LookupFunc
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}

	if c.Ordinal == 0 {
		c.Ordinal = DefaultOrdinal
	}

	if c.Lookup == nil {
		c.Lookup = os.LookupEnv
	}
}

// Option defines a function type for configuring the environment source.
type Option func(*Config)

// WithName sets the source name.
func WithName(name string) Option {
	return func(cfg *Config) {
		cfg.Name = name
	}
}

// WithOrdinal sets the source ordinal.
func WithOrdinal(ordinal int) Option {
	return func(cfg *Config) {
		cfg.Ordinal = ordinal
	}
}

// WithLookup sets the variable lookup function. Useful for tests that must
// not touch the process environment.
func WithLookup(lookup LookupFunc) Option {
	return func(cfg *Config) {
		cfg.Lookup = lookup
	}
}

// Source resolves configuration keys against environment variables.
// A canonical dotted key is mapped to a variable name by replacing dashes and
// dots with underscores and upper-casing the result, so "app.http.enabled"
// reads APP_HTTP_ENABLED.
type Source struct {
	name    string
	ordinal int
	lookup  LookupFunc
}

// New creates an environment source.
func New(opts ...Option) *Source {
	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	cfg.SetDefaults()

	return &Source{
		name:    cfg.Name,
		ordinal: cfg.Ordinal,
		lookup:  cfg.Lookup,
	}
}

// Name identifies the source in a resolver.
func (s *Source) Name() string {
	return s.name
}

// Ordinal ranks the source within a resolver.
func (s *Source) Ordinal() int {
	return s.ordinal
}

// Lookup translates key to its environment variable name and reads it.
func (s *Source) Lookup(key string) (string, bool) {
	return s.lookup(VarName(key))
}

// VarName returns the environment variable name for a property key.
func VarName(key string) string {
	name := strings.ReplaceAll(key, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")

	return strings.ToUpper(name)
}
