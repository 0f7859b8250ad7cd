package args

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-config/keys"
)

const (
	// ArgPrefix is the two-character prefix every argument token must carry.
	ArgPrefix = "--"
	// ArgSeparator separates distinct argument tokens in the raw string.
	// Commas inside a token are not escapable.
	ArgSeparator = ","

	// DefaultName is the default source name.
	DefaultName = "cli"
	// DefaultOrdinal ranks the source above default sources in a resolver.
	DefaultOrdinal = 500
)

// ErrMalformedArgument is returned when a token violates the argument syntax.
var ErrMalformedArgument = errors.New("malformed argument")

// MalformedArgumentError reports the token that failed to parse.
// It matches ErrMalformedArgument with errors.Is.
type MalformedArgumentError struct {
	Token  string
	Reason string
}

func (e *MalformedArgumentError) Error() string {
	return fmt.Sprintf("malformed argument %q: %s", e.Token, e.Reason)
}

func (e *MalformedArgumentError) Unwrap() error {
	return ErrMalformedArgument
}

// Config holds the construction parameters for the argument source.
type Config struct {
	// Name identifies the source in a resolver.
	Name string
	// Ordinal ranks the source; higher wins on key collisions.
	Ordinal int
	// Namespace is prepended to every parsed key to scope it within a larger
	// configuration key space, e.g. "app.".
	Namespace string
	// AliasFunc maps a canonical key to an alternate spelling that must also
	// resolve to the same value. Returning the key unchanged adds no entry.
	AliasFunc func(string) string
	// NormalizeFunc produces the lookup-friendly canonical form inserted
	// alongside every entry.
	NormalizeFunc func(string) string
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}

	if c.Ordinal == 0 {
		c.Ordinal = DefaultOrdinal
	}

	if c.AliasFunc == nil {
		c.AliasFunc = keys.Identity
	}

	if c.NormalizeFunc == nil {
		c.NormalizeFunc = keys.Normalize
	}
}

// Option defines a function type for configuring the argument source.
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

// WithNamespace sets the namespace prefix prepended to every parsed key.
func WithNamespace(namespace string) Option {
	return func(cfg *Config) {
		cfg.Namespace = namespace
	}
}

// WithAliasFunc sets the alias-mapping function.
func WithAliasFunc(aliasFunc func(string) string) Option {
	return func(cfg *Config) {
		cfg.AliasFunc = aliasFunc
	}
}

// WithNormalizeFunc sets the key-normalization function.
func WithNormalizeFunc(normalizeFunc func(string) string) Option {
	return func(cfg *Config) {
		cfg.NormalizeFunc = normalizeFunc
	}
}

// Source maps CLI-style configuration arguments, captured as a single
// comma-separated string, to canonical property keys. The raw string is
// parsed once at construction; the resulting mapping is immutable and safe
// for concurrent reads.
type Source struct {
	name       string
	ordinal    int
	properties map[string]string
}

// New parses raw into an argument source. An empty or blank raw string yields
// an empty source. Any token that does not start with "--", or whose key is
// empty after stripping the prefix, aborts construction with a
// *MalformedArgumentError; no partial source is returned.
func New(raw string, opts ...Option) (*Source, error) {
	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	cfg.SetDefaults()

	properties, err := parse(raw, cfg)
	if err != nil {
		return nil, err
	}

	return &Source{
		name:       cfg.Name,
		ordinal:    cfg.Ordinal,
		properties: properties,
	}, nil
}

// Name identifies the source in a resolver.
func (s *Source) Name() string {
	return s.name
}

// Ordinal ranks the source within a resolver.
func (s *Source) Ordinal() int {
	return s.ordinal
}

// Lookup translates dashes in the query key to dots and performs an exact
// match against the parsed properties. No partial or prefix matching.
func (s *Source) Lookup(key string) (string, bool) {
	value, ok := s.properties[keys.DashToDot(key)]

	return value, ok
}

// Len reports the number of stored property entries.
func (s *Source) Len() int {
	return len(s.properties)
}

func parse(raw string, cfg Config) (map[string]string, error) {
	properties := make(map[string]string)

	if strings.TrimSpace(raw) == "" {
		return properties, nil
	}

	for _, token := range strings.Split(raw, ArgSeparator) {
		if !strings.HasPrefix(token, ArgPrefix) {
			return nil, &MalformedArgumentError{
				Token:  token,
				Reason: "arguments must start with '--'",
			}
		}

		// Split on the first '=' only, so values that legitimately contain
		// '=' (connection URLs with query parameters) survive verbatim.
		key, value, hasValue := strings.Cut(token, "=")
		if !hasValue {
			// Bare flag without a value, nothing to store.
			continue
		}

		key = strings.TrimPrefix(key, ArgPrefix)
		if strings.TrimSpace(key) == "" {
			return nil, &MalformedArgumentError{
				Token:  token,
				Reason: "argument key must not be empty",
			}
		}

		canonical := cfg.Namespace + keys.DashToDot(key)

		properties[canonical] = value

		alias := cfg.AliasFunc(canonical)
		if alias != canonical {
			properties[alias] = value
		}

		properties[cfg.NormalizeFunc(canonical)] = value
	}

	return properties, nil
}
