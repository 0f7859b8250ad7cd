package yamlfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultName is the default source name.
	DefaultName = "file"
	// DefaultOrdinal ranks the source below CLI arguments and environment
	// variables in a resolver.
	DefaultOrdinal = 100
)

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrNotMapping is returned when the YAML document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Config holds the construction parameters for the YAML file source.
type Config struct {
	Name    string
	Ordinal int
	// Namespace is prepended to every flattened key, e.g. "app.".
	Namespace string
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}

	if c.Ordinal == 0 {
		c.Ordinal = DefaultOrdinal
	}
}

// Option defines a function type for configuring the YAML file source.
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

// WithNamespace sets the namespace prefix prepended to every flattened key.
func WithNamespace(namespace string) Option {
	return func(cfg *Config) {
		cfg.Namespace = namespace
	}
}

// Source maps a YAML file to canonical dotted property keys. Nested mappings
// are flattened ("http: {port: 8180}" becomes "http.port"); scalar values are
// stored in their string form. The file is read once at construction; the
// resulting mapping is immutable and safe for concurrent reads.
type Source struct {
	name       string
	ordinal    int
	properties map[string]string
}

// New reads and flattens the YAML file at fpath.
// Returns an error if the file cannot be read, if the path points to a
// directory, or if the document root is not a mapping. An empty file yields
// an empty source.
func New(fpath string, opts ...Option) (*Source, error) {
	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	cfg.SetDefaults()

	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	properties, err := flattenDocument(data, cfg.Namespace)
	if err != nil {
		return nil, fmt.Errorf("parsing file %q: %w", cleanPath, err)
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

// Lookup performs an exact match against the flattened properties.
func (s *Source) Lookup(key string) (string, bool) {
	value, ok := s.properties[key]

	return value, ok
}

// Len reports the number of stored property entries.
func (s *Source) Len() int {
	return len(s.properties)
}

func flattenDocument(data []byte, namespace string) (map[string]string, error) {
	properties := make(map[string]string)

	if len(data) == 0 {
		return properties, nil
	}

	var document any

	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if document == nil {
		return properties, nil
	}

	mapping, ok := document.(map[string]any)
	if !ok {
		return nil, ErrNotMapping
	}

	flattenMapping(mapping, namespace, properties)

	return properties, nil
}

func flattenMapping(mapping map[string]any, prefix string, properties map[string]string) {
	for key, value := range mapping {
		fullKey := prefix + key

		switch typed := value.(type) {
		case map[string]any:
			flattenMapping(typed, fullKey+".", properties)
		case nil:
			// Explicit nulls have no string representation worth storing.
		case []any:
			// Sequences are not representable as single property values.
		default:
			properties[fullKey] = fmt.Sprintf("%v", typed)
		}
	}
}
