package config

// Options holds configuration settings for the config module.
type Options struct {
	LogLevel  string
	CacheSize int
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithLogLevel sets the log level for the default logger installed by Module.
// Valid levels are: "debug", "info", "warn", "error".
// If not set, the process default logger is left untouched.
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithCacheSize enables the resolver's LRU lookup cache with the given number
// of entries. A size of zero or less leaves caching disabled.
func WithCacheSize(size int) Option {
	return func(opts *Options) {
		opts.CacheSize = size
	}
}
