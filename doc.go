// Package config provides layered configuration resolution over named,
// prioritized sources.
//
// A Source is any named provider of string configuration values with a
// numeric ordinal; a Resolver consults its sources in descending ordinal
// order and answers point lookups with the first value found. Sources are
// immutable after construction, so a Resolver is safe for concurrent reads
// without locking.
//
// # Sources
//
// Three source implementations ship with the package:
//   - source/args: CLI-style arguments captured as a single comma-separated
//     string ("--http-enabled=true,--http-port=8180"), the highest-priority
//     source by default
//   - source/env: process environment variables
//   - source/yamlfile: a YAML file flattened into dotted property keys
//
// Custom sources only need to implement the three-method Source interface.
//
// # Key conventions
//
// Values are stored under canonical dotted property keys ("http.enabled").
// The keys package provides the normalization and dash-to-dot translation
// helpers shared by the sources, plus an alias table type for installations
// that resolve the same value under more than one spelling.
//
// # Example
//
// A typical wiring:
//
//	cli, err := args.New(os.Getenv("APP_CONFIG_ARGS"), args.WithNamespace("app."))
//	if err != nil {
//	    // Handle error: a malformed --argument token.
//	}
//
//	resolver, err := config.NewResolver([]config.Source{cli, env.New()}, 0)
//	value, ok := resolver.Lookup("app.http.enabled")
//
// For Fx applications, Module wires every source contributed to the
// "config.sources" value group into a single Resolver.
package config
