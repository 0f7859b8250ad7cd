package config

import (
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-config/logging"

	"go.uber.org/fx"
)

// SourcesGroup is the Fx value group that source constructors contribute to.
const SourcesGroup = "config.sources"

// AsSource annotates a source constructor so its result joins the resolver's
// source group. The constructor may return (S, error) for any S implementing
// Source.
//
//nolint:ireturn // any is the standard parameter type for fx annotation helpers
func AsSource(constructor any) any {
	return fx.Annotate(
		constructor,
		fx.As(new(Source)),
		fx.ResultTags(`group:"`+SourcesGroup+`"`),
	)
}

// Module creates an Fx module that builds a Resolver from every Source
// contributed to the SourcesGroup value group.
// When WithLogLevel is passed, the process default slog logger is replaced
// with a JSON logger at that level before the graph is built.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(opts ...Option) fx.Option {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.LogLevel != "" {
		slog.SetDefault(logging.New(options.LogLevel, os.Stderr))
	}

	return fx.Module("config",
		fx.Provide(
			fx.Annotate(
				func(sources []Source) (*Resolver, error) {
					return NewResolver(sources, options.CacheSize)
				},
				fx.ParamTags(`group:"`+SourcesGroup+`"`),
			),
		),
	)
}
