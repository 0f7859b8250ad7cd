package config_test

import (
	"testing"

	config "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/source/args"
	"github.com/0xalexb/hjarta-config/source/env"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModule_ResolvesFromGroupedSources(t *testing.T) {
	t.Parallel()

	var resolver *config.Resolver

	app := fxtest.New(t,
		fx.Provide(
			config.AsSource(func() (*args.Source, error) {
				return args.New("--http-port=8180", args.WithNamespace("app."))
			}),
			config.AsSource(func() *env.Source {
				return env.New(env.WithLookup(func(name string) (string, bool) {
					lookup := map[string]string{
						"APP_HTTP_PORT": "9090",
						"APP_HTTP_HOST": "localhost",
					}
					value, ok := lookup[name]

					return value, ok
				}))
			}),
		),
		config.Module(),
		fx.Populate(&resolver),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, resolver)

	value, ok := resolver.Lookup("app.http.port")
	require.True(t, ok)
	assert.Equal(t, "8180", value, "CLI arguments outrank environment variables")

	value, ok = resolver.Lookup("app.http.host")
	require.True(t, ok)
	assert.Equal(t, "localhost", value, "environment fills keys the CLI does not set")
}

func TestModule_WithCacheSize(t *testing.T) {
	t.Parallel()

	var resolver *config.Resolver

	app := fxtest.New(t,
		fx.Provide(
			config.AsSource(func() (*args.Source, error) {
				return args.New("--a=1")
			}),
		),
		config.Module(config.WithCacheSize(8)),
		fx.Populate(&resolver),
	)

	app.RequireStart()
	defer app.RequireStop()

	value, err := resolver.Value("a")
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}

func TestModule_MalformedArgumentsFailStartup(t *testing.T) {
	t.Parallel()

	var resolver *config.Resolver

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.AsSource(func() (*args.Source, error) {
				return args.New("http-port=8180")
			}),
		),
		config.Module(),
		fx.Populate(&resolver),
	)

	err := app.Err()

	require.Error(t, err)
	assert.ErrorContains(t, err, "malformed argument")
	assert.ErrorContains(t, err, "http-port=8180")
}
