package env_test

import (
	"testing"

	"github.com/0xalexb/hjarta-config/source/env"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "dotted key",
			key:      "app.http.enabled",
			expected: "APP_HTTP_ENABLED",
		},
		{
			name:     "dashed key",
			key:      "http-enabled",
			expected: "HTTP_ENABLED",
		},
		{
			name:     "mixed separators",
			key:      "app.http-port",
			expected: "APP_HTTP_PORT",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, env.VarName(testCase.key))
		})
	}
}

func TestSource_Lookup_InjectedEnvironment(t *testing.T) {
	t.Parallel()

	environment := map[string]string{
		"APP_HTTP_ENABLED": "true",
	}

	src := env.New(env.WithLookup(func(name string) (string, bool) {
		value, ok := environment[name]

		return value, ok
	}))

	value, ok := src.Lookup("app.http.enabled")
	require.True(t, ok)
	assert.Equal(t, "true", value)

	value, ok = src.Lookup("app.http-enabled")
	require.True(t, ok)
	assert.Equal(t, "true", value, "dashed spelling maps to the same variable")

	_, ok = src.Lookup("app.http.port")
	assert.False(t, ok)
}

func TestSource_Lookup_ProcessEnvironment(t *testing.T) {
	t.Setenv("HJARTA_CONFIG_TEST_VALUE", "from-env")

	src := env.New()

	value, ok := src.Lookup("hjarta.config.test.value")
	require.True(t, ok)
	assert.Equal(t, "from-env", value)
}

func TestSource_NameAndOrdinal(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		src := env.New()

		assert.Equal(t, env.DefaultName, src.Name())
		assert.Equal(t, env.DefaultOrdinal, src.Ordinal())
	})

	t.Run("overridden", func(t *testing.T) {
		t.Parallel()

		src := env.New(env.WithName("container-env"), env.WithOrdinal(350))

		assert.Equal(t, "container-env", src.Name())
		assert.Equal(t, 350, src.Ordinal())
	})
}
