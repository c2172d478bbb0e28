package sourceenv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvSource_Load(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		environ  []string
		expected map[string]string
	}{
		{
			name:    "keys kept verbatim",
			environ: []string{"APP_LOGGING_STATUS=DEBUG", "HOME=/root"},
			expected: map[string]string{
				"APP_LOGGING_STATUS": "DEBUG",
				"HOME":               "/root",
			},
		},
		{
			name:    "value containing equals sign",
			environ: []string{"APP_LOGGING_APPENDER_X_LAYOUT_PATTERN=a=b"},
			expected: map[string]string{
				"APP_LOGGING_APPENDER_X_LAYOUT_PATTERN": "a=b",
			},
		},
		{
			name:    "malformed and empty-key entries skipped",
			environ: []string{"NOEQUALS", "=value", "OK=1"},
			expected: map[string]string{
				"OK": "1",
			},
		},
		{
			name:    "empty value kept",
			environ: []string{"APP_LOGGING_STATUS="},
			expected: map[string]string{
				"APP_LOGGING_STATUS": "",
			},
		},
		{
			name:    "prefix filters case-insensitively without stripping",
			opts:    Options{Prefix: "app_logging_"},
			environ: []string{"APP_LOGGING_STATUS=WARN", "App_Logging_Foo=1", "PATH=/bin"},
			expected: map[string]string{
				"APP_LOGGING_STATUS": "WARN",
				"App_Logging_Foo":    "1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			environ := tt.environ
			tt.opts.Environ = func() []string { return environ }

			result, err := New(tt.opts).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEnvSource_LoadReadsProcessEnvironment(t *testing.T) {
	t.Setenv("APP_LOGGING_SOURCEENV_TEST", "TRACE")

	result, err := New(Options{}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TRACE", result["APP_LOGGING_SOURCEENV_TEST"])
}

func TestEnvSource_LoadIsNotCached(t *testing.T) {
	source := New(Options{})

	t.Setenv("APP_LOGGING_SOURCEENV_FRESH", "one")
	first, err := source.Load(context.Background())
	require.NoError(t, err)

	t.Setenv("APP_LOGGING_SOURCEENV_FRESH", "two")
	second, err := source.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "one", first["APP_LOGGING_SOURCEENV_FRESH"])
	assert.Equal(t, "two", second["APP_LOGGING_SOURCEENV_FRESH"])
}

func TestEnvSource_Name(t *testing.T) {
	assert.Equal(t, "env", New(Options{}).Name())
}
