package logenv

import (
	"bytes"
	"errors"
	"testing"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestConfig_WriteTo(t *testing.T) {
	cfg := &Config{Properties: map[string]string{
		"status":           "WARN",
		"rootLogger.level": "DEBUG",
	}}

	var buf bytes.Buffer
	n, err := cfg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "rootLogger.level=DEBUG\nstatus=WARN\n", buf.String())
}

func TestConfig_WriteToLoadsBack(t *testing.T) {
	cfg := &Config{Properties: DefaultProperties()}
	cfg.Properties["appender.file.fileName"] = `C:\logs\app.log`
	cfg.Properties["appender.file.filter.marker"] = "a=b:c"
	cfg.Properties["logger.quick1.name"] = "net.example.Ünïcode"
	cfg.Properties["logger.a#b.level"] = "WARN"
	cfg.Properties["appender.stdout.layout.pattern"] = "  %m%n"

	data, err := cfg.Bytes()
	require.NoError(t, err)

	loaded, err := properties.Load(data, properties.UTF8)
	require.NoError(t, err)
	assert.Equal(t, cfg.Properties, loaded.Map())
}

func TestConfig_WriteToRejectsAmbiguousKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"equals sign", "a=b"},
		{"hash comment marker", "#c"},
		{"bang comment marker", "!c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Properties: map[string]string{
				"status": "WARN",
				tt.key:   "x",
			}}

			var buf bytes.Buffer
			_, err := cfg.WriteTo(&buf)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))
			assert.Zero(t, buf.Len())
		})
	}
}

func TestConfig_WriteToFailureIsConfigurationError(t *testing.T) {
	cfg := &Config{Properties: map[string]string{"status": "WARN"}}

	_, err := cfg.WriteTo(failingWriter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Contains(t, err.Error(), "disk full")

	_, err = cfg.Bytes()
	assert.NoError(t, err)
}

func TestConfig_Keys(t *testing.T) {
	cfg := &Config{Properties: map[string]string{"b": "1", "a": "2", "c": "3"}}
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Keys())
}

func TestDefaultProperties_ReturnsCopy(t *testing.T) {
	d := DefaultProperties()
	d["status"] = "TRACE"

	assert.Equal(t, "ERROR", DefaultProperties()["status"])
	assert.Len(t, DefaultProperties(), 8)
}
