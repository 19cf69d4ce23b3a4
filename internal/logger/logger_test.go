package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "", want: zerolog.InfoLevel},
		{in: "debug", want: zerolog.DebugLevel},
		{in: " WARN ", want: zerolog.WarnLevel},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	log, closer, err := New(path, "info")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("model", "gpt-4").Msg("config committed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "config committed")
	assert.Contains(t, string(data), "model=gpt-4")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}

func TestNewWriter_NoColor(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWriter(&buf, zerolog.DebugLevel)
	lg.Debug().Msg("plain")
	assert.Contains(t, buf.String(), "plain")
	assert.NotContains(t, buf.String(), "\x1b[")
}
