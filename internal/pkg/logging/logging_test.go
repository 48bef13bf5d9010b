package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-5e/internal/config"
	"github.com/KirkDiggler/pokemon-5e/internal/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, logging.ParseLevel(tc.in))
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("creature fetched", "name", "pikachu")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "creature fetched", record["msg"])
	assert.Equal(t, "pikachu", record["name"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LoggingConfig{Level: "debug", Format: "text"}, &buf)

	logger.Debug("cache miss", "url", "https://pokeapi.co/api/v2/move/85/")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=\"cache miss\"")
}

func TestInstall(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	logging.Install(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)

	slog.Info("dropped")
	slog.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
