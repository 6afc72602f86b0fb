package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"frontdesk/config"
	"frontdesk/shared/constant"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput points the package writer at a buffer and restores the global logger state afterwards.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	originalStdout, originalLogger, originalLevel := stdout, log.Logger, zerolog.GlobalLevel()
	stdout = &buf

	t.Cleanup(func() {
		stdout = originalStdout
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	})

	return &buf
}

func lastLine(buf *bytes.Buffer) string {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	return lines[len(lines)-1]
}

func TestInitLoggerWritesConsoleLines(t *testing.T) {
	buf := captureOutput(t)

	InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
	assert.NotNil(t, zerolog.ErrorStackMarshaler)
	assert.Contains(t, buf.String(), "Zerolog initialized.")
	assert.False(t, json.Valid([]byte(lastLine(buf))))
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "unset falls back to trace", level: "", want: zerolog.TraceLevel},
		{name: "unknown falls back to trace", level: "chatty", want: zerolog.TraceLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLogLevelProductionWritesJSON(t *testing.T) {
	buf := captureOutput(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "frontdesk"

	InitLogger()
	SetLogLevel(cfg)
	buf.Reset()

	log.Info().Str("booking", "BK1").Msg("booking stored")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lastLine(buf)), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "frontdesk", entry["app"])
	assert.Equal(t, "BK1", entry["booking"])
	assert.Equal(t, "booking stored", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestSetLogLevelDevelopmentKeepsConsole(t *testing.T) {
	buf := captureOutput(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.App.Name = "frontdesk"

	InitLogger()
	SetLogLevel(cfg)
	buf.Reset()

	log.Debug().Msg("room list refreshed")

	line := lastLine(buf)
	assert.False(t, json.Valid([]byte(line)))
	assert.Contains(t, line, "room list refreshed")
	assert.Contains(t, line, "frontdesk")
}

func TestSetLogLevelFiltersBelowLevel(t *testing.T) {
	buf := captureOutput(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "warn"

	InitLogger()
	SetLogLevel(cfg)
	buf.Reset()

	log.Info().Msg("cache hit for rooms")
	log.Warn().Msg("skipping unknown room")

	assert.NotContains(t, buf.String(), "cache hit for rooms")
	assert.Contains(t, buf.String(), "skipping unknown room")
}

func TestErrorWithStackRecordsStack(t *testing.T) {
	buf := captureOutput(t)

	InitLogger()
	log.Logger = zerolog.New(buf)
	buf.Reset()

	ErrorWithStack(errors.New("room sync failed"))

	var entry struct {
		Level string           `json:"level"`
		Error string           `json:"error"`
		Stack []map[string]any `json:"stack"`
	}
	require.NoError(t, json.Unmarshal([]byte(lastLine(buf)), &entry))
	assert.Equal(t, "error", entry.Level)
	assert.Equal(t, "room sync failed", entry.Error)
	require.NotEmpty(t, entry.Stack)
	assert.Contains(t, entry.Stack[0], "func")
}
