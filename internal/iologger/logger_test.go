package iologger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		res   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, parseLevel(v.level), v.level)
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Format: "json", Level: "warn"}
	log := slog.New(newHandler(&buf, cfg))

	log.Info("hidden")
	log.Warn("shown", "records", 3)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"records":3`)

	buf.Reset()
	cfg.Format = "text"
	slog.New(newHandler(&buf, cfg)).Error("plain")
	assert.True(t, strings.Contains(buf.String(), "msg=plain"))

	buf.Reset()
	cfg.Format = "tint"
	slog.New(newHandler(&buf, cfg)).Error("unknown")
	assert.Contains(t, buf.String(), `"msg":"unknown"`)
}

func TestInitFile(t *testing.T) {
	defaultLog := slog.Default()
	defer slog.SetDefault(defaultLog)

	dir := t.TempDir()
	cfg := config.New().Log
	require.NoError(t, Init(dir, cfg, false))
	slog.Info("first")
	require.NoError(t, Init(dir, cfg, true))
	slog.Info("second")

	data, err := os.ReadFile(filepath.Join(dir, "gnprofiles.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")

	require.NoError(t, Init(dir, cfg, false))
	data, err = os.ReadFile(LogPath(dir))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "first")

	err = Init(filepath.Join(dir, "missing"), cfg, false)
	assert.Error(t, err)
}
