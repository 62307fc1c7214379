package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit_WritesToFileAtLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "navdir.log")

	require.NoError(t, Init(Config{Level: "info", Format: "json", OutputPath: logPath}))
	t.Cleanup(InitDefault)

	Debug("hidden message")
	Info("visible message", String("path", "/tmp/x"), Int("steps", 2), Bool("hidden", true))
	require.NoError(t, Sync())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.Contains(out, "visible message"))
	assert.True(t, strings.Contains(out, `"path":"/tmp/x"`))
	assert.True(t, strings.Contains(out, `"steps":2`))
	assert.True(t, strings.Contains(out, `"hidden":true`))
	assert.False(t, strings.Contains(out, "hidden message"))
}

func TestInit_InvalidLevelFallsBackToWarn(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "navdir.log")

	require.NoError(t, Init(Config{Level: "chatty", OutputPath: logPath}))
	t.Cleanup(InitDefault)

	assert.Equal(t, zapcore.WarnLevel, Level())
}

func TestSetLevel(t *testing.T) {
	InitDefault()
	t.Cleanup(func() { SetLevel("warn") })

	SetLevel("debug")
	assert.Equal(t, zapcore.DebugLevel, Level())

	SetLevel("not-a-level")
	assert.Equal(t, zapcore.DebugLevel, Level(), "invalid levels are ignored")
}
