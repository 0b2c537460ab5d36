package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLogLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLogLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLogLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLogLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLogLevel("loud"))
}

func TestInitializeWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scalefinder.log")
	Initialize("info", path)
	t.Cleanup(func() { Log = zap.NewNop() })

	Log.Info("ranked", zap.Int("notes", 3))
	Log.Debug("hidden")
	_ = Close()

	dat, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(dat), `"msg":"ranked"`)
	assert.NotContains(t, string(dat), "hidden")
}
