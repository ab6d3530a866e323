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

func TestNewNonVerboseReturnsNop(t *testing.T) {
	logger, err := New(Config{Verbose: false})
	require.NoError(t, err)
	require.NotNil(t, logger)

	// Nop 日志器不启用任何级别
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewVerboseLevels(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantDebug bool
	}{
		{name: "info", cfg: Config{Verbose: true}, wantDebug: false},
		{name: "debug", cfg: Config{Verbose: true, Debug: true}, wantDebug: true},
		{name: "json", cfg: Config{Verbose: true, JSON: true}, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
			assert.Equal(t, tt.wantDebug, logger.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNewWritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubemove.log")

	logger, err := New(Config{Verbose: true, JSON: true, OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Named("MovementSystem").Info("cube moved", Vec3("position", 0.5, -1.48, 0))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.True(t, strings.Contains(line, `"logger":"MovementSystem"`), line)
	assert.True(t, strings.Contains(line, `"position":[0.5,-1.48,0]`), line)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	logger, err := New(Config{Verbose: true})
	require.NoError(t, err)
	assert.Same(t, logger, OrNop(logger))
}
