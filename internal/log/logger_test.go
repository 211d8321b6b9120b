package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogger_FileLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "ibstat.log")

	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("loaded %d reports", 3)
	logger.Warn("warning message")
	logger.Error("error message")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logContent := string(content)
	require.Contains(t, logContent, "DEBUG: debug message")
	require.Contains(t, logContent, "INFO: loaded 3 reports")
	require.Contains(t, logContent, "WARN: warning message")
	require.Contains(t, logContent, "ERROR: error message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	out := buf.String()
	require.NotContains(t, out, "DEBUG")
	require.NotContains(t, out, "INFO")
	require.Contains(t, out, "WARN: warning message")
	require.Contains(t, out, "ERROR: error message")
}

func TestLogger_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)
	logger.now = func() time.Time {
		return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	}

	logger.Info("hello %s", "world")

	require.Equal(t, "[2024-03-01 09:30:00] INFO: hello world\n", buf.String())
}

func TestLogger_CloseWriterLoggerIsNoop(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)

	require.NoError(t, logger.Close())
	logger.Info("still writing")
	require.Contains(t, buf.String(), "still writing")
}

func TestLogger_WritesAfterCloseAreDropped(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "ibstat.log")
	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	logger.Info("before")
	require.NoError(t, logger.Close())
	logger.Info("after")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(content), "before"))
	require.False(t, strings.Contains(string(content), "after"))
}

func TestLogger_NilIsSafe(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	require.NoError(t, logger.Close())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
