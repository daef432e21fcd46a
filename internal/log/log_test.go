package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_DisabledByDefault(t *testing.T) {
	defaultLogger = nil
	// Must not panic without a logger.
	Info(CatRun, "ignored", "day", 1)
}

func TestLog_FormatsFields(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	Info(CatRun, "part finished", "day", 5, "part", 2)
	require.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2} \[INFO\] \[run\] part finished day=5 part=2\n$`, buf.String())
}

func TestLog_OddFieldCount(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	Warn(CatInput, "odd", "path")
	require.Contains(t, buf.String(), "path=<missing>")
}

func TestLog_ErrorErr(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	ErrorErr(CatGen, "scan failed", errors.New("boom"), "dir", "days")
	ErrorErr(CatGen, "no error", nil)
	require.Contains(t, buf.String(), "[ERROR] [gen] scan failed dir=days error=boom")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_MinLevelAndEnabled(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	SetMinLevel(LevelWarn)
	Debug(CatCache, "hidden")
	Info(CatCache, "hidden")
	Error(CatCache, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatCache, "muted")
	require.Empty(t, buf.String())
}

func TestLevelForVerbosity(t *testing.T) {
	require.Equal(t, LevelWarn, LevelForVerbosity(0))
	require.Equal(t, LevelInfo, LevelForVerbosity(1))
	require.Equal(t, LevelDebug, LevelForVerbosity(2))
	require.Equal(t, LevelDebug, LevelForVerbosity(5))
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestInitWithTeaLog_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := InitWithTeaLog(path, "aoc")
	require.NoError(t, err)

	Info(CatConfig, "loaded", "file", "config.yaml")
	cleanup()
	defaultLogger = nil

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] loaded file=config.yaml")
}
