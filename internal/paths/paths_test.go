package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func setConfigHome(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestAppDataDir(t *testing.T) {
	home := setConfigHome(t)
	require.Equal(t, filepath.Join(home, "ibstat"), AppDataDir())
}

func TestConfigFilePath_DefaultsToYAML(t *testing.T) {
	home := setConfigHome(t)
	require.Equal(t, filepath.Join(home, "ibstat", "config.yaml"), ConfigFilePath())
}

func TestConfigFilePath_PrefersExistingFile(t *testing.T) {
	home := setConfigHome(t)
	dir := filepath.Join(home, "ibstat")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("color = false\n"), 0600))

	require.Equal(t, filepath.Join(dir, "config.toml"), ConfigFilePath())
}

func TestLogFilePath(t *testing.T) {
	home := setConfigHome(t)
	require.Equal(t, filepath.Join(home, "ibstat", "ibstat.log"), LogFilePath())
}
