package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "ibstat"

// configCandidates are probed in order by ConfigFilePath.
var configCandidates = []string{"config.yaml", "config.yml", "config.toml"}

// AppDataDir returns the application directory for config and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
//
// The directory is not created here; writers create it on demand.
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

// ConfigFilePath returns the first existing config file in AppDataDir,
// or the default YAML location when none exists.
func ConfigFilePath() string {
	dir := AppDataDir()
	for _, name := range configCandidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, configCandidates[0])
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/ibstat/ibstat.log
//   - Linux: $XDG_CONFIG_HOME/ibstat/ibstat.log or ~/.config/ibstat/ibstat.log
//   - Windows: %AppData%\ibstat\ibstat.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "ibstat.log")
}
