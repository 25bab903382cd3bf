// Package paths centralizes where the CLI keeps its files on each platform.
package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "cdp"

// ConfigFilePath returns the default config file location, consulted when
// --config is not given.
//   - macOS: ~/.config/cdp/config.yaml
//   - Linux: $XDG_CONFIG_HOME/cdp/config.yaml or ~/.config/cdp/config.yaml
func ConfigFilePath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDirName, "config.yaml"), nil
}

// LogFilePath returns where the debug log is written.
//   - macOS: ~/Library/Caches/cdp/cdp.log
//   - Linux: $XDG_CACHE_HOME/cdp/cdp.log or ~/.cache/cdp/cdp.log
//   - Windows: %LocalAppData%\cdp\cdp.log
func LogFilePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, "cdp.log"), nil
}
