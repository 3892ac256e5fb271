package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the path to the Friday data directory.
// - Windows: %APPDATA%\friday
// - Other OS: ~/.friday
func DataDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "friday")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".friday"
	}
	return filepath.Join(home, ".friday")
}
