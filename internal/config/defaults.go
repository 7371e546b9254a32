package config

import (
	"os"
	"path/filepath"
)

const (
	appDir     = "campus"
	rosterFile = "roster.yaml"
)

// DefaultConfigPath returns the campus directory under the user's
// configuration root (XDG_CONFIG_HOME, ~/Library/Application Support or
// %AppData%), or ./campus/config when no root can be determined.
func DefaultConfigPath() string {
	root, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", appDir, "config")
	}

	return filepath.Join(root, appDir)
}

// DefaultRosterPath returns the roster file inside DefaultConfigPath.
func DefaultRosterPath() string {
	return filepath.Join(DefaultConfigPath(), rosterFile)
}
