package config

import (
	"os"

	"github.com/spf13/viper"
)

// DefaultDatabasePath is where the snapshot cache lives unless configured.
const DefaultDatabasePath = "~/.local/share/sudsy/sudsy.db"

// SourceURL resolves the job source base URL. Precedence:
// 1. Viper configuration (config file or SUDSY_ env vars)
// 2. The SUDSY_SOURCE_URL environment variable
func SourceURL() string {
	if v := viper.GetString("source.url"); v != "" {
		return v
	}
	return os.Getenv("SUDSY_SOURCE_URL")
}

// DatabasePath resolves the snapshot cache path, expanding ~ and env vars.
func DatabasePath() string {
	path := viper.GetString("storage.database")
	if path == "" {
		path = DefaultDatabasePath
	}
	return ExpandPath(path)
}
