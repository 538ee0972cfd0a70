// Package where resolves the directories and files the application owns.
// Directory accessors create the directory on first use.
package where

import (
	"os"
	"path/filepath"

	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory when set.
const EnvConfigPath = "EPISAN_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honoring EPISAN_CONFIG_PATH
// over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}
	return ensureDir(filepath.Join(lo.Must(os.UserConfigDir()), constant.Episan))
}

// Cache returns the cache directory. When the platform reports none, the
// cache lands next to the working directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Episan))
}

// Logs returns the log directory.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Sources returns the directory holding the custom catalog scripts.
func Sources() string {
	return ensureDir(filepath.Join(Config(), "sources"))
}

// Downloads returns the directory grabbed releases are saved to.
func Downloads() string {
	return ensureDir(filepath.Join(Config(), "downloads"))
}

// Seen returns the path of the grab history store.
func Seen() string {
	return filepath.Join(Config(), "seen.json")
}

// Queue returns the path of the pending-handoff retry queue.
func Queue() string {
	return filepath.Join(Config(), "queue.json")
}

// Queries returns the path of the search suggestion store.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp returns a stable scratch directory under the system temp root.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Episan))
}
