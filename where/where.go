// Package where resolves the directories the application reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/bencyn-cli/bencyn/constant"
	"github.com/bencyn-cli/bencyn/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory when set.
const EnvConfigPath = "BENCYN_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding bencyn.toml.
// BENCYN_CONFIG_PATH takes precedence over the platform user config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Bencyn))
}

// Cache is the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Bencyn))
}

// Logs is where log files are written when logs.write is enabled.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Temp is a scratch directory for transient files.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Bencyn))
}
