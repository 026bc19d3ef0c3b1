package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ekisa-team/voxkit/internal/envvar"
	"github.com/ekisa-team/voxkit/internal/xfs"
)

// DefaultConfigPath returns the default path for the voxkit config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "voxkit", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "voxkit")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "voxkit")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "voxkit")
		}
		return filepath.Join(home, ".config", "voxkit")
	}
}

// DefaultCacheDir returns the default path for the voxkit audio cache.
func DefaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "voxkit", "cache")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "voxkit", "cache")
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "voxkit")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, "voxkit")
		}
		return filepath.Join(home, ".cache", "voxkit")
	}
}

// ResolveCacheDir returns the audio cache directory.
// Precedence:
// 1. VOXKIT_CACHE_DIR environment variable.
// 2. Cache.Dir field in the config.
// 3. Default cache path.
func ResolveCacheDir(cfg *Config) string {
	if p := os.Getenv(envvar.VoxkitCacheDir); p != "" {
		return xfs.ExpandTilde(p)
	}
	if cfg != nil && cfg.Cache.Dir != "" {
		return xfs.ExpandTilde(cfg.Cache.Dir)
	}
	return xfs.ExpandTilde(DefaultCacheDir())
}
