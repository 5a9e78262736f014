package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppDirName is the name of the per-user configuration directory.
	AppDirName = "sonos"

	// ConfigFileName is the name of the configuration file inside AppDirName.
	ConfigFileName = "config.yaml"

	// ConfigEnvVar overrides the configuration file location.
	ConfigEnvVar = "SONOS_CONFIG"

	// CacheFileName is the name of the speaker address cache file.
	CacheFileName = "sonos-cli-speakers"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

const (
	// DefaultDiscoveryTimeout is the default window a network scan listens for replies.
	DefaultDiscoveryTimeout = 2 * time.Second

	// DefaultConnectTimeout bounds a single device description fetch.
	DefaultConnectTimeout = 3 * time.Second
)

// DefaultCachePath returns the default location of the speaker cache.
// It joins the system temp directory and sonos-cli-speakers.
func DefaultCachePath() string {
	return filepath.Join(os.TempDir(), CacheFileName)
}

// DefaultConfigPath returns the default location of the configuration file.
// It honours SONOS_CONFIG and falls back to <user config dir>/sonos/config.yaml.
// An empty string is returned when no user config directory can be determined.
func DefaultConfigPath() string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppDirName, ConfigFileName)
}
