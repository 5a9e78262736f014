// Package config provides the configuration loader for sonos.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// minSSDPTimeout is the shortest scan window SSDP can announce in its MX header.
const minSSDPTimeout = time.Second

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, fs: NewOSFS()}
}

// NewLoaderWithFS creates a Loader reading through fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load reads the config file at path and overlays it on domain.DefaultConfig().
// An empty path or a missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Join(domain.ErrConfigRead, zerr.With(err, "path", path))
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, errors.Join(domain.ErrConfigParse, zerr.With(err, "path", path))
	}

	if err := l.apply(&cfg, &file, filepath.Dir(path)); err != nil {
		return cfg, zerr.With(err, "path", path)
	}

	return cfg, nil
}

func (l *Loader) apply(cfg *domain.Config, file *File, baseDir string) error {
	if p := strings.TrimSpace(file.Cache.Path); p != "" {
		resolved, err := resolvePath(p, baseDir)
		if err != nil {
			return invalid(err.Error(), "cache.path", p)
		}
		cfg.CachePath = resolved
	}

	switch m := domain.DiscoveryMethod(strings.ToLower(strings.TrimSpace(file.Discovery.Method))); m {
	case "":
	case domain.DiscoverySSDP, domain.DiscoveryMDNS:
		cfg.Method = m
	default:
		return invalid("unknown discovery method", "discovery.method", file.Discovery.Method)
	}

	if file.Discovery.Timeout != "" {
		d, err := parsePositiveDuration(file.Discovery.Timeout)
		if err != nil {
			return invalid(err.Error(), "discovery.timeout", file.Discovery.Timeout)
		}
		cfg.DiscoveryTimeout = d
	}

	if file.Discovery.ConnectTimeout != "" {
		d, err := parsePositiveDuration(file.Discovery.ConnectTimeout)
		if err != nil {
			return invalid(err.Error(), "discovery.connectTimeout", file.Discovery.ConnectTimeout)
		}
		cfg.ConnectTimeout = d
	}

	if cfg.Method == domain.DiscoverySSDP && cfg.DiscoveryTimeout < minSSDPTimeout {
		l.Logger.Warn(fmt.Sprintf("discovery.timeout %s is below the SSDP minimum, using %s",
			cfg.DiscoveryTimeout, minSSDPTimeout))
		cfg.DiscoveryTimeout = minSSDPTimeout
	}

	return nil
}

// invalid reports a bad config value as domain.ErrConfigInvalid.
func invalid(reason, key, value string) error {
	return errors.Join(domain.ErrConfigInvalid, zerr.With(zerr.New(key+": "+reason), key, value))
}

// resolvePath expands a leading ~ and makes relative paths relative to the config file.
func resolvePath(p, baseDir string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(baseDir, p)
	}
	return filepath.Clean(p), nil
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, zerr.New("duration must be positive")
	}
	return d, nil
}
