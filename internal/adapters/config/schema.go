package config

// File represents the structure of the sonos config.yaml file.
type File struct {
	Cache     CacheDTO     `yaml:"cache"`
	Discovery DiscoveryDTO `yaml:"discovery"`
}

// CacheDTO configures the speaker address cache.
type CacheDTO struct {
	Path string `yaml:"path"`
}

// DiscoveryDTO configures network discovery.
// Durations use Go syntax, e.g. "2s" or "1500ms".
type DiscoveryDTO struct {
	Method         string `yaml:"method"`
	Timeout        string `yaml:"timeout"`
	ConnectTimeout string `yaml:"connectTimeout"`
}
