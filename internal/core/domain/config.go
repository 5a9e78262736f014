package domain

import "time"

// DiscoveryMethod selects how speakers are found on the network.
type DiscoveryMethod string

const (
	// DiscoverySSDP searches for zone players with UPnP SSDP multicast.
	DiscoverySSDP DiscoveryMethod = "ssdp"
	// DiscoveryMDNS browses _sonos._tcp.local with multicast DNS.
	DiscoveryMDNS DiscoveryMethod = "mdns"
)

// Config is the resolved runtime configuration.
type Config struct {
	// CachePath is where discovered speaker addresses are persisted.
	CachePath string
	// Method is the network discovery mechanism.
	Method DiscoveryMethod
	// DiscoveryTimeout is how long a scan listens for replies.
	DiscoveryTimeout time.Duration
	// ConnectTimeout bounds a single device description fetch.
	ConnectTimeout time.Duration
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		CachePath:        DefaultCachePath(),
		Method:           DiscoverySSDP,
		DiscoveryTimeout: DefaultDiscoveryTimeout,
		ConnectTimeout:   DefaultConnectTimeout,
	}
}
