package ports

import "net/netip"

// SpeakerCache persists the addresses of previously discovered speakers.
//
//go:generate mockgen -source=speaker_cache.go -destination=mocks/mock_speaker_cache.go -package=mocks
type SpeakerCache interface {
	// Load returns the cached addresses in the order they were saved.
	// found is false, with a nil error, when no cache exists yet.
	Load() (addrs []netip.Addr, found bool, err error)

	// Save replaces the whole cache with addrs.
	Save(addrs []netip.Addr) error

	// Remove deletes the cache. A missing cache is not an error.
	Remove() error
}
