package ports

import (
	"context"
	"net/netip"
	"time"

	"go.trai.ch/sonos/internal/core/domain"
)

// DeviceClient connects to speakers on the local network.
//
//go:generate mockgen -source=device.go -destination=mocks/mock_device.go -package=mocks
type DeviceClient interface {
	// Connect describes the speaker at addr.
	Connect(ctx context.Context, addr netip.Addr) (domain.Speaker, error)

	// Discover scans the network and returns every speaker that answered.
	Discover(ctx context.Context) ([]domain.Speaker, error)
}

// Transport issues playback and volume commands to a resolved speaker.
type Transport interface {
	// Track returns the track currently playing.
	Track(ctx context.Context, speaker domain.Speaker) (domain.Track, error)

	// Next skips to the next track in the queue.
	Next(ctx context.Context, speaker domain.Speaker) error

	// Previous goes back to the previous track in the queue.
	Previous(ctx context.Context, speaker domain.Speaker) error

	// Seek moves playback of the current track to position.
	Seek(ctx context.Context, speaker domain.Speaker, position time.Duration) error

	// Volume returns the master volume and mute state.
	Volume(ctx context.Context, speaker domain.Speaker) (domain.Volume, error)

	// SetVolume sets the master volume.
	SetVolume(ctx context.Context, speaker domain.Speaker, level uint8) error
}

// Scanner finds the addresses of speakers on the local network.
type Scanner interface {
	// Scan listens for speakers until ctx is done or the scan window closes.
	Scan(ctx context.Context) ([]netip.Addr, error)
}
