package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheRead is returned when the speaker cache exists but cannot be read.
	ErrCacheRead = zerr.New("failed to read speaker cache")

	// ErrCacheCorrupt is returned when the speaker cache content cannot be decoded.
	// Run "sonos rooms --invalidate" or "sonos clean" to rebuild it.
	ErrCacheCorrupt = zerr.New("speaker cache is corrupt, run 'sonos rooms --invalidate' to rebuild it")

	// ErrCacheWrite is returned when the speaker cache cannot be written.
	ErrCacheWrite = zerr.New("failed to write speaker cache")

	// ErrCacheRemove is returned when the speaker cache cannot be removed.
	ErrCacheRemove = zerr.New("failed to remove speaker cache")

	// ErrNetworkDiscovery is returned when the network scan for speakers fails.
	ErrNetworkDiscovery = zerr.New("failed to discover speakers on the network")

	// ErrAddressConnect is returned when a speaker address cannot be reached.
	ErrAddressConnect = zerr.New("failed to connect to speaker")

	// ErrNoSpeakerMatch is returned when no speaker name is close enough to the query.
	ErrNoSpeakerMatch = zerr.New("couldn't find a speaker by that name")

	// ErrNotConfirmed is returned when the user declines the suggested speaker.
	ErrNotConfirmed = zerr.New("suggested speaker was not confirmed")

	// ErrNoControllerSpecified is returned when a command needs a speaker but none was given.
	ErrNoControllerSpecified = zerr.New("no controller specified, pass -c with an IP or room name")

	// ErrDeviceDescription is returned when a speaker's device description cannot be fetched or decoded.
	ErrDeviceDescription = zerr.New("failed to read device description")

	// ErrDeviceControl is returned when a control action on a speaker fails.
	ErrDeviceControl = zerr.New("speaker control request failed")

	// ErrInvalidTimestamp is returned when a seek target is not hh:mm:ss, mm:ss or ss.
	ErrInvalidTimestamp = zerr.New("invalid timestamp, expected hh:mm:ss or mm:ss")

	// ErrInvalidVolume is returned when a volume is outside 0-100.
	ErrInvalidVolume = zerr.New("invalid volume, expected a number between 0 and 100")

	// ErrConfigRead is returned when the config file cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when the config file cannot be parsed.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file contains unsupported values.
	ErrConfigInvalid = zerr.New("invalid configuration")
)
