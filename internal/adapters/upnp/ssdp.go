package upnp

import (
	"context"
	"errors"
	"net/netip"
	"time"

	"github.com/huin/goupnp/httpu"
	"github.com/huin/goupnp/ssdp"
	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/zerr"
)

// SearchTarget is the SSDP search target zone players answer to.
const SearchTarget = "urn:schemas-upnp-org:device:ZonePlayer:1"

const (
	searchSends = 3
	// mxGrace keeps the context deadline above the announced MX so it does not round down.
	mxGrace = 500 * time.Millisecond
)

var _ ports.Scanner = (*SSDPScanner)(nil)

// SSDPScanner finds zone players with an SSDP M-SEARCH.
type SSDPScanner struct {
	window time.Duration
}

// NewSSDPScanner creates a scanner listening for window. SSDP cannot wait less than a second.
func NewSSDPScanner(window time.Duration) *SSDPScanner {
	return &SSDPScanner{window: max(window, time.Second)}
}

// Scan multicasts a search and returns the address of every responding zone player.
func (s *SSDPScanner) Scan(ctx context.Context) ([]netip.Addr, error) {
	client, err := httpu.NewHTTPUClient()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open SSDP socket")
	}
	defer func() { _ = client.Close() }()

	searchCtx, cancel := context.WithTimeout(ctx, s.window+mxGrace)
	defer cancel()

	responses, err := ssdp.RawSearch(searchCtx, client, SearchTarget, searchSends)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, zerr.Wrap(err, "SSDP search failed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var locations []string
	for _, resp := range responses {
		loc, err := resp.Location()
		if err != nil {
			continue
		}
		locations = append(locations, loc.Hostname())
	}
	return uniqueAddrs(locations), nil
}

// uniqueAddrs parses hosts into addresses, dropping invalid and repeated ones.
func uniqueAddrs(hosts []string) []netip.Addr {
	seen := make(map[netip.Addr]struct{}, len(hosts))
	addrs := make([]netip.Addr, 0, len(hosts))
	for _, h := range hosts {
		addr, err := netip.ParseAddr(h)
		if err != nil {
			continue
		}
		addr = addr.Unmap()
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		addrs = append(addrs, addr)
	}
	return addrs
}
