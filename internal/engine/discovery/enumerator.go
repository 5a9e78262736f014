// Package discovery produces the list of candidate speakers, either from the
// address cache or from a live network scan.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Enumerator lists the speakers on the network.
type Enumerator struct {
	cache    ports.SpeakerCache
	client   ports.DeviceClient
	progress ports.ProgressIndicator
	logger   ports.Logger
	tracer   ports.Tracer
}

// NewEnumerator creates a new Enumerator with the given dependencies.
func NewEnumerator(
	cache ports.SpeakerCache,
	client ports.DeviceClient,
	progress ports.ProgressIndicator,
	logger ports.Logger,
	tracer ports.Tracer,
) *Enumerator {
	return &Enumerator{
		cache:    cache,
		client:   client,
		progress: progress,
		logger:   logger,
		tracer:   tracer,
	}
}

// Enumerate returns every known speaker.
//
// With useCache set, a cache hit connects to each cached address and fails as a whole
// if any of them is unreachable. A corrupt cache is an error, not a miss.
// Otherwise, or on a cache miss, the network is scanned and a non-empty result is
// written back to the cache.
func (e *Enumerator) Enumerate(ctx context.Context, useCache, showProgress bool) ([]domain.Speaker, error) {
	ctx, span := e.tracer.Start(ctx, "discovery.enumerate")
	defer span.End()
	span.SetAttribute("use_cache", useCache)

	speakers, err := e.enumerate(ctx, useCache, showProgress)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("speakers", len(speakers))
	return speakers, nil
}

func (e *Enumerator) enumerate(ctx context.Context, useCache, showProgress bool) ([]domain.Speaker, error) {
	if useCache {
		addrs, found, err := e.cache.Load()
		if err != nil {
			return nil, err
		}
		if found {
			return e.fromCache(ctx, addrs)
		}
	}
	return e.scan(ctx, showProgress)
}

func (e *Enumerator) fromCache(ctx context.Context, addrs []netip.Addr) ([]domain.Speaker, error) {
	ctx, span := e.tracer.Start(ctx, "discovery.cache")
	defer span.End()
	span.SetAttribute("addresses", len(addrs))

	speakers := make([]domain.Speaker, len(addrs))
	g, ctx := errgroup.WithContext(ctx)
	for i, addr := range addrs {
		g.Go(func() error {
			s, err := e.client.Connect(ctx, addr)
			if err != nil {
				return errors.Join(domain.ErrAddressConnect, zerr.With(err, "address", addr.String()))
			}
			speakers[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return speakers, nil
}

func (e *Enumerator) scan(ctx context.Context, showProgress bool) ([]domain.Speaker, error) {
	ctx, span := e.tracer.Start(ctx, "discovery.scan")
	defer span.End()

	var stop func()
	if showProgress {
		stop = e.progress.Start(ctx)
	}
	speakers, err := e.client.Discover(ctx)
	if stop != nil {
		stop()
	}

	if err != nil {
		err = errors.Join(domain.ErrNetworkDiscovery, err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("speakers", len(speakers))

	// An empty scan still replaces the cache so stale addresses do not survive an invalidate.
	if err := e.cache.Save(domain.Addresses(speakers)); err != nil {
		e.logger.Warn(fmt.Sprintf("could not update speaker cache: %v", err))
	}
	if speakers == nil {
		speakers = []domain.Speaker{}
	}
	return speakers, nil
}
