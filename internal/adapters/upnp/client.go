// Package upnp talks to zone players over UPnP: device descriptions, SSDP search
// and the AVTransport and RenderingControl services.
package upnp

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/huin/goupnp"
	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var (
	_ ports.DeviceClient = (*Client)(nil)
	_ ports.Transport    = (*Client)(nil)
)

// Client implements ports.DeviceClient and ports.Transport.
// Descriptions are remembered per address so control calls do not fetch them again.
type Client struct {
	httpClient     *http.Client
	scanner        ports.Scanner
	logger         ports.Logger
	port           uint16
	connectTimeout time.Duration

	devices sync.Map // netip.Addr -> *device
}

type device struct {
	root *goupnp.RootDevice
	loc  *url.URL
}

// Option configures a Client.
type Option func(*Client)

// WithPort overrides DefaultPort.
func WithPort(port uint16) Option {
	return func(c *Client) { c.port = port }
}

// WithHTTPClient overrides goupnp.HTTPClientDefault for description requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client that discovers speakers through scanner.
func NewClient(cfg domain.Config, scanner ports.Scanner, logger ports.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:     goupnp.HTTPClientDefault,
		scanner:        scanner,
		logger:         logger,
		port:           DefaultPort,
		connectTimeout: cfg.ConnectTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect fetches the description of the speaker at addr.
func (c *Client) Connect(ctx context.Context, addr netip.Addr) (domain.Speaker, error) {
	if c.connectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.connectTimeout)
		defer cancel()
	}

	loc := descriptionURL(addr, c.port)
	root, player, err := fetchDescription(ctx, c.httpClient, loc)
	if err != nil {
		return domain.Speaker{}, errors.Join(
			domain.ErrDeviceDescription,
			zerr.With(zerr.With(err, "address", addr.String()), "url", loc.String()),
		)
	}

	c.devices.Store(addr, &device{root: root, loc: loc})
	return newSpeaker(addr, root, player), nil
}

// Discover scans the network and connects to every speaker that answers.
// Speakers whose description cannot be fetched are skipped with a warning.
// The result is sorted by room name.
func (c *Client) Discover(ctx context.Context) ([]domain.Speaker, error) {
	addrs, err := c.scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}

	found := make([]*domain.Speaker, len(addrs))
	g, gctx := errgroup.WithContext(ctx)
	for i, addr := range addrs {
		g.Go(func() error {
			sp, err := c.Connect(gctx, addr)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				c.logger.Warn(fmt.Sprintf("skipping %s: %v", addr, err))
				return nil
			}
			found[i] = &sp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	speakers := make([]domain.Speaker, 0, len(found))
	for _, sp := range found {
		if sp != nil {
			speakers = append(speakers, *sp)
		}
	}
	sortSpeakers(speakers)

	return speakers, nil
}

// sortSpeakers orders speakers by room name, then address.
func sortSpeakers(speakers []domain.Speaker) {
	slices.SortFunc(speakers, func(a, b domain.Speaker) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), a.Address.Compare(b.Address))
	})
}

// device returns the remembered description for addr, connecting first if needed.
func (c *Client) device(ctx context.Context, addr netip.Addr) (*device, error) {
	if d, ok := c.devices.Load(addr); ok {
		return d.(*device), nil
	}
	if _, err := c.Connect(ctx, addr); err != nil {
		return nil, err
	}
	d, _ := c.devices.Load(addr)
	return d.(*device), nil
}
