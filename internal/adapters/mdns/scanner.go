// Package mdns finds zone players by browsing _sonos._tcp.local with multicast DNS.
package mdns

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"strings"
	"time"

	"github.com/miekg/dns"
	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service is the DNS-SD service type zone players advertise.
const Service = "_sonos._tcp.local."

// unicastResponse is the QU bit: responders answer the querying socket directly.
const unicastResponse = 1 << 15

const maxPacketSize = 9000

var _ ports.Scanner = (*Scanner)(nil)

// Group is the IPv4 mDNS multicast destination.
var Group = netip.MustParseAddrPort("224.0.0.251:5353")

// Scanner implements ports.Scanner with a one-shot mDNS PTR query.
type Scanner struct {
	window time.Duration
	dest   netip.AddrPort
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithDestination sends the query to dest instead of Group.
func WithDestination(dest netip.AddrPort) Option {
	return func(s *Scanner) { s.dest = dest }
}

// NewScanner creates a Scanner collecting answers for window.
func NewScanner(window time.Duration, opts ...Option) *Scanner {
	s := &Scanner{window: window, dest: Group}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan sends a PTR query for Service and returns the addresses found in the
// answers, in arrival order and without duplicates.
func (s *Scanner) Scan(ctx context.Context) ([]netip.Addr, error) {
	query, err := newQuery()
	if err != nil {
		return nil, err
	}

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open mDNS socket")
	}
	defer func() { _ = conn.Close() }()

	deadline := time.Now().Add(s.window)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, zerr.Wrap(err, "failed to set mDNS read deadline")
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })
	defer stop()

	if _, err := conn.WriteToUDPAddrPort(query, s.dest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to send mDNS query"), "destination", s.dest.String())
	}

	var (
		addrs []netip.Addr
		seen  = make(map[netip.Addr]struct{})
		buf   = make([]byte, maxPacketSize)
	)
	for {
		n, from, err := conn.ReadFromUDPAddrPort(buf)
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				break
			}
			return nil, zerr.Wrap(err, "failed to read mDNS response")
		}

		for _, addr := range speakerAddrs(buf[:n], from.Addr()) {
			if _, ok := seen[addr]; ok {
				continue
			}
			seen[addr] = struct{}{}
			addrs = append(addrs, addr)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return addrs, nil
}

func newQuery() ([]byte, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(Service, dns.TypePTR)
	msg.Id = 0
	msg.RecursionDesired = false
	msg.Question[0].Qclass |= unicastResponse

	packed, err := msg.Pack()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to pack mDNS query")
	}
	return packed, nil
}

// speakerAddrs extracts A and AAAA records from a response that answers for Service.
// A response without address records is attributed to its sender.
func speakerAddrs(packet []byte, sender netip.Addr) []netip.Addr {
	var msg dns.Msg
	if err := msg.Unpack(packet); err != nil || !msg.Response || !answersService(&msg) {
		return nil
	}

	var addrs []netip.Addr
	for _, rr := range append(msg.Answer, msg.Extra...) {
		var ip net.IP
		switch r := rr.(type) {
		case *dns.A:
			ip = r.A
		case *dns.AAAA:
			ip = r.AAAA
		default:
			continue
		}
		if addr, ok := netip.AddrFromSlice(ip); ok {
			addrs = append(addrs, addr.Unmap())
		}
	}

	if len(addrs) == 0 && sender.IsValid() {
		addrs = append(addrs, sender.Unmap())
	}
	return addrs
}

func answersService(msg *dns.Msg) bool {
	for _, rr := range msg.Answer {
		if ptr, ok := rr.(*dns.PTR); ok && strings.EqualFold(ptr.Hdr.Name, Service) {
			return true
		}
	}
	return false
}
