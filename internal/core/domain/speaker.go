// Package domain contains the core types shared by the sonos CLI.
package domain

import "net/netip"

const (
	// AutoAcceptDistance is the largest name distance accepted without asking the user.
	AutoAcceptDistance = 2

	// ConfirmDistance is the largest name distance that may be accepted after confirmation.
	// Anything further away is rejected outright.
	ConfirmDistance = 5
)

// Speaker identifies one physical Sonos unit.
type Speaker struct {
	Address         netip.Addr
	Name            string
	Model           string
	ModelNumber     string
	SoftwareVersion string
	HardwareVersion string
	SerialNumber    string
	UUID            string
}

// Match is a candidate speaker scored against a user query.
type Match struct {
	Speaker  Speaker
	Distance int
}

// Addresses returns the network addresses of the given speakers, in order.
func Addresses(speakers []Speaker) []netip.Addr {
	addrs := make([]netip.Addr, 0, len(speakers))
	for _, s := range speakers {
		addrs = append(addrs, s.Address)
	}
	return addrs
}
