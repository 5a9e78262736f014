package upnp_test

import (
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sonos/internal/adapters/upnp"
	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/sonos/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestClient(t *testing.T, zp *zonePlayer) (*upnp.Client, *mocks.MockScanner, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockScanner(ctrl)
	log := mocks.NewMockLogger(ctrl)

	cfg := domain.DefaultConfig()
	cfg.ConnectTimeout = time.Second

	return upnp.NewClient(cfg, scanner, log, upnp.WithPort(zp.addrPort().Port())), scanner, log
}

func TestClient_Connect(t *testing.T) {
	zp := newZonePlayer(t, "testdata/device_description.xml")
	client, _, _ := newTestClient(t, zp)

	sp, err := client.Connect(t.Context(), zp.addrPort().Addr())
	require.NoError(t, err)

	assert.Equal(t, domain.Speaker{
		Address:         netip.MustParseAddr("127.0.0.1"),
		Name:            "Kitchen",
		Model:           "Sonos One",
		ModelNumber:     "S18",
		SoftwareVersion: "78.1-52020",
		HardwareVersion: "1.20.1.6-2.1",
		SerialNumber:    "00-0E-58-A0-B1-C2:3",
		UUID:            "RINCON_000E58A0B1C201400",
	}, sp)
}

func TestClient_Connect_FallsBackToFriendlyName(t *testing.T) {
	zp := newZonePlayer(t, "testdata/bridge_description.xml")
	client, _, _ := newTestClient(t, zp)

	sp, err := client.Connect(t.Context(), zp.addrPort().Addr())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1 - Sonos Bridge", sp.Name)
	assert.Equal(t, "Sonos Bridge", sp.Model)
	assert.Equal(t, "RINCON_000E5800000001400", sp.UUID)
}

func TestClient_Connect_Errors(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{name: "malformed description", description: "<root><device>"},
		{name: "not xml", description: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zp := newZonePlayer(t, "testdata/device_description.xml")
			zp.description = []byte(tt.description)
			client, _, _ := newTestClient(t, zp)

			_, err := client.Connect(t.Context(), zp.addrPort().Addr())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrDeviceDescription)
		})
	}
}

func TestClient_Connect_Unreachable(t *testing.T) {
	zp := newZonePlayer(t, "testdata/device_description.xml")
	client, _, _ := newTestClient(t, zp)
	zp.server.Close()

	_, err := client.Connect(t.Context(), zp.addrPort().Addr())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeviceDescription)
}

func TestClient_Discover(t *testing.T) {
	zp := newZonePlayer(t, "testdata/device_description.xml")
	client, scanner, log := newTestClient(t, zp)

	scanner.EXPECT().Scan(gomock.Any()).Return([]netip.Addr{
		zp.addrPort().Addr(),
		netip.MustParseAddr("::1"),
	}, nil)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	speakers, err := client.Discover(t.Context())
	require.NoError(t, err)
	require.Len(t, speakers, 1)
	assert.Equal(t, "Kitchen", speakers[0].Name)
}

func TestClient_Discover_ScanError(t *testing.T) {
	zp := newZonePlayer(t, "testdata/device_description.xml")
	client, scanner, _ := newTestClient(t, zp)

	scanErr := errors.New("no multicast route")
	scanner.EXPECT().Scan(gomock.Any()).Return(nil, scanErr)

	_, err := client.Discover(t.Context())
	require.ErrorIs(t, err, scanErr)
}

func TestClient_Discover_Empty(t *testing.T) {
	zp := newZonePlayer(t, "testdata/device_description.xml")
	client, scanner, _ := newTestClient(t, zp)

	scanner.EXPECT().Scan(gomock.Any()).Return(nil, nil)

	speakers, err := client.Discover(t.Context())
	require.NoError(t, err)
	assert.Empty(t, speakers)
}

func TestSortSpeakers(t *testing.T) {
	speakers := []domain.Speaker{
		{Name: "Office", Address: netip.MustParseAddr("10.0.0.3")},
		{Name: "Kitchen", Address: netip.MustParseAddr("10.0.0.2")},
		{Name: "Kitchen", Address: netip.MustParseAddr("10.0.0.1")},
		{Name: "Living Room", Address: netip.MustParseAddr("10.0.0.4")},
	}

	upnp.SortSpeakers(speakers)

	assert.Equal(t, []netip.Addr{
		netip.MustParseAddr("10.0.0.1"),
		netip.MustParseAddr("10.0.0.2"),
		netip.MustParseAddr("10.0.0.4"),
		netip.MustParseAddr("10.0.0.3"),
	}, domain.Addresses(speakers))
}
