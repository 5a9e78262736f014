package upnp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sonos/internal/adapters/upnp"
	"go.trai.ch/sonos/internal/core/domain"
)

const trackMetadata = `<DIDL-Lite xmlns:dc="http://purl.org/dc/elements/1.1/" ` +
	`xmlns:upnp="urn:schemas-upnp-org:metadata-1-0/upnp/" ` +
	`xmlns:r="urn:schemas-rinconnetworks-com:metadata-1-0/" ` +
	`xmlns="urn:schemas-upnp-org:metadata-1-0/DIDL-Lite/">` +
	`<item id="-1" parentID="-1" restricted="true">` +
	`<res protocolInfo="sonos.com-spotify:*:audio/x-spotify:*" duration="0:03:45">x-sonos-spotify:track</res>` +
	`<dc:title>Harvest Moon</dc:title>` +
	`<upnp:class>object.item.audioItem.musicTrack</upnp:class>` +
	`<dc:creator>Neil Young</dc:creator>` +
	`<upnp:album>Harvest Moon</upnp:album>` +
	`</item></DIDL-Lite>`

func positionInfo(t *testing.T, metadata, relTime string) string {
	t.Helper()
	return `<Track>3</Track>` +
		`<TrackDuration>0:03:45</TrackDuration>` +
		`<TrackMetaData>` + escapeXML(t, metadata) + `</TrackMetaData>` +
		`<TrackURI>x-sonos-spotify:track</TrackURI>` +
		`<RelTime>` + relTime + `</RelTime>` +
		`<AbsTime>NOT_IMPLEMENTED</AbsTime>` +
		`<RelCount>2147483647</RelCount>` +
		`<AbsCount>2147483647</AbsCount>`
}

// connected starts a zone player and returns a client that has not fetched its description yet.
func connected(t *testing.T, file string) (*zonePlayer, domain.Speaker, *upnp.Client) {
	t.Helper()
	zp := newZonePlayer(t, file)
	client, _, _ := newTestClient(t, zp)
	return zp, domain.Speaker{Address: zp.addrPort().Addr()}, client
}

func TestClient_Track(t *testing.T) {
	zp, sp, client := connected(t, "testdata/device_description.xml")
	zp.reply("GetPositionInfo", positionInfo(t, trackMetadata, "0:01:30"))

	track, err := client.Track(t.Context(), sp)
	require.NoError(t, err)

	assert.Equal(t, domain.Track{
		Title:         "Harvest Moon",
		Artist:        "Neil Young",
		Album:         "Harvest Moon",
		QueuePosition: 3,
		URI:           "x-sonos-spotify:track",
		Position:      90 * time.Second,
		Duration:      225 * time.Second,
	}, track)
}

func TestClient_Track_NothingPlaying(t *testing.T) {
	zp, sp, client := connected(t, "testdata/device_description.xml")
	zp.reply("GetPositionInfo", positionInfo(t, "NOT_IMPLEMENTED", "NOT_IMPLEMENTED"))

	track, err := client.Track(t.Context(), sp)
	require.NoError(t, err)
	assert.Empty(t, track.Title)
	assert.Zero(t, track.Position)
}

func TestClient_Track_BadMetadata(t *testing.T) {
	zp, sp, client := connected(t, "testdata/device_description.xml")
	zp.reply("GetPositionInfo", positionInfo(t, "<DIDL-Lite><item>", "0:00:01"))

	_, err := client.Track(t.Context(), sp)
	require.ErrorIs(t, err, domain.ErrDeviceControl)
}

func TestClient_NextPrevious(t *testing.T) {
	zp, sp, client := connected(t, "testdata/device_description.xml")
	c := client

	require.NoError(t, c.Next(t.Context(), sp))
	require.NoError(t, c.Previous(t.Context(), sp))

	calls, _ := zp.recorded()
	assert.Equal(t, []string{"Next", "Previous"}, calls)
	assert.Equal(t, int32(1), zp.descriptions.Load(), "the description is fetched once and reused")
}

func TestClient_Seek(t *testing.T) {
	zp, sp, client := connected(t, "testdata/device_description.xml")

	require.NoError(t, client.Seek(t.Context(), sp, 90*time.Second))

	calls, bodies := zp.recorded()
	require.Equal(t, []string{"Seek"}, calls)
	assert.Contains(t, bodies[0], "<Unit>REL_TIME</Unit>")
	assert.Contains(t, bodies[0], "<Target>00:01:30</Target>")
}

func TestClient_Volume(t *testing.T) {
	zp, sp, client := connected(t, "testdata/device_description.xml")
	zp.reply("GetVolume", "<CurrentVolume>20</CurrentVolume>")
	zp.reply("GetMute", "<CurrentMute>1</CurrentMute>")

	vol, err := client.Volume(t.Context(), sp)
	require.NoError(t, err)
	assert.Equal(t, domain.Volume{Level: 20, Muted: true}, vol)
}

func TestClient_SetVolume(t *testing.T) {
	zp, sp, client := connected(t, "testdata/device_description.xml")

	require.NoError(t, client.SetVolume(t.Context(), sp, 35))

	calls, bodies := zp.recorded()
	require.Equal(t, []string{"SetVolume"}, calls)
	assert.Contains(t, bodies[0], "<Channel>Master</Channel>")
	assert.Contains(t, bodies[0], "<DesiredVolume>35</DesiredVolume>")
}

func TestClient_ControlFault(t *testing.T) {
	zp, sp, client := connected(t, "testdata/device_description.xml")
	zp.fail("Next")

	err := client.Next(t.Context(), sp)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeviceControl)
}

func TestClient_ControlWithoutService(t *testing.T) {
	_, sp, client := connected(t, "testdata/bridge_description.xml")

	err := client.Next(t.Context(), sp)
	require.ErrorIs(t, err, domain.ErrDeviceControl)

	_, err = client.Volume(t.Context(), sp)
	require.ErrorIs(t, err, domain.ErrDeviceControl)
}

func TestClient_ControlUnreachable(t *testing.T) {
	zp, sp, client := connected(t, "testdata/device_description.xml")
	zp.server.Close()

	err := client.Next(t.Context(), sp)
	require.ErrorIs(t, err, domain.ErrDeviceDescription)
}
