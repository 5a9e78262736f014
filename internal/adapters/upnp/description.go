package upnp

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/netip"
	"net/url"
	"strings"

	"github.com/huin/goupnp"
	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultPort is the port zone players serve their description and control endpoints on.
	DefaultPort = 1400
	// DescriptionPath is where a zone player publishes its device description.
	DescriptionPath = "/xml/device_description.xml"

	maxDescriptionSize = 1 << 20
)

// zonePlayer holds the vendor elements of a zone player's description
// that goupnp.Device does not decode.
type zonePlayer struct {
	Device struct {
		ModelName       string `xml:"modelName"`
		ModelNumber     string `xml:"modelNumber"`
		SoftwareVersion string `xml:"softwareVersion"`
		HardwareVersion string `xml:"hardwareVersion"`
		SerialNum       string `xml:"serialNum"`
		UDN             string `xml:"UDN"`
		RoomName        string `xml:"roomName"`
	} `xml:"device"`
}

func descriptionURL(addr netip.Addr, port uint16) *url.URL {
	return &url.URL{
		Scheme: "http",
		Host:   netip.AddrPortFrom(addr, port).String(),
		Path:   DescriptionPath,
	}
}

// fetchDescription downloads the description at loc and decodes it both as a
// UPnP root device and as a zone player.
func fetchDescription(ctx context.Context, client *http.Client, loc *url.URL) (*goupnp.RootDevice, *zonePlayer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc.String(), nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, zerr.With(zerr.New("unexpected HTTP status"), "status", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDescriptionSize))
	if err != nil {
		return nil, nil, err
	}

	root := new(goupnp.RootDevice)
	if err := decodeXML(body, root); err != nil {
		return nil, nil, err
	}

	base := loc
	if root.URLBaseStr != "" {
		if base, err = url.Parse(root.URLBaseStr); err != nil {
			return nil, nil, err
		}
	}
	root.SetURLBase(base)

	player := new(zonePlayer)
	if err := decodeXML(body, player); err != nil {
		return nil, nil, err
	}

	return root, player, nil
}

func decodeXML(body []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.DefaultSpace = goupnp.DeviceXMLNamespace
	dec.CharsetReader = goupnp.CharsetReaderDefault
	return dec.Decode(v)
}

func newSpeaker(addr netip.Addr, root *goupnp.RootDevice, player *zonePlayer) domain.Speaker {
	d := player.Device

	name := d.RoomName
	if name == "" {
		name = root.Device.FriendlyName
	}
	model := d.ModelName
	if model == "" {
		model = root.Device.ModelName
	}
	udn := d.UDN
	if udn == "" {
		udn = root.Device.UDN
	}

	return domain.Speaker{
		Address:         addr,
		Name:            name,
		Model:           model,
		ModelNumber:     d.ModelNumber,
		SoftwareVersion: d.SoftwareVersion,
		HardwareVersion: d.HardwareVersion,
		SerialNumber:    d.SerialNum,
		UUID:            strings.TrimPrefix(udn, "uuid:"),
	}
}
