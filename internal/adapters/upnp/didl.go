package upnp

import (
	"encoding/xml"
	"strings"
)

const notImplemented = "NOT_IMPLEMENTED"

// didlLite is the subset of a DIDL-Lite document describing the current track.
type didlLite struct {
	Items []didlItem `xml:"item"`
}

type didlItem struct {
	Title   string `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creator string `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Album   string `xml:"urn:schemas-upnp-org:metadata-1-0/upnp/ album"`
}

// parseTrackMetadata decodes the first item of a DIDL-Lite document.
// Empty metadata, as reported when nothing is queued, yields a zero item.
func parseTrackMetadata(raw string) (didlItem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == notImplemented {
		return didlItem{}, nil
	}

	var doc didlLite
	if err := xml.Unmarshal([]byte(raw), &doc); err != nil {
		return didlItem{}, err
	}
	if len(doc.Items) == 0 {
		return didlItem{}, nil
	}
	return doc.Items[0], nil
}
