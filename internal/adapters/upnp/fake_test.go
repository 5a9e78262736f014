package upnp_test

import (
	"bytes"
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/sonos/internal/adapters/upnp"
)

const (
	avTransportNS      = "urn:schemas-upnp-org:service:AVTransport:1"
	renderingControlNS = "urn:schemas-upnp-org:service:RenderingControl:1"
)

// zonePlayer is an httptest server speaking just enough UPnP to stand in for a speaker.
type zonePlayer struct {
	server       *httptest.Server
	description  []byte
	descriptions atomic.Int32

	mu       sync.Mutex
	calls    []string
	bodies   []string
	replies  map[string]string
	failures map[string]bool
}

func newZonePlayer(t *testing.T, descriptionFile string) *zonePlayer {
	t.Helper()

	desc, err := os.ReadFile(descriptionFile)
	require.NoError(t, err)

	zp := &zonePlayer{
		description: desc,
		replies:     make(map[string]string),
		failures:    make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+upnp.DescriptionPath, func(w http.ResponseWriter, _ *http.Request) {
		zp.descriptions.Add(1)
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write(zp.description)
	})
	mux.HandleFunc("POST /MediaRenderer/AVTransport/Control", zp.control(avTransportNS))
	mux.HandleFunc("POST /MediaRenderer/RenderingControl/Control", zp.control(renderingControlNS))

	zp.server = httptest.NewServer(mux)
	t.Cleanup(zp.server.Close)
	return zp
}

// addr and port locate the server for upnp.WithPort.
func (zp *zonePlayer) addrPort() netip.AddrPort {
	return netip.MustParseAddrPort(strings.TrimPrefix(zp.server.URL, "http://"))
}

func (zp *zonePlayer) reply(action, fields string) {
	zp.mu.Lock()
	defer zp.mu.Unlock()
	zp.replies[action] = fields
}

func (zp *zonePlayer) fail(action string) {
	zp.mu.Lock()
	defer zp.mu.Unlock()
	zp.failures[action] = true
}

func (zp *zonePlayer) recorded() ([]string, []string) {
	zp.mu.Lock()
	defer zp.mu.Unlock()
	return append([]string(nil), zp.calls...), append([]string(nil), zp.bodies...)
}

func (zp *zonePlayer) control(ns string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		soapAction := strings.Trim(r.Header.Get("SOAPACTION"), `"`)
		action := strings.TrimPrefix(soapAction, ns+"#")
		body, _ := io.ReadAll(r.Body)

		zp.mu.Lock()
		zp.calls = append(zp.calls, action)
		zp.bodies = append(zp.bodies, string(body))
		fields := zp.replies[action]
		failing := zp.failures[action]
		zp.mu.Unlock()

		w.Header().Set("Content-Type", `text/xml; charset="utf-8"`)
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, soapFault)
			return
		}
		_, _ = io.WriteString(w, soapResponse(ns, action, fields))
	}
}

func soapResponse(ns, action, fields string) string {
	return `<?xml version="1.0"?>` +
		`<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">` +
		`<s:Body><u:` + action + `Response xmlns:u="` + ns + `">` + fields + `</u:` + action + `Response></s:Body>` +
		`</s:Envelope>`
}

const soapFault = `<?xml version="1.0"?>` +
	`<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">` +
	`<s:Body><s:Fault><faultcode>s:Client</faultcode><faultstring>UPnPError</faultstring>` +
	`<detail><UPnPError xmlns="urn:schemas-upnp-org:control-1-0"><errorCode>701</errorCode></UPnPError></detail>` +
	`</s:Fault></s:Body></s:Envelope>`

// escapeXML escapes s for embedding as element text.
func escapeXML(t *testing.T, s string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, xml.EscapeText(&buf, []byte(s)))
	return buf.String()
}
