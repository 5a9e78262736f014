package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sonos/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncolored output into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "speaker found", goldenName: "info_basic"},
		{name: "empty message", msg: "", goldenName: "info_empty"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("could not save speaker cache")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	sentinel := zerr.New("failed to read speaker cache")

	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        errors.New("speaker unreachable"),
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("connection refused"), "fetch device description"),
				"connect to 192.168.1.20",
			),
			goldenName: "error_chain",
		},
		{
			name: "joined sentinel with annotated cause",
			err: errors.Join(
				sentinel,
				zerr.With(errors.New("permission denied"), "path", "/tmp/sonos-cli-speakers"),
			),
			goldenName: "error_joined",
		},
		{
			name: "sorted metadata",
			err: func() error {
				e := zerr.New("validation failed")
				e = zerr.With(e, "zebra", "z")
				e = zerr.With(e, "alpha", "a")
				return zerr.With(e, "mike", "m")
			}(),
			goldenName: "error_metadata_sorted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_Error_EmptyMessage(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.New(""))

	assert.Equal(t, "✗ Error: \n", buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(false)
	lg.Error(errors.New("test error message"))

	g := goldie.New(t)
	g.Assert(t, "setjson_disabled", buf.Bytes())
}

func TestLogger_SetJSON_WithErrorChain(t *testing.T) {
	err := zerr.With(
		zerr.Wrap(errors.New("i/o timeout"), "fetch device description"),
		"address", "192.168.1.20",
	)

	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "fetch device description", record["error"])
	assert.Equal(t, map[string]any{"address": "192.168.1.20"}, record["metadata"])
	assert.Equal(t, []any{"i/o timeout"}, record["causes"])
	assert.NotContains(t, buf.String(), "✗")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("pretty"))
	pretty := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("structured"))
	structured := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("pretty again"))
	prettyAgain := buf.String()

	assert.Contains(t, pretty, "✗")
	assert.Contains(t, structured, `"error":"structured"`)
	assert.NotContains(t, structured, "✗")
	assert.Contains(t, prettyAgain, "✗")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		logger.New().SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetOutput(io.Discard)

	var wg sync.WaitGroup
	for _, fn := range []func(){
		func() { lg.Info("concurrent info") },
		func() { lg.Warn("concurrent warn") },
		func() { lg.Error(errors.New("concurrent error")) },
		func() { lg.SetJSON(true) },
		func() { lg.SetJSON(false) },
		func() { lg.SetOutput(io.Discard) },
	} {
		wg.Go(fn)
	}
	wg.Wait()
}
