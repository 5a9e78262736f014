package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sonos/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t)
			slog.New(h).Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		attrs      []slog.Attr
		goldenName string
	}{
		{
			name:       "single",
			attrs:      []slog.Attr{slog.String("room", "Kitchen")},
			goldenName: "handler_attrs_single",
		},
		{
			name:       "multiple",
			attrs:      []slog.Attr{slog.String("room", "Kitchen"), slog.Int("volume", 20)},
			goldenName: "handler_attrs_multi",
		},
		{
			name:       "group",
			attrs:      []slog.Attr{slog.Group("device", slog.String("ip", "10.0.0.1"))},
			goldenName: "handler_attrs_group",
		},
		{
			name:       "nested group",
			attrs:      []slog.Attr{slog.Group("a", slog.Group("b", slog.String("k", "v")))},
			goldenName: "handler_attrs_nested_group",
		},
		{
			name:       "value with spaces",
			attrs:      []slog.Attr{slog.String("name", "Living Room")},
			goldenName: "handler_attrs_quoted",
		},
		{
			name:       "empty value",
			attrs:      []slog.Attr{slog.String("empty", "")},
			goldenName: "handler_attrs_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t)
			slog.New(h.WithAttrs(tt.attrs)).Info("speaker")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_RecordAttrsMatchHandlerAttrs(t *testing.T) {
	h, buf := newTestHandler(t)
	slog.New(h).Info("speaker", "room", "Kitchen", "volume", 20)

	g := goldie.New(t)
	g.Assert(t, "handler_attrs_multi", buf.Bytes())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	h, buf := newTestHandler(t)
	slog.New(h.WithGroup("scan")).Info("scan finished", "method", "ssdp", "found", 3)

	g := goldie.New(t)
	g.Assert(t, "handler_with_group", buf.Bytes())
}

func TestPrettyHandler_WithGroup_EmptyName(t *testing.T) {
	h, _ := newTestHandler(t)
	assert.Same(t, h, h.WithGroup(""))
}

func TestPrettyHandler_WithAttrs_DoesNotLeak(t *testing.T) {
	h, buf := newTestHandler(t)
	_ = h.WithAttrs([]slog.Attr{slog.String("room", "Kitchen")})

	slog.New(h).Info("plain")
	assert.Equal(t, "plain\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, h.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, h.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_DefaultsToInfo(t *testing.T) {
	h := logger.NewPrettyHandler(nil, nil)

	assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, h.Enabled(t.Context(), slog.LevelInfo))
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestPrettyHandler_Handle_ReturnsError(t *testing.T) {
	h := logger.NewPrettyHandler(brokenWriter{}, nil)

	err := h.Handle(t.Context(), slog.NewRecord(time.Time{}, slog.LevelInfo, "msg", 0))
	require.Error(t, err)
}
