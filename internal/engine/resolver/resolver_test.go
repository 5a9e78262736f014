package resolver_test

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/sonos/internal/core/ports/mocks"
	"go.trai.ch/sonos/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var rooms = []domain.Speaker{
	{Address: netip.MustParseAddr("192.168.1.20"), Name: "Kitchen"},
	{Address: netip.MustParseAddr("192.168.1.21"), Name: "Living Room"},
	{Address: netip.MustParseAddr("192.168.1.22"), Name: "Office"},
}

func newTracer(ctrl *gomock.Controller) *mocks.MockTracer {
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()
	return tracer
}

func TestRank(t *testing.T) {
	t.Parallel()

	ranked := resolver.Rank("Ofis", rooms)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Office", ranked[0].Speaker.Name)
	assert.Equal(t, 3, ranked[0].Distance)
	assert.Equal(t, "Kitchen", ranked[1].Speaker.Name)
	assert.Equal(t, 7, ranked[1].Distance)
	assert.Equal(t, "Living Room", ranked[2].Speaker.Name)
	assert.Equal(t, 10, ranked[2].Distance)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	ranked := resolver.Rank("Living", rooms)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Living Room", ranked[0].Speaker.Name)
	assert.Equal(t, "Office", ranked[1].Speaker.Name)
	assert.Equal(t, ranked[0].Distance, ranked[1].Distance)
	assert.Equal(t, "Kitchen", ranked[2].Speaker.Name)
}

func TestRank_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, resolver.Rank("Kitchen", nil))
}

func TestResolve_AutoAccept(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query    string
		want     string
		distance int
	}{
		{query: "Kitchen", want: "Kitchen", distance: 0},
		{query: "Kitchn", want: "Kitchen", distance: 1},
		{query: "kichen", want: "Kitchen", distance: 2},
		{query: "Offic", want: "Office", distance: 1},
		{query: "Offices", want: "Office", distance: 1},
		{query: "Offisee", want: "Office", distance: 2},
		{query: "living room", want: "Living Room", distance: 2},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			// No Confirm expectation: any prompt fails the test.
			confirmer := mocks.NewMockConfirmer(ctrl)

			out, err := resolver.New(confirmer, newTracer(ctrl)).Resolve(context.Background(), tt.query, rooms)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Speaker.Name)
			assert.Equal(t, tt.distance, out.Distance)
			assert.False(t, out.Confirmed)
		})
	}
}

func TestResolve_NeedsConfirmation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		want     string
		distance int
		answer   bool
	}{
		{name: "accepted", query: "Ofis", want: "Office", distance: 3, answer: true},
		{name: "declined", query: "Ofis", want: "Office", distance: 3, answer: false},
		{name: "upper bound", query: "Den", want: "Kitchen", distance: 5, answer: true},
		{name: "tie picks first discovered", query: "Living", want: "Living Room", distance: 5, answer: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			confirmer := mocks.NewMockConfirmer(ctrl)
			confirmer.EXPECT().
				Confirm("Couldn't find speaker '" + tt.query + "', did you mean " + tt.want + "? [Y/n] ").
				Return(tt.answer, nil).
				Times(1)

			out, err := resolver.New(confirmer, newTracer(ctrl)).Resolve(context.Background(), tt.query, rooms)
			if !tt.answer {
				require.ErrorIs(t, err, domain.ErrNotConfirmed)
				assert.Equal(t, resolver.Outcome{}, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Speaker.Name)
			assert.Equal(t, tt.distance, out.Distance)
			assert.True(t, out.Confirmed)
		})
	}
}

func TestResolve_NoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		candidates []domain.Speaker
	}{
		{name: "too far", query: "Bedroom", candidates: rooms},
		{name: "single candidate", query: "Bathroom", candidates: rooms[:1]},
		{name: "no candidates", query: "Kitchen", candidates: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			confirmer := mocks.NewMockConfirmer(ctrl)

			_, err := resolver.New(confirmer, newTracer(ctrl)).Resolve(context.Background(), tt.query, tt.candidates)
			require.ErrorIs(t, err, domain.ErrNoSpeakerMatch)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.query, zErr.Metadata()["query"])
		})
	}
}

func TestResolve_ConfirmerFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	errClosed := errors.New("stdin closed")

	confirmer := mocks.NewMockConfirmer(ctrl)
	confirmer.EXPECT().Confirm(gomock.Any()).Return(false, errClosed)

	_, err := resolver.New(confirmer, newTracer(ctrl)).Resolve(context.Background(), "Ofis", rooms)
	require.ErrorIs(t, err, errClosed)
	assert.NotErrorIs(t, err, domain.ErrNotConfirmed)
}

func TestResolve_RecordsSpan(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().SetAttribute("query", "kichen")
	span.EXPECT().SetAttribute("candidates", []string{"Kitchen", "Office", "Living Room"})
	span.EXPECT().SetAttribute("distances", []int{2, 5, 10})
	span.EXPECT().SetAttribute("speaker", "Kitchen")
	span.EXPECT().SetAttribute("confirmed", false)
	span.EXPECT().End()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), "resolver.resolve").Return(context.Background(), span)

	_, err := resolver.New(mocks.NewMockConfirmer(ctrl), tracer).Resolve(context.Background(), "kichen", rooms)
	require.NoError(t, err)
}
