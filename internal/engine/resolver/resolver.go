// Package resolver maps an approximate room name onto one of the discovered speakers.
package resolver

import (
	"context"
	"fmt"
	"slices"

	"github.com/antzucaro/matchr"
	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/zerr"
)

// Outcome is a successful resolution.
type Outcome struct {
	Speaker  domain.Speaker
	Distance int
	// Confirmed is true when the user had to accept the speaker explicitly.
	Confirmed bool
}

// Resolver picks the speaker whose name is closest to a query.
type Resolver struct {
	confirmer ports.Confirmer
	tracer    ports.Tracer
}

// New creates a Resolver that asks confirmer about uncertain matches.
func New(confirmer ports.Confirmer, tracer ports.Tracer) *Resolver {
	return &Resolver{confirmer: confirmer, tracer: tracer}
}

// Rank scores every candidate against query and sorts them by ascending distance.
// Candidates at the same distance keep their input order.
func Rank(query string, candidates []domain.Speaker) []domain.Match {
	matches := make([]domain.Match, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, domain.Match{
			Speaker:  c,
			Distance: matchr.DamerauLevenshtein(c.Name, query),
		})
	}
	slices.SortStableFunc(matches, func(a, b domain.Match) int {
		return a.Distance - b.Distance
	})
	return matches
}

// Resolve returns the best candidate for query.
//
// A distance up to domain.AutoAcceptDistance is accepted as is. Up to
// domain.ConfirmDistance the user is asked once. Anything further fails with
// domain.ErrNoSpeakerMatch.
func (r *Resolver) Resolve(ctx context.Context, query string, candidates []domain.Speaker) (Outcome, error) {
	_, span := r.tracer.Start(ctx, "resolver.resolve")
	defer span.End()

	ranked := Rank(query, candidates)
	names := make([]string, 0, len(ranked))
	distances := make([]int, 0, len(ranked))
	for _, m := range ranked {
		names = append(names, m.Speaker.Name)
		distances = append(distances, m.Distance)
	}
	span.SetAttribute("query", query)
	span.SetAttribute("candidates", names)
	span.SetAttribute("distances", distances)

	out, err := r.decide(query, ranked)
	if err != nil {
		span.RecordError(err)
		return Outcome{}, err
	}
	span.SetAttribute("speaker", out.Speaker.Name)
	span.SetAttribute("confirmed", out.Confirmed)
	return out, nil
}

func (r *Resolver) decide(query string, ranked []domain.Match) (Outcome, error) {
	if len(ranked) == 0 || ranked[0].Distance > domain.ConfirmDistance {
		err := zerr.With(zerr.Wrap(domain.ErrNoSpeakerMatch, fmt.Sprintf("no speaker named %q", query)), "query", query)
		if len(ranked) > 0 {
			err = zerr.With(err, "closest", ranked[0].Speaker.Name)
		}
		return Outcome{}, err
	}

	best := ranked[0]
	out := Outcome{Speaker: best.Speaker, Distance: best.Distance}
	if best.Distance <= domain.AutoAcceptDistance {
		return out, nil
	}

	prompt := fmt.Sprintf("Couldn't find speaker '%s', did you mean %s? [Y/n] ", query, best.Speaker.Name)
	ok, err := r.confirmer.Confirm(prompt)
	if err != nil {
		return Outcome{}, zerr.Wrap(err, "failed to read confirmation")
	}
	if !ok {
		return Outcome{}, zerr.With(zerr.Wrap(domain.ErrNotConfirmed, fmt.Sprintf("did not use %s", best.Speaker.Name)), "query", query)
	}
	out.Confirmed = true
	return out, nil
}
