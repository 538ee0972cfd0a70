package search

import (
	"strings"

	"github.com/episan-cli/episan/source"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Select evaluates a query against a materialized pool snapshot and returns
// the ordered, deduplicated result. It is deterministic for a given pool and
// query, never mutates its input, and never fails: an empty result is a
// valid outcome.
//
// Stages, in order: attribute filter, latest refinement, identity dedup,
// final ordering.
func Select(episodes []*source.Episode, q *Query) []*source.Episode {
	matched := lo.Filter(episodes, func(e *source.Episode, _ int) bool {
		return q.matches(e)
	})

	if q.MatchLatest {
		matched = latestOnly(matched, len(q.Seasons) != 0)
	}

	if !q.AllowDuplicates {
		matched = dedupe(matched)
	}

	Order(matched)
	return matched
}

// Order sorts episodes in place into presentation order, (series, season,
// number) ascending with the variant order breaking ties.
func Order(episodes []*source.Episode) {
	slices.SortFunc(episodes, compareEpisodes)
}

// matches applies the attribute filter: membership per dimension, an empty
// criterion set always passes.
func (q *Query) matches(e *source.Episode) bool {
	if len(q.Seasons) != 0 && !lo.Contains(q.Seasons, e.EffectiveSeason()) {
		return false
	}

	if len(q.Episodes) != 0 && !lo.Contains(q.Episodes, e.Number) {
		return false
	}

	if len(q.Resolutions) != 0 && !lo.Contains(q.Resolutions, e.Resolution) {
		return false
	}

	if len(q.Extensions) != 0 && !lo.Contains(q.Extensions, strings.ToLower(e.Extension)) {
		return false
	}

	if len(q.Groups) != 0 {
		group, ok := e.Group.Get()
		if !ok || !lo.Contains(q.Groups, group) {
			return false
		}
	}

	return true
}

type seasonScope struct {
	series string
	season int
}

// latestOnly keeps only the highest-numbered episode(s) within each scope.
// With a season restriction the scope is (series, season); without one it is
// the series, compared by lexicographic (season, number) so a higher season
// always outranks any episode of a lower one. Variants tied on the maximum
// all survive, dedup resolves them afterwards.
func latestOnly(episodes []*source.Episode, perSeason bool) []*source.Episode {
	if perSeason {
		scoped := lo.GroupBy(episodes, func(e *source.Episode) seasonScope {
			return seasonScope{series: source.NormalizeSeries(e.SeriesName), season: e.EffectiveSeason()}
		})

		var kept []*source.Episode
		for _, scope := range scoped {
			top := lo.MaxBy(scope, func(a, b *source.Episode) bool {
				return a.Number > b.Number
			})
			kept = append(kept, lo.Filter(scope, func(e *source.Episode, _ int) bool {
				return e.Number == top.Number
			})...)
		}
		return kept
	}

	bySeries := lo.GroupBy(episodes, func(e *source.Episode) string {
		return source.NormalizeSeries(e.SeriesName)
	})

	var kept []*source.Episode
	for _, series := range bySeries {
		top := lo.MaxBy(series, func(a, b *source.Episode) bool {
			return comparePosition(a, b) > 0
		})
		kept = append(kept, lo.Filter(series, func(e *source.Episode, _ int) bool {
			return comparePosition(e, top) == 0
		})...)
	}
	return kept
}

// dedupe keeps exactly one representative per identity key, chosen by the
// variant order so repeated runs over the same pool yield the same pick.
func dedupe(episodes []*source.Episode) []*source.Episode {
	byIdentity := lo.GroupBy(episodes, func(e *source.Episode) source.Identity {
		return e.Identity()
	})

	representatives := make([]*source.Episode, 0, len(byIdentity))
	for _, variants := range byIdentity {
		representatives = append(representatives, lo.MinBy(variants, func(a, b *source.Episode) bool {
			return compareVariants(a, b) < 0
		}))
	}
	return representatives
}

// comparePosition orders two episodes of the same series by their
// (season, number) pair.
func comparePosition(a, b *source.Episode) int {
	if c := a.EffectiveSeason() - b.EffectiveSeason(); c != 0 {
		return c
	}
	return a.Number - b.Number
}

// compareVariants is the documented total order over same-identity release
// variants: resolution descending, then group ascending, then extension
// ascending, with the link as a final disambiguator.
func compareVariants(a, b *source.Episode) int {
	if a.Resolution != b.Resolution {
		if a.Resolution > b.Resolution {
			return -1
		}
		return 1
	}

	if c := strings.Compare(a.Group.OrElse(""), b.Group.OrElse("")); c != 0 {
		return c
	}

	if c := strings.Compare(a.Extension, b.Extension); c != 0 {
		return c
	}

	return strings.Compare(a.Link, b.Link)
}

// compareEpisodes is the final presentation order: (series, season, number)
// ascending with variant order breaking ties between duplicates.
func compareEpisodes(a, b *source.Episode) int {
	if c := strings.Compare(source.NormalizeSeries(a.SeriesName), source.NormalizeSeries(b.SeriesName)); c != 0 {
		return c
	}

	if c := comparePosition(a, b); c != 0 {
		return c
	}

	return compareVariants(a, b)
}
