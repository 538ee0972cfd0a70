package search

import (
	"testing"

	"github.com/episan-cli/episan/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func variant(series string, season, number int, resolution source.Resolution, group string) *source.Episode {
	e := &source.Episode{
		SeriesName: series,
		Number:     number,
		Resolution: resolution,
	}
	if season > 0 {
		e.Season = mo.Some(season)
	}
	if group != "" {
		e.Group = mo.Some(group)
	}
	return e
}

func TestSelectAttributeFilter(t *testing.T) {
	Convey("Attribute filter", t, func() {
		pool := []*source.Episode{
			variant("Series X", 1, 1, source.Resolution720p, "GroupA"),
			variant("Series X", 2, 1, source.Resolution1080p, "GroupB"),
			variant("Series Y", 0, 4, source.ResolutionUnknown, ""),
		}

		Convey("Empty criteria pass everything", func() {
			result := Select(pool, &Query{AllowDuplicates: true})
			So(result, ShouldHaveLength, 3)
		})

		Convey("Season membership", func() {
			result := Select(pool, &Query{Seasons: []int{2}})
			So(result, ShouldHaveLength, 1)
			So(result[0].Group.MustGet(), ShouldEqual, "GroupB")

			Convey("Absent seasons count as season 1", func() {
				result := Select(pool, &Query{Seasons: []int{1}})
				So(result, ShouldHaveLength, 2)
			})
		})

		Convey("Episode membership", func() {
			result := Select(pool, &Query{Episodes: []int{4}})
			So(result, ShouldHaveLength, 1)
			So(result[0].SeriesName, ShouldEqual, "Series Y")
		})

		Convey("Resolution membership", func() {
			result := Select(pool, &Query{Resolutions: []source.Resolution{source.Resolution1080p}})
			So(result, ShouldHaveLength, 1)

			Convey("Unknown is a matchable value", func() {
				result := Select(pool, &Query{Resolutions: []source.Resolution{source.ResolutionUnknown}})
				So(result, ShouldHaveLength, 1)
				So(result[0].SeriesName, ShouldEqual, "Series Y")
			})
		})

		Convey("Extension membership is case-insensitive", func() {
			withExt := variant("Series Z", 1, 2, source.Resolution720p, "")
			withExt.Extension = "MKV"

			result := Select([]*source.Episode{withExt}, &Query{Extensions: []string{"mkv"}})
			So(result, ShouldHaveLength, 1)
		})

		Convey("Group membership", func() {
			result := Select(pool, &Query{Groups: []string{"GroupA"}})
			So(result, ShouldHaveLength, 1)

			Convey("Ungrouped episodes never satisfy a group constraint", func() {
				result := Select(pool, &Query{Groups: []string{"GroupZ"}})
				So(result, ShouldBeEmpty)
			})
		})
	})
}

func TestSelectLatest(t *testing.T) {
	Convey("Latest refinement", t, func() {
		pool := []*source.Episode{
			variant("Series X", 1, 1, source.Resolution720p, "GroupA"),
			variant("Series X", 1, 12, source.Resolution720p, "GroupA"),
			variant("Series X", 2, 3, source.Resolution720p, "GroupA"),
			variant("Series Y", 1, 8, source.Resolution1080p, "GroupB"),
		}

		Convey("Without a season restriction the maximum (season, episode) wins per series", func() {
			result := Select(pool, &Query{MatchLatest: true})
			So(result, ShouldHaveLength, 2)
			So(result[0].SeriesName, ShouldEqual, "Series X")
			So(result[0].EffectiveSeason(), ShouldEqual, 2)
			So(result[0].Number, ShouldEqual, 3)
			So(result[1].SeriesName, ShouldEqual, "Series Y")
			So(result[1].Number, ShouldEqual, 8)
		})

		Convey("With a season restriction the maximum episode wins per (series, season)", func() {
			result := Select(pool, &Query{Seasons: []int{1}, MatchLatest: true})
			So(result, ShouldHaveLength, 2)
			So(result[0].Number, ShouldEqual, 12)
			So(result[1].SeriesName, ShouldEqual, "Series Y")
		})

		Convey("Latest refines the attribute filter instead of replacing it", func() {
			result := Select(pool, &Query{
				MatchLatest: true,
				Resolutions: []source.Resolution{source.Resolution720p},
			})
			So(result, ShouldHaveLength, 1)
			So(result[0].SeriesName, ShouldEqual, "Series X")
			So(result[0].Number, ShouldEqual, 3)
		})
	})
}

func TestSelectDedup(t *testing.T) {
	Convey("Identity dedup", t, func() {
		pool := []*source.Episode{
			variant("Series X", 1, 1, source.Resolution720p, "GroupA"),
			variant("Series X", 1, 1, source.Resolution1080p, "GroupB"),
			variant("Series X", 1, 1, source.Resolution1080p, "GroupA"),
		}

		Convey("At most one episode per identity key", func() {
			result := Select(pool, &Query{})
			So(result, ShouldHaveLength, 1)

			identities := lo.Map(result, func(e *source.Episode, _ int) source.Identity {
				return e.Identity()
			})
			So(lo.Uniq(identities), ShouldHaveLength, len(identities))
		})

		Convey("The representative is resolution-descending then group-ascending", func() {
			result := Select(pool, &Query{})
			So(result[0].Resolution, ShouldEqual, source.Resolution1080p)
			So(result[0].Group.MustGet(), ShouldEqual, "GroupA")
		})

		Convey("Allowing duplicates keeps every variant in variant order", func() {
			result := Select(pool, &Query{AllowDuplicates: true})
			So(result, ShouldHaveLength, 3)
			So(result[0].Resolution, ShouldEqual, source.Resolution1080p)
			So(result[0].Group.MustGet(), ShouldEqual, "GroupA")
			So(result[1].Group.MustGet(), ShouldEqual, "GroupB")
			So(result[2].Resolution, ShouldEqual, source.Resolution720p)
		})

		Convey("Identity ignores series casing and spacing", func() {
			spaced := []*source.Episode{
				variant("Series X", 1, 1, source.Resolution720p, "GroupA"),
				variant("SERIES  x", 1, 1, source.Resolution480p, "GroupB"),
			}
			result := Select(spaced, &Query{})
			So(result, ShouldHaveLength, 1)
			So(result[0].Resolution, ShouldEqual, source.Resolution720p)
		})
	})
}

func TestSelectOrdering(t *testing.T) {
	Convey("Final ordering", t, func() {
		pool := []*source.Episode{
			variant("Zeta", 1, 2, source.Resolution720p, ""),
			variant("Alpha", 2, 1, source.Resolution720p, ""),
			variant("Alpha", 1, 9, source.Resolution720p, ""),
			variant("Zeta", 1, 1, source.Resolution720p, ""),
		}

		result := Select(pool, &Query{})
		names := lo.Map(result, func(e *source.Episode, _ int) string { return e.String() })
		So(names, ShouldResemble, []string{
			"Alpha S01E09",
			"Alpha S02E01",
			"Zeta S01E01",
			"Zeta S01E02",
		})
	})
}

func TestSelectProperties(t *testing.T) {
	Convey("Engine properties", t, func() {
		pool := []*source.Episode{
			variant("Series X", 1, 1, source.Resolution720p, "GroupA"),
			variant("Series X", 1, 1, source.Resolution1080p, "GroupB"),
			variant("Series X", 1, 2, source.Resolution720p, "GroupA"),
		}

		Convey("The documented end-to-end scenario", func() {
			q := &Query{Seasons: []int{1}, MatchLatest: true}

			result := Select(pool, q)
			So(result, ShouldHaveLength, 1)
			So(result[0].Identity(), ShouldResemble, source.Identity{Series: "series x", Season: 1, Number: 2})
		})

		Convey("Select is idempotent", func() {
			q := &Query{Seasons: []int{1}}

			once := Select(pool, q)
			twice := Select(once, q)
			So(twice, ShouldResemble, once)
		})

		Convey("Input order does not influence the result", func() {
			q := &Query{}

			forward := Select(pool, q)
			reversed := Select(lo.Reverse(append([]*source.Episode{}, pool...)), q)
			So(reversed, ShouldResemble, forward)
		})

		Convey("Select never mutates the pool", func() {
			snapshot := append([]*source.Episode{}, pool...)
			Select(pool, &Query{MatchLatest: true})
			So(pool, ShouldResemble, snapshot)
		})

		Convey("An empty pool yields an empty result", func() {
			So(Select(nil, &Query{}), ShouldBeEmpty)
			So(Select([]*source.Episode{}, &Query{MatchLatest: true}), ShouldBeEmpty)
		})

		Convey("Narrowing a dimension then resetting it restores the superset", func() {
			narrowed, err := NewBuilder().Resolutions("720p").Duplicates(true).Build()
			So(err, ShouldBeNil)

			reset, err := NewBuilder().Resolutions("720p").Resolutions(Wildcard).Duplicates(true).Build()
			So(err, ShouldBeNil)

			narrowedResult := Select(pool, narrowed)
			resetResult := Select(pool, reset)

			So(len(resetResult), ShouldBeGreaterThan, len(narrowedResult))
			for _, e := range narrowedResult {
				So(resetResult, ShouldContain, e)
			}
		})
	})
}
