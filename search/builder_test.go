package search

import (
	"testing"

	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/source"
	"github.com/spf13/viper"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuilder(t *testing.T) {
	Convey("Builder", t, func() {
		Convey("Empty builder yields the maximally permissive query", func() {
			q, err := NewBuilder().Build()
			So(err, ShouldBeNil)
			So(q.Seasons, ShouldBeEmpty)
			So(q.Episodes, ShouldBeEmpty)
			So(q.Resolutions, ShouldBeEmpty)
			So(q.Extensions, ShouldBeEmpty)
			So(q.Groups, ShouldBeEmpty)
			So(q.MatchLatest, ShouldBeFalse)
			So(q.AllowDuplicates, ShouldBeFalse)
		})

		Convey("Criteria accumulate, deduplicated and sorted", func() {
			q, err := NewBuilder().
				Seasons(2, 1, 2).
				Episodes(10, 3).
				Resolutions("1080p", "720p", "1080p").
				Extensions("MKV", ".mp4").
				Groups("Fans", "Other").
				Latest(true).
				Duplicates(true).
				Build()

			So(err, ShouldBeNil)
			So(q.Seasons, ShouldResemble, []int{1, 2})
			So(q.Episodes, ShouldResemble, []int{3, 10})
			So(q.Resolutions, ShouldResemble, []source.Resolution{source.Resolution720p, source.Resolution1080p})
			So(q.Extensions, ShouldResemble, []string{"mkv", "mp4"})
			So(q.Groups, ShouldResemble, []string{"Fans", "Other"})
			So(q.MatchLatest, ShouldBeTrue)
			So(q.AllowDuplicates, ShouldBeTrue)
		})

		Convey("Wildcard resets the resolution dimension", func() {
			q, err := NewBuilder().Resolutions("720p", "1080p").Resolutions(Wildcard).Build()
			So(err, ShouldBeNil)
			So(q.Resolutions, ShouldBeEmpty)
		})

		Convey("Wildcard resets the extension dimension", func() {
			q, err := NewBuilder().Extensions("mkv").Extensions("ANY").Build()
			So(err, ShouldBeNil)
			So(q.Extensions, ShouldBeEmpty)
		})

		Convey("Values after a wildcard re-restrict", func() {
			q, err := NewBuilder().Resolutions(Wildcard, "720p").Build()
			So(err, ShouldBeNil)
			So(q.Resolutions, ShouldResemble, []source.Resolution{source.Resolution720p})
		})

		Convey("The unknown token matches unresolved episodes", func() {
			q, err := NewBuilder().Resolutions("unknown").Build()
			So(err, ShouldBeNil)
			So(q.Resolutions, ShouldResemble, []source.Resolution{source.ResolutionUnknown})
		})

		Convey("Unrecognized resolution tokens are fatal", func() {
			q, err := NewBuilder().Resolutions("4K").Build()
			So(q, ShouldBeNil)
			So(err, ShouldNotBeNil)

			invalid, ok := err.(*InvalidQueryError)
			So(ok, ShouldBeTrue)
			So(invalid.Criterion, ShouldEqual, "resolutions")
			So(invalid.Value, ShouldEqual, "4K")
		})

		Convey("Negative season numbers are fatal", func() {
			_, err := NewBuilder().Seasons(-1).Build()
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &InvalidQueryError{})
		})

		Convey("Negative episode numbers are fatal", func() {
			_, err := NewBuilder().Episodes(-3).Build()
			So(err, ShouldNotBeNil)
		})

		Convey("The first violation wins", func() {
			_, err := NewBuilder().Resolutions("4K").Seasons(-1).Build()
			So(err.(*InvalidQueryError).Criterion, ShouldEqual, "resolutions")
		})

		Convey("Blank group names are dropped", func() {
			q, err := NewBuilder().Groups("  ", "Fans").Build()
			So(err, ShouldBeNil)
			So(q.Groups, ShouldResemble, []string{"Fans"})
		})
	})
}

func TestConfigBuilder(t *testing.T) {
	Convey("ConfigBuilder", t, func() {
		viper.Set(key.SearchResolutions, []string{"720p"})
		viper.Set(key.SearchExtensions, []string{"mkv"})
		viper.Set(key.SearchLatest, true)
		defer viper.Reset()

		q, err := ConfigBuilder().Build()
		So(err, ShouldBeNil)
		So(q.Resolutions, ShouldResemble, []source.Resolution{source.Resolution720p})
		So(q.Extensions, ShouldResemble, []string{"mkv"})
		So(q.MatchLatest, ShouldBeTrue)

		Convey("Flag criteria apply on top of config", func() {
			viper.Set(key.SearchResolutions, []string{"720p"})
			q, err := ConfigBuilder().Resolutions(Wildcard).Build()
			So(err, ShouldBeNil)
			So(q.Resolutions, ShouldBeEmpty)
		})
	})
}
