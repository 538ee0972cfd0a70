package seen

import (
	"testing"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type testSource struct{}

func (testSource) Name() string {
	panic("")
}

func (testSource) ID() string {
	return "test source"
}

func (testSource) Options() []source.Option {
	panic("")
}

func (testSource) Search(_ string) ([]*source.Candidate, error) {
	panic("")
}

func init() {
	filesystem.SetMemMapFs()
}

func TestSeen(t *testing.T) {
	Convey("Given an episode", t, func() {
		episode := source.Episode{
			SeriesName: "Station Eleven",
			Season:     mo.Some(1),
			Number:     7,
			Group:      mo.Some("Fans"),
			Resolution: source.Resolution1080p,
			Link:       "https://example.com/se-7",
			Source:     testSource{},
		}

		Convey("When saving the episode", func() {
			err := Save(&episode)
			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the episode should be saved", func() {
					episodes, err := Get()
					So(err, ShouldBeNil)
					So(len(episodes), ShouldBeGreaterThan, 0)
					record := episodes[episode.Identity().String()]
					So(record, ShouldNotBeNil)
					So(record.Series, ShouldEqual, episode.SeriesName)
					So(record.SourceID, ShouldEqual, "test source")
				})

				Convey("And it should report as seen", func() {
					ok, err := Has(&episode)
					So(err, ShouldBeNil)
					So(ok, ShouldBeTrue)
				})

				Convey("And another release of the same identity counts as seen", func() {
					variant := episode
					variant.Resolution = source.Resolution720p
					variant.Group = mo.Some("Rivals")

					ok, err := Has(&variant)
					So(err, ShouldBeNil)
					So(ok, ShouldBeTrue)
				})
			})
		})

		Convey("When saving the same identity twice", func() {
			So(Save(&episode), ShouldBeNil)
			So(Save(&episode), ShouldBeNil)

			episodes, err := Get()
			So(err, ShouldBeNil)

			record := episodes[episode.Identity().String()]
			So(record.Grabs, ShouldBeGreaterThanOrEqualTo, 2)
		})

		Convey("When removing the record", func() {
			So(Save(&episode), ShouldBeNil)

			episodes, err := Get()
			So(err, ShouldBeNil)
			record := episodes[episode.Identity().String()]

			So(Remove(record), ShouldBeNil)

			ok, err := Has(&episode)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})
	})
}
