package source

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEpisode(t *testing.T) {
	Convey("Episode", t, func() {
		ep := &Episode{
			SeriesName: "Show Name",
			Season:     mo.Some(2),
			Number:     10,
			Group:      mo.Some("Fans"),
			Resolution: Resolution1080p,
			Extension:  "mkv",
			Source:     &testSource{},
		}

		Convey("String", func() {
			So(ep.String(), ShouldEqual, "Show Name S02E10")
		})

		Convey("EffectiveSeason", func() {
			So(ep.EffectiveSeason(), ShouldEqual, 2)

			Convey("Defaults to 1 when absent", func() {
				bare := &Episode{SeriesName: "Show Name", Number: 3}
				So(bare.EffectiveSeason(), ShouldEqual, 1)
			})
		})

		Convey("Identity", func() {
			id := ep.Identity()
			So(id.Series, ShouldEqual, "show name")
			So(id.Season, ShouldEqual, 2)
			So(id.Number, ShouldEqual, 10)

			Convey("Independent of release variant", func() {
				variant := &Episode{
					SeriesName: "SHOW  NAME",
					Season:     mo.Some(2),
					Number:     10,
					Group:      mo.Some("Other"),
					Resolution: Resolution480p,
				}
				So(variant.Identity(), ShouldResemble, id)
			})
		})

		Convey("Filename", func() {
			So(ep.Filename(), ShouldEqual, "Show_Name_S02E10.mkv")

			Convey("Without extension", func() {
				bare := &Episode{SeriesName: "Show Name", Number: 3}
				So(bare.Filename(), ShouldEqual, "Show_Name_S01E03")
			})
		})
	})
}

func TestNormalizeSeries(t *testing.T) {
	Convey("NormalizeSeries", t, func() {
		So(NormalizeSeries("Show Name"), ShouldEqual, "show name")
		So(NormalizeSeries("  Show   NAME  "), ShouldEqual, "show name")
		So(NormalizeSeries(""), ShouldBeEmpty)
	})
}

type testSource struct{}

func (testSource) Name() string                              { return "Test Source" }
func (testSource) ID() string                                { return "test" }
func (testSource) Options() []Option                         { return nil }
func (testSource) Search(query string) ([]*Candidate, error) { return nil, nil }
