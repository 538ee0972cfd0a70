package release

import (
	"testing"

	"github.com/episan-cli/episan/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseBracketed(t *testing.T) {
	Convey("Bracketed titles", t, func() {
		Convey("Full form", func() {
			ep, err := Parse("[Fans] Show Name - 05 [720p]")
			So(err, ShouldBeNil)
			So(ep.SeriesName, ShouldEqual, "Show Name")
			So(ep.Season.IsAbsent(), ShouldBeTrue)
			So(ep.EffectiveSeason(), ShouldEqual, 1)
			So(ep.Number, ShouldEqual, 5)
			So(ep.Group.MustGet(), ShouldEqual, "Fans")
			So(ep.Resolution, ShouldEqual, source.Resolution720p)
			So(ep.Extension, ShouldBeEmpty)
		})

		Convey("Group and trailing tags are optional", func() {
			ep, err := Parse("Show Name - 12")
			So(err, ShouldBeNil)
			So(ep.SeriesName, ShouldEqual, "Show Name")
			So(ep.Number, ShouldEqual, 12)
			So(ep.Group.IsAbsent(), ShouldBeTrue)
			So(ep.Resolution, ShouldEqual, source.ResolutionUnknown)
		})

		Convey("Extension rides in a trailing tag", func() {
			ep, err := Parse("[Grp] Show - 01 [1080p][mkv]")
			So(err, ShouldBeNil)
			So(ep.Resolution, ShouldEqual, source.Resolution1080p)
			So(ep.Extension, ShouldEqual, "mkv")
		})

		Convey("Extension rides in a filename suffix", func() {
			ep, err := Parse("[Grp] Show - 01 (720p).mkv")
			So(err, ShouldBeNil)
			So(ep.Resolution, ShouldEqual, source.Resolution720p)
			So(ep.Extension, ShouldEqual, "mkv")
		})

		Convey("Leading zeros parse as their numeric value", func() {
			ep, err := Parse("[Grp] Show - 007 [480p]")
			So(err, ShouldBeNil)
			So(ep.Number, ShouldEqual, 7)
			So(ep.Resolution, ShouldEqual, source.Resolution480p)
		})

		Convey("Version suffix is ignored", func() {
			ep, err := Parse("[Grp] Show - 05v2 [720p]")
			So(err, ShouldBeNil)
			So(ep.Number, ShouldEqual, 5)
		})

		Convey("Season token after the series is recognized", func() {
			ep, err := Parse("[Grp] Show Name S2 - 07 [1080p]")
			So(err, ShouldBeNil)
			So(ep.SeriesName, ShouldEqual, "Show Name")
			So(ep.Season.MustGet(), ShouldEqual, 2)
			So(ep.Number, ShouldEqual, 7)
		})

		Convey("Unrecognized tags are ignored", func() {
			ep, err := Parse("[Grp] Show - 03 [720p][ABCD1234]")
			So(err, ShouldBeNil)
			So(ep.Resolution, ShouldEqual, source.Resolution720p)
			So(ep.Extension, ShouldBeEmpty)
		})

		Convey("Series keeps its internal dashes", func() {
			ep, err := Parse("Re - Zero - 05")
			So(err, ShouldBeNil)
			So(ep.SeriesName, ShouldEqual, "Re - Zero")
			So(ep.Number, ShouldEqual, 5)
		})
	})
}

func TestParseDotted(t *testing.T) {
	Convey("Dotted titles", t, func() {
		Convey("Full form", func() {
			ep, err := Parse("Show.Name.S02E10.1080p-Fans")
			So(err, ShouldBeNil)
			So(ep.SeriesName, ShouldEqual, "Show Name")
			So(ep.Season.MustGet(), ShouldEqual, 2)
			So(ep.Number, ShouldEqual, 10)
			So(ep.Resolution, ShouldEqual, source.Resolution1080p)
			So(ep.Group.MustGet(), ShouldEqual, "Fans")
		})

		Convey("Resolution and group are optional", func() {
			ep, err := Parse("Show.Name.S01E03")
			So(err, ShouldBeNil)
			So(ep.SeriesName, ShouldEqual, "Show Name")
			So(ep.Season.MustGet(), ShouldEqual, 1)
			So(ep.Number, ShouldEqual, 3)
			So(ep.Resolution, ShouldEqual, source.ResolutionUnknown)
			So(ep.Group.IsAbsent(), ShouldBeTrue)
		})

		Convey("Case-insensitive tokens", func() {
			ep, err := Parse("show.name.s02e10.720P-fans")
			So(err, ShouldBeNil)
			So(ep.Season.MustGet(), ShouldEqual, 2)
			So(ep.Number, ShouldEqual, 10)
			So(ep.Resolution, ShouldEqual, source.Resolution720p)
		})

		Convey("Filename suffix becomes the extension", func() {
			ep, err := Parse("Show.Name.S02E10.1080p-Fans.mkv")
			So(err, ShouldBeNil)
			So(ep.Extension, ShouldEqual, "mkv")
			So(ep.Group.MustGet(), ShouldEqual, "Fans")
		})

		Convey("A bare resolution suffix is not a group", func() {
			ep, err := Parse("Show.Name.S02E10-1080p")
			So(err, ShouldBeNil)
			So(ep.Group.IsAbsent(), ShouldBeTrue)
			So(ep.Resolution, ShouldEqual, source.Resolution1080p)
		})

		Convey("Extra scene tokens between resolution and group", func() {
			ep, err := Parse("Show.Name.S01E05.720p.WEB.x264-GRP")
			So(err, ShouldBeNil)
			So(ep.SeriesName, ShouldEqual, "Show Name")
			So(ep.Resolution, ShouldEqual, source.Resolution720p)
			So(ep.Group.MustGet(), ShouldEqual, "GRP")
		})
	})
}

func TestParseFailure(t *testing.T) {
	Convey("Unparsable titles", t, func() {
		for _, title := range []string{
			"",
			"   ",
			"Show Name",
			"Just.Some.Words",
			"Complete Season Batch",
		} {
			Convey("Title "+title, func() {
				ep, err := Parse(title)
				So(ep, ShouldBeNil)
				So(err, ShouldNotBeNil)
				So(err, ShouldHaveSameTypeAs, &ParseError{})
			})
		}
	})
}

func TestStrategyPriority(t *testing.T) {
	Convey("Conventions are attempted in fixed order", t, func() {
		Convey("A dash-number marker wins over a dotted tail", func() {
			ep, err := Parse("[Grp] Show Name - 05 [720p]")
			So(err, ShouldBeNil)
			So(ep.Group.MustGet(), ShouldEqual, "Grp")
		})

		Convey("Without the marker the dotted convention applies", func() {
			ep, err := Parse("Show.Name.S02E10.1080p-Fans")
			So(err, ShouldBeNil)
			So(ep.Season.MustGet(), ShouldEqual, 2)
		})
	})
}
