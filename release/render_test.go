package release

import (
	"testing"

	"github.com/episan-cli/episan/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRender(t *testing.T) {
	Convey("Render", t, func() {
		full := &source.Episode{
			SeriesName: "Show Name",
			Season:     mo.Some(2),
			Number:     10,
			Group:      mo.Some("Fans"),
			Resolution: source.Resolution1080p,
			Extension:  "mkv",
		}

		bare := &source.Episode{
			SeriesName: "Show Name",
			Number:     5,
		}

		Convey("Bracketed style", func() {
			So(Render(full, StyleBracketed), ShouldEqual, "[Fans] Show Name S2 - 10 [1080p][mkv]")
			So(Render(bare, StyleBracketed), ShouldEqual, "Show Name - 05")
		})

		Convey("Dotted style", func() {
			So(Render(full, StyleDotted), ShouldEqual, "Show.Name.S02E10.1080p-Fans.mkv")
			So(Render(bare, StyleDotted), ShouldEqual, "Show.Name.S01E05")
		})

		Convey("Round trip through the parser", func() {
			for _, style := range []Style{StyleBracketed, StyleDotted} {
				rendered := Render(full, style)

				ep, err := Parse(rendered)
				So(err, ShouldBeNil)
				So(ep.Identity(), ShouldResemble, full.Identity())
				So(ep.Resolution, ShouldEqual, full.Resolution)
				So(ep.Group.MustGet(), ShouldEqual, "Fans")
			}
		})
	})
}

func TestParseStyle(t *testing.T) {
	Convey("ParseStyle", t, func() {
		So(ParseStyle("dotted"), ShouldEqual, StyleDotted)
		So(ParseStyle("Dotted"), ShouldEqual, StyleDotted)
		So(ParseStyle("bracketed"), ShouldEqual, StyleBracketed)

		Convey("Defaults to bracketed", func() {
			So(ParseStyle(""), ShouldEqual, StyleBracketed)
			So(ParseStyle("nonsense"), ShouldEqual, StyleBracketed)
		})
	})
}
