package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Versions are ordered numerically per segment", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"1.2.0", "1.1.9", 1},
			{"0.9.9", "1.0.0", -1},
			{"v2.0.1", "2.0.0", 1},
			{"1.10.0", "1.9.0", 1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}
	})

	Convey("Malformed versions are rejected", t, func() {
		_, err := Compare("1.2", "1.2.3")
		So(err, ShouldNotBeNil)

		_, err = Compare("1.2.3", "latest")
		So(err, ShouldNotBeNil)
	})
}
