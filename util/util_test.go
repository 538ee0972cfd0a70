package util

import (
	"regexp"
	"testing"

	"github.com/episan-cli/episan/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("Sanitizing release names for disk", t, func() {
		Convey("Spaces and punctuation turn into underscores", func() {
			So(SanitizeFilename("Dark Matter S01E04"), ShouldEqual, "Dark_Matter_S01E04")
		})

		Convey("Runs of underscores collapse", func() {
			So(SanitizeFilename("a  ?  b"), ShouldEqual, "a_b")
		})

		Convey("Leading and trailing separators are trimmed", func() {
			So(SanitizeFilename("-release-."), ShouldEqual, "release")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "episode", "episodes"), ShouldEqual, "1 episode")
		So(Quantify(3, "episode", "episodes"), ShouldEqual, "3 episodes")
		So(Quantify(0, "episode", "episodes"), ShouldEqual, "0 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("eztv"), ShouldEqual, "Eztv")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<series>.+) - (?P<episode>\d+)`)

		Convey("Named groups map to their captures", func() {
			groups := ReGroups(re, "Dark Matter - 04")
			So(groups["series"], ShouldEqual, "Dark Matter")
			So(groups["episode"], ShouldEqual, "04")
		})

		Convey("No match yields an empty map", func() {
			So(ReGroups(re, "no numbers here"), ShouldBeEmpty)
		})
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("sources/eztv.lua"), ShouldEqual, "eztv")
		So(FileStem("plain"), ShouldEqual, "plain")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max and Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("Deleting a file removes it", func() {
			So(fs.WriteFile("/seen.json", []byte("{}"), 0644), ShouldBeNil)
			So(Delete("/seen.json"), ShouldBeNil)

			_, err := fs.Stat("/seen.json")
			So(err, ShouldNotBeNil)
		})

		Convey("Deleting a directory removes its contents too", func() {
			So(fs.MkdirAll("/cache/nested", 0755), ShouldBeNil)
			So(fs.WriteFile("/cache/nested/entry", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/cache"), ShouldBeNil)

			_, err := fs.Stat("/cache")
			So(err, ShouldNotBeNil)
		})

		Convey("Deleting a missing path errors", func() {
			So(Delete("/nowhere"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Given an empty stack", t, func() {
		var s Stack[int]

		Convey("Pop and Peek return the zero value", func() {
			So(s.Pop(), ShouldEqual, 0)
			So(s.Peek(), ShouldEqual, 0)
		})

		Convey("Items come back in reverse push order", func() {
			s.Push(1)
			s.Push(2)
			s.Push(3)

			So(s.Len(), ShouldEqual, 3)
			So(s.Peek(), ShouldEqual, 3)
			So(s.Pop(), ShouldEqual, 3)
			So(s.Pop(), ShouldEqual, 2)
			So(s.Pop(), ShouldEqual, 1)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("Clear drops everything", func() {
			s.Push(7)
			s.Clear()
			So(s.Len(), ShouldEqual, 0)
		})
	})
}
