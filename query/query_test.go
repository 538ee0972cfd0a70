package query

import (
	"testing"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestRemember(t *testing.T) {
	Convey("Given a remembered query", t, func() {
		So(Remember("The Expanse", 1), ShouldBeNil)

		Convey("Remembering it again raises its rank", func() {
			So(Remember("the expanse", 10), ShouldBeNil)

			history, _, err := store.Get()
			So(err, ShouldBeNil)
			So(history["the expanse"].Rank, ShouldEqual, 11)
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Given a history with ranked queries", t, func() {
		So(Remember("dark matter", 1), ShouldBeNil)
		So(Remember("the expanse", 20), ShouldBeNil)
		memo = make(map[string][]*record)

		Convey("SuggestMany ranks the popular query first", func() {
			got := SuggestMany("the ex")
			So(len(got), ShouldBeGreaterThanOrEqualTo, 1)
			So(got[0], ShouldEqual, "the expanse")
		})

		Convey("Suggest picks the best match", func() {
			So(Suggest("dark").OrElse(""), ShouldEqual, "dark matter")
		})

		Convey("An unknown input yields nothing", func() {
			So(SuggestMany("zzzzzz"), ShouldBeEmpty)
		})

		Convey("Input is folded before matching", func() {
			So(sanitize("  Dark Matter  "), ShouldEqual, "dark matter")
		})
	})
}
