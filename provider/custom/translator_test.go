package custom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func TestStringField(t *testing.T) {
	Convey("stringField", t, func() {
		L := lua.NewState()
		defer L.Close()

		tbl := L.NewTable()
		tbl.RawSetString("title", lua.LString("Show Name - 05"))
		tbl.RawSetString("count", lua.LNumber(3))

		Convey("Should return the value for a string entry", func() {
			So(stringField(tbl, "title", "fallback"), ShouldEqual, "Show Name - 05")
		})

		Convey("Should fall back for a missing key", func() {
			So(stringField(tbl, "nope", "fallback"), ShouldEqual, "fallback")
		})

		Convey("Should fall back for a non-string entry", func() {
			So(stringField(tbl, "count", "fallback"), ShouldEqual, "fallback")
		})
	})
}

func TestCandidateFromTable(t *testing.T) {
	Convey("candidateFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Should build a candidate from a complete table", func() {
			tbl := L.NewTable()
			tbl.RawSetString("title", lua.LString("[Fans] Show Name - 05 [720p]"))
			tbl.RawSetString("link", lua.LString("https://example.com/show-5"))

			candidate, err := candidateFromTable(tbl)
			So(err, ShouldBeNil)
			So(candidate.Title, ShouldEqual, "[Fans] Show Name - 05 [720p]")
			So(candidate.Link, ShouldEqual, "https://example.com/show-5")
		})

		Convey("Should reject a table without a title", func() {
			tbl := L.NewTable()
			tbl.RawSetString("link", lua.LString("https://example.com"))

			_, err := candidateFromTable(tbl)
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject a table without a link", func() {
			tbl := L.NewTable()
			tbl.RawSetString("title", lua.LString("Show Name - 05"))

			_, err := candidateFromTable(tbl)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestOptionFromTable(t *testing.T) {
	Convey("optionFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Should build an option from a complete table", func() {
			tbl := L.NewTable()
			tbl.RawSetString("name", lua.LString("category"))
			tbl.RawSetString("description", lua.LString("Catalog category to search in"))
			tbl.RawSetString("shape", lua.LString("string"))

			option, err := optionFromTable(tbl)
			So(err, ShouldBeNil)
			So(option.Name, ShouldEqual, "category")
			So(option.Description, ShouldEqual, "Catalog category to search in")
			So(option.Shape, ShouldEqual, "string")
		})

		Convey("Should reject a table without a name", func() {
			tbl := L.NewTable()
			tbl.RawSetString("description", lua.LString("no name"))

			_, err := optionFromTable(tbl)
			So(err, ShouldNotBeNil)
		})
	})
}
