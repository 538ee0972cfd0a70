package icon

import (
	"testing"

	"github.com/episan-cli/episan/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Every registered icon renders under every variant", t, func() {
		for _, variant := range AvailableVariants() {
			viper.Set(key.IconsVariant, variant)
			for id := range icons {
				So(Get(id), ShouldNotBeEmpty)
			}
		}
	})

	Convey("The configured variant picks the matching glyph", t, func() {
		viper.Set(key.IconsVariant, plain)
		So(Get(Lua), ShouldEqual, "Lua")
		So(Get(Fail), ShouldEqual, "[x]")

		viper.Set(key.IconsVariant, emoji)
		So(Get(Success), ShouldEqual, "✅")
	})

	Convey("An unknown variant renders nothing", t, func() {
		viper.Set(key.IconsVariant, "sculpture")
		So(Get(Search), ShouldBeEmpty)
	})
}

func TestAvailableVariants(t *testing.T) {
	Convey("All variants are listed once", t, func() {
		variants := AvailableVariants()
		So(variants, ShouldHaveLength, 5)
		So(variants, ShouldContain, nerd)
		So(variants, ShouldContain, kaomoji)
	})
}
