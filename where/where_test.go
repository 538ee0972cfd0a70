package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/episan-cli/episan/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestDirectories(t *testing.T) {
	Convey("Each directory accessor returns an existing directory", t, func() {
		for name, dir := range map[string]func() string{
			"Config":    Config,
			"Cache":     Cache,
			"Logs":      Logs,
			"Sources":   Sources,
			"Downloads": Downloads,
			"Temp":      Temp,
		} {
			Convey(name, func() {
				path := dir()

				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}
	})
}

func TestFiles(t *testing.T) {
	Convey("File paths live under their owning directory", t, func() {
		So(Seen(), ShouldEqual, filepath.Join(Config(), "seen.json"))
		So(Queue(), ShouldEqual, filepath.Join(Config(), "queue.json"))
		So(Queries(), ShouldEqual, filepath.Join(Cache(), "queries.json"))
	})
}

func TestConfigOverride(t *testing.T) {
	Convey("The environment variable overrides the config directory", t, func() {
		dir := filepath.Join(os.TempDir(), "episan-config-override")
		So(os.Setenv(EnvConfigPath, dir), ShouldBeNil)
		defer os.Unsetenv(EnvConfigPath)

		So(Config(), ShouldEqual, dir)
		So(Seen(), ShouldEqual, filepath.Join(dir, "seen.json"))
	})
}
