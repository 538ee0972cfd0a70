package download

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/where"
	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/episan-cli/episan/source"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func testEpisode(link string) *source.Episode {
	return &source.Episode{
		SeriesName: "Counterpart",
		Season:     mo.Some(2),
		Number:     3,
		Resolution: source.Resolution720p,
		Extension:  "mkv",
		Link:       link,
	}
}

func TestSaveHandler(t *testing.T) {
	Convey("Given a reachable release link", t, func() {
		t.Setenv(where.EnvConfigPath, t.TempDir())

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("payload"))
		}))
		defer server.Close()

		viper.Set(key.DownloadHandler, HandlerSave)
		viper.Set(key.SeenSaveOnGrab, false)

		episode := testEpisode(server.URL)

		Convey("Do should store the body under downloads", func() {
			err := Do(episode)
			So(err, ShouldBeNil)

			path := filepath.Join(where.Downloads(), episode.Filename())
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "payload")
		})

		Convey("Do should reject an unknown handler", func() {
			viper.Set(key.DownloadHandler, "carrier-pigeon")
			So(Do(episode), ShouldNotBeNil)
		})
	})
}

func TestQueue(t *testing.T) {
	Convey("Given a failed daemon handoff", t, func() {
		t.Setenv(where.EnvConfigPath, t.TempDir())

		episode := testEpisode("https://example.com/release.torrent")

		Convey("Enqueue should persist a tagged record", func() {
			So(Enqueue(episode), ShouldBeNil)

			entries := pending()
			So(len(entries), ShouldEqual, 1)
			So(entries[0].ID, ShouldNotBeEmpty)
			So(entries[0].Link, ShouldEqual, episode.Link)
			So(entries[0].Name, ShouldEqual, episode.String())
		})

		Convey("reconcile should drain the queue once the daemon accepts", func() {
			So(Enqueue(episode), ShouldBeNil)

			daemon := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"result": "success",
					"arguments": map[string]any{
						"torrent-added": map[string]any{"id": 1, "name": "ok", "hashString": "abc"},
					},
				})
			}))
			defer daemon.Close()

			viper.Set(key.DownloadClientURL, daemon.URL)
			viper.Set(key.DownloadClientUser, "")

			reconcile()

			So(len(pending()), ShouldEqual, 0)
		})
	})
}
