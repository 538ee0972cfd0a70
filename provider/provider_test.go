package provider

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When a feed is configured", t, func() {
		viper.Set(key.SourceFeeds, map[string]string{"nyaa": "https://nyaa.si/?page=rss&q=%s"})

		Convey("Builtins should expose it", func() {
			builtins := Builtins()
			So(len(builtins), ShouldEqual, 1)
			So(builtins[0].Name, ShouldEqual, "nyaa")
		})

		Convey("Get should find it by name", func() {
			p, ok := Get("nyaa")
			So(ok, ShouldBeTrue)
			So(p.IsCustom, ShouldBeFalse)

			src, err := p.CreateSource()
			So(err, ShouldBeNil)
			So(src.Name(), ShouldEqual, "nyaa")
		})
	})
}

func TestRSSSource(t *testing.T) {
	Convey("Given an RSS search feed", t, func(c C) {
		const feed = `<?xml version="1.0" encoding="utf-8"?>
<rss version="2.0">
  <channel>
    <title>releases</title>
    <item>
      <title>[Fans] Show Name - 05 [720p]</title>
      <link>https://example.com/view/5</link>
      <enclosure url="https://example.com/dl/5.torrent" type="application/x-bittorrent"/>
    </item>
    <item>
      <title>Show.Name.S02E10.1080p-Fans</title>
      <link>https://example.com/view/10</link>
    </item>
    <item>
      <title></title>
      <link>https://example.com/view/skip</link>
    </item>
  </channel>
</rss>`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.URL.Query().Get("q"), ShouldEqual, "show name")
			_, _ = w.Write([]byte(feed))
		}))
		defer server.Close()

		src := newRSSSource("test feed", server.URL+"/?page=rss&q=%s")

		Convey("Search should return one candidate per usable item", func() {
			candidates, err := src.Search("show name")
			So(err, ShouldBeNil)
			So(len(candidates), ShouldEqual, 2)

			Convey("And prefer the enclosure link", func() {
				So(candidates[0].Title, ShouldEqual, "[Fans] Show Name - 05 [720p]")
				So(candidates[0].Link, ShouldEqual, "https://example.com/dl/5.torrent")
				So(candidates[1].Link, ShouldEqual, "https://example.com/view/10")
			})
		})
	})

	Convey("searchURL should escape the query", t, func() {
		src := newRSSSource("x", "https://example.com/rss?q=%s")
		So(src.searchURL("show name"), ShouldEqual, "https://example.com/rss?q=show+name")

		Convey("And append when the template has no slot", func() {
			bare := newRSSSource("x", "https://example.com/rss?q=")
			So(bare.searchURL("show name"), ShouldEqual, "https://example.com/rss?q=show+name")
		})
	})
}
