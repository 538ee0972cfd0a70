package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/episan-cli/episan/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

// fakeDaemon speaks just enough of the RPC dialect for the client under test.
func fakeDaemon(t *testing.T) *httptest.Server {
	t.Helper()

	const session = "session-token"

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(sessionHeader) != session {
			w.Header().Set(sessionHeader, session)
			w.WriteHeader(http.StatusConflict)
			return
		}

		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Method {
		case "session-get":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"result":    "success",
				"arguments": map[string]any{"version": "4.0.5"},
			})
		case "torrent-add":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"result": "success",
				"arguments": map[string]any{
					"torrent-added": map[string]any{"id": 1, "name": "Show Name S01E05", "hashString": "abc"},
				},
			})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"result": "method not recognized"})
		}
	}))
}

func TestClient(t *testing.T) {
	Convey("Given a running daemon", t, func() {
		daemon := fakeDaemon(t)
		defer daemon.Close()

		viper.Set(key.DownloadClientURL, daemon.URL)
		viper.Set(key.DownloadClientUser, "")
		sessionID = ""

		Convey("Version should survive the session handshake", func() {
			version, err := Version()
			So(err, ShouldBeNil)
			So(version, ShouldEqual, "4.0.5")
			So(sessionID, ShouldNotBeEmpty)
		})

		Convey("Add should return the registered torrent name", func() {
			name, err := Add("https://example.com/release.torrent")
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "Show Name S01E05")
		})

		Convey("Unknown methods should surface the daemon result", func() {
			err := call("no-such-method", nil, nil)
			So(err, ShouldNotBeNil)
		})
	})
}
