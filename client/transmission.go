// Package client provides a minimal Transmission-compatible RPC client used to hand grabbed releases off to a download daemon.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/episan-cli/episan/auth"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/log"
	"github.com/episan-cli/episan/network"
	"github.com/spf13/viper"
)

// sessionHeader carries the CSRF token the daemon hands out on a 409 response.
const sessionHeader = "X-Transmission-Session-Id"

var (
	sessionMutex sync.Mutex
	sessionID    string
)

type rpcRequest struct {
	Method    string `json:"method"`
	Arguments any    `json:"arguments,omitempty"`
}

type rpcResponse struct {
	Result    string          `json:"result"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// call performs a single RPC method against the configured endpoint,
// transparently renewing the session id when the daemon rejects it.
func call(method string, args, out any) error {
	payload, err := json.Marshal(rpcRequest{Method: method, Arguments: args})
	if err != nil {
		return fmt.Errorf("encode rpc request: %w", err)
	}

	endpoint := viper.GetString(key.DownloadClientURL)

	// At most two attempts: the first one may be spent on the session handshake.
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("create rpc request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")

		sessionMutex.Lock()
		if sessionID != "" {
			req.Header.Set(sessionHeader, sessionID)
		}
		sessionMutex.Unlock()

		if user := viper.GetString(key.DownloadClientUser); user != "" {
			password, err := auth.GetClientPassword()
			if err != nil {
				log.Warnf("client password unavailable: %s", err)
			}
			req.SetBasicAuth(user, password)
		}

		resp, err := network.Client.Do(req)
		if err != nil {
			return fmt.Errorf("rpc request: %w", err)
		}

		if resp.StatusCode == http.StatusConflict {
			sessionMutex.Lock()
			sessionID = resp.Header.Get(sessionHeader)
			sessionMutex.Unlock()
			_ = resp.Body.Close()
			continue
		}

		if resp.StatusCode == http.StatusUnauthorized {
			_ = resp.Body.Close()
			return fmt.Errorf("unauthorized (check %s and the stored password, run `episan client`)", key.DownloadClientUser)
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return fmt.Errorf("rpc status %s", resp.Status)
		}

		var body rpcResponse
		err = json.NewDecoder(resp.Body).Decode(&body)
		_ = resp.Body.Close()
		if err != nil {
			return fmt.Errorf("decode rpc response: %w", err)
		}

		if body.Result != "success" {
			return fmt.Errorf("rpc result %q", body.Result)
		}

		if out != nil && len(body.Arguments) > 0 {
			if err := json.Unmarshal(body.Arguments, out); err != nil {
				return fmt.Errorf("decode rpc arguments: %w", err)
			}
		}

		return nil
	}

	return fmt.Errorf("rpc session handshake failed with %s", endpoint)
}

// addedTorrent mirrors the torrent info block the daemon returns on add.
type addedTorrent struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Hash string `json:"hashString"`
}

// Add submits a release link to the daemon and returns the torrent name it registered.
// Links already present on the daemon are reported as duplicates, not errors.
func Add(link string) (string, error) {
	var result struct {
		Added     *addedTorrent `json:"torrent-added"`
		Duplicate *addedTorrent `json:"torrent-duplicate"`
	}

	args := map[string]any{"filename": link}
	if err := call("torrent-add", args, &result); err != nil {
		return "", err
	}

	switch {
	case result.Added != nil:
		return result.Added.Name, nil
	case result.Duplicate != nil:
		log.Infof("torrent already present: %s", result.Duplicate.Name)
		return result.Duplicate.Name, nil
	default:
		return "", fmt.Errorf("daemon accepted the call but reported no torrent")
	}
}

// Version asks the daemon for its version string. Used to verify connectivity.
func Version() (string, error) {
	var result struct {
		Version string `json:"version"`
	}

	if err := call("session-get", nil, &result); err != nil {
		return "", err
	}

	return result.Version, nil
}
