// Package scraper runs and refreshes the Lua catalog scripts.
package scraper

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/episan-cli/episan/network"
)

// Refresh downloads remoteURL and atomically replaces localPath when the
// content differs. It reports whether the file changed.
func Refresh(ctx context.Context, remoteURL, localPath string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return false, err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("fetch %s: %s", remoteURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	if local, err := os.ReadFile(localPath); err == nil {
		if sha256.Sum256(local) == sha256.Sum256(body) {
			return false, nil
		}
	}

	// Swap through a sibling so a crash never leaves a torn script behind.
	tmp := localPath + ".tmp"
	if err := os.WriteFile(tmp, body, 0644); err != nil {
		return false, err
	}

	if err := os.Rename(tmp, localPath); err != nil {
		_ = os.Remove(tmp)
		return false, err
	}

	// Drop the stale prototype so the next load recompiles.
	protoCache.Delete(localPath)

	return true, nil
}
