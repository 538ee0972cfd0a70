// Package cache provides the filesystem cache for provider search results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/where"
)

// TTL bounds how long a cached search result stays valid.
const TTL = 7 * 24 * time.Hour

// dir is where the entries live, separate from the other cache files so
// garbage collection never touches them.
func dir() string {
	path := filepath.Join(where.Cache(), "search")
	_ = filesystem.API().MkdirAll(path, os.ModePerm)
	return path
}

// GenerateKey derives a deterministic cache identifier from a query and the
// provider that answered it.
func GenerateKey(query, provider string) string {
	folded := strings.ToLower(strings.ReplaceAll(query, " ", "")) + provider
	sum := sha256.Sum256([]byte(folded))
	return hex.EncodeToString(sum[:])
}

// Read loads the entry under key into target. It reports false when the
// entry is missing, expired or unreadable.
func Read(key string, target any) bool {
	path := filepath.Join(dir(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(content, target) == nil
}

// Write persists data under key, swapping the file in atomically.
func Write(key string, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	path := filepath.Join(dir(), key)
	tmp := path + ".tmp"
	if err := filesystem.API().WriteFile(tmp, encoded, 0644); err != nil {
		return err
	}

	return filesystem.API().Rename(tmp, path)
}

// CollectGarbage prunes expired entries. Meant to run in the background on
// startup.
func CollectGarbage() {
	_ = filesystem.API().Walk(dir(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > TTL {
			_ = filesystem.API().Remove(path)
		}

		return nil
	})
}
