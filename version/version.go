// Package version knows the running release and how to discover newer
// ones.
package version

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/network"
	"github.com/episan-cli/episan/util"
	"github.com/episan-cli/episan/where"
	"github.com/metafates/gache"
)

const releasesAPI = "https://api.github.com/repos/episan-cli/episan/releases/latest"

// latestCache keeps the remote answer for two days so repeated runs
// stay inside the unauthenticated GitHub rate limit.
var latestCache = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 48,
	FileSystem: &filesystem.GacheFs{},
})

// Latest reports the newest released version, without the v prefix.
func Latest() (string, error) {
	cached, expired, err := latestCache.Get()
	if err == nil && !expired && cached != "" {
		return cached, nil
	}

	resp, err := network.Client.Get(releasesAPI)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	if release.TagName == "" {
		return "", errors.New("release has no tag name")
	}

	version := strings.TrimPrefix(release.TagName, "v")
	_ = latestCache.Set(version)
	return version, nil
}
