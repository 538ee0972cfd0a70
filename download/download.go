// Package download hands selected releases off to their configured destination.
package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/episan-cli/episan/client"
	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/log"
	"github.com/episan-cli/episan/network"
	"github.com/episan-cli/episan/open"
	"github.com/episan-cli/episan/seen"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/where"
	"github.com/spf13/viper"
)

// Supported Handler Names - each maps a configuration value to a handoff strategy.
const (
	HandlerSave   = "save"
	HandlerOpen   = "open"
	HandlerClient = "client"
)

// Handlers returns the names of every available handoff strategy.
func Handlers() []string {
	return []string{HandlerSave, HandlerOpen, HandlerClient}
}

// Do hands the episode's release link to the configured handler and records
// the grab in the seen store when that is enabled.
func Do(episode *source.Episode) error {
	handler := viper.GetString(key.DownloadHandler)
	log.Infof("handing off %s via %s", episode, handler)

	var err error
	switch handler {
	case HandlerSave:
		err = save(episode)
	case HandlerOpen:
		err = open.Start(episode.Link)
	case HandlerClient:
		err = toClient(episode)
	default:
		return fmt.Errorf("unknown download handler %q", handler)
	}

	if err != nil {
		return err
	}

	if viper.GetBool(key.SeenSaveOnGrab) {
		if err := seen.Save(episode); err != nil {
			log.Warnf("failed to record grab: %s", err)
		}
	}

	return nil
}

// save fetches the release link over HTTP and stores the body under the
// downloads directory, named after the episode.
func save(episode *source.Episode) error {
	resp, err := network.Client.Get(episode.Link)
	if err != nil {
		return fmt.Errorf("fetch release: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch release: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read release: %w", err)
	}

	path := filepath.Join(where.Downloads(), episode.Filename())
	if err := filesystem.API().WriteFile(path, data, os.ModePerm); err != nil {
		return fmt.Errorf("store release: %w", err)
	}

	log.Infof("saved %s", path)
	return nil
}

// toClient submits the link to the download daemon. Failed submissions are
// queued so a later run can retry them.
func toClient(episode *source.Episode) error {
	name, err := client.Add(episode.Link)
	if err != nil {
		if queueErr := Enqueue(episode); queueErr != nil {
			log.Errorf("failed to queue %s: %s", episode, queueErr)
		}
		return fmt.Errorf("daemon handoff: %w (queued for retry)", err)
	}

	log.Infof("daemon accepted %s", name)
	return nil
}
