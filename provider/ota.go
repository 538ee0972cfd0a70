package provider

import (
	"context"
	"path/filepath"
	"time"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/internal/scraper"
	"github.com/episan-cli/episan/log"
	"github.com/episan-cli/episan/where"
	tea "github.com/charmbracelet/bubbletea"
)

// RepoRawURL is where installed catalog scripts are refreshed from.
const RepoRawURL = "https://raw.githubusercontent.com/episan-cli/scrapers/main/"

// ScraperUpdatedMsg is dispatched to the event loop when a script update landed.
type ScraperUpdatedMsg struct{}

// UpdateScrapers refreshes the installed catalog scripts from the scrapers
// repository. Hash checks keep unchanged scripts off the disk.
func UpdateScrapers() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		updated := false
		for _, name := range installedScripts() {
			changed, err := scraper.Refresh(ctx, RepoRawURL+name, filepath.Join(where.Sources(), name))
			if err != nil {
				log.Warnf("script update failed for %s: %v", name, err)
				continue
			}

			updated = updated || changed
		}

		if !updated {
			return nil
		}

		log.Info("catalog scripts updated, reloading providers")
		return ScraperUpdatedMsg{}
	}
}

// installedScripts lists the script files present under the sources
// directory. Only present scripts are refreshed: installing new ones is an
// explicit action.
func installedScripts() []string {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil
	}

	var names []string
	for _, f := range files {
		if filepath.Ext(f.Name()) == CustomProviderExtension {
			names = append(names, f.Name())
		}
	}

	return names
}
