// Package provider manages built-in and custom catalog providers.
package provider

import (
	"bytes"
	"path/filepath"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/provider/custom"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/util"
	"github.com/episan-cli/episan/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// CustomProviderExtension is the file extension a catalog script must carry.
const CustomProviderExtension = ".lua"

// sharedScriptName is the helper library installed scripts may require.
// It lives in the sources directory but is not a provider itself.
const sharedScriptName = "common.lua"

// Provider describes one installable catalog and knows how to open it.
type Provider struct {
	ID           string
	Name         string
	UsesHeadless bool // Script requires a headless browser.
	IsCustom     bool
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns one RSS-backed provider per configured feed.
func Builtins() []*Provider {
	feeds := viper.GetStringMapString(key.SourceFeeds)

	names := lo.Keys(feeds)
	slices.Sort(names)

	return lo.Map(names, func(name string, _ int) *Provider {
		return &Provider{
			ID:   name + " builtin",
			Name: name,
			CreateSource: func() (source.Source, error) {
				return newRSSSource(name, feeds[name]), nil
			},
		}
	})
}

// Customs returns all available Lua providers, ignoring load errors.
func Customs() []*Provider {
	providers, _ := CustomProviders()
	return providers
}

// Get finds a provider by name. Custom scripts take priority over builtins,
// which lets a user shadow a feed with a script of the same name.
func Get(name string) (*Provider, bool) {
	for _, p := range Customs() {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range Builtins() {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// GetByID finds a provider by the stable identifier recorded in grab history.
func GetByID(id string) (*Provider, bool) {
	for _, p := range append(Customs(), Builtins()...) {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// CustomProviders scans the sources directory for catalog scripts.
func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if filepath.Ext(f.Name()) != CustomProviderExtension || f.Name() == sharedScriptName {
			continue
		}

		path := filepath.Join(where.Sources(), f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:           custom.IDfromName(name),
			Name:         name,
			UsesHeadless: isHeadless(path),
			IsCustom:     true,
			CreateSource: func() (source.Source, error) {
				return custom.LoadSource(path)
			},
		})
	}

	return providers, nil
}

// isHeadless sniffs whether the script pulls in the headless browser module.
func isHeadless(path string) bool {
	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return bytes.Contains(content, []byte(`require("headless")`)) ||
		bytes.Contains(content, []byte(`require('headless')`))
}
