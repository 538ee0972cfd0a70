package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/internal/scraper"
	"github.com/episan-cli/episan/network"
	"github.com/episan-cli/episan/provider"
	"github.com/episan-cli/episan/style"
	"github.com/episan-cli/episan/util"
	"github.com/episan-cli/episan/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage the release catalogs",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "names only, no headers")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "list only installed Lua sources")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "list only builtin sources")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available sources",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		header := style.New().Foreground(color.HiBlue).Bold(true).Render

		section := func(title string, providers []*provider.Provider) {
			if !raw {
				cmd.Println(header(title))
			}
			for _, p := range providers {
				cmd.Println(p.Name)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			section("Builtin:", provider.Builtins())
		case lo.Must(cmd.Flags().GetBool("custom")):
			section("Custom:", provider.Customs())
		default:
			section("Builtin:", provider.Builtins())
			if !raw {
				cmd.Println()
			}
			section("Custom:", provider.Customs())
		}
	},
}

func installedSourceNames() []string {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil
	}

	return lo.FilterMap(files, func(f os.FileInfo, _ int) (string, bool) {
		if filepath.Ext(f.Name()) != provider.CustomProviderExtension {
			return "", false
		}
		return util.FileStem(f.Name()), true
	})
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "custom source to uninstall")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return installedSourceNames(), cobra.ShellCompDirectiveNoFileComp
	}))
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Uninstall custom Lua sources",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sources(), name+provider.CustomProviderExtension)
			handleErr(filesystem.API().Remove(path))
			confirmf("removed %s", style.Fg(color.Yellow)(name))
		}
	},
}

// scrapersContentsURL lists the files of the community scrapers
// repository through the GitHub contents API.
const scrapersContentsURL = "https://api.github.com/repos/episan-cli/scrapers/contents/"

type repoEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func availableScrapers() ([]string, error) {
	resp, err := network.Client.Get(scrapersContentsURL)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list scrapers: %s", resp.Status)
	}

	var entries []repoEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}

	return lo.FilterMap(entries, func(e repoEntry, _ int) (string, bool) {
		return e.Name, e.Type == "file" && filepath.Ext(e.Name) == provider.CustomProviderExtension
	}), nil
}

func init() {
	sourcesCmd.AddCommand(sourcesInstallCmd)
}

var sourcesInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install community catalog scripts",
	Long: `Pick catalog scripts from the community repository and install them
as custom sources. Installed scripts are kept up to date automatically.
https://github.com/episan-cli/scrapers`,
	Run: func(cmd *cobra.Command, args []string) {
		erase := util.PrintErasable(fmt.Sprintf("%s Fetching the scraper catalog...", icon.Get(icon.Progress)))
		available, err := availableScrapers()
		erase()
		handleErr(err)

		if len(available) == 0 {
			fmt.Println("The community repository has no scrapers yet")
			return
		}

		var picked []string
		prompt := survey.MultiSelect{
			Message: "Select scrapers to install:",
			Options: available,
		}
		handleErr(survey.AskOne(&prompt, &picked))

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		for _, name := range picked {
			target := filepath.Join(where.Sources(), name)
			_, err := scraper.Refresh(ctx, provider.RepoRawURL+name, target)
			handleErr(err)
			confirmf("installed %s", style.Fg(color.Yellow)(util.FileStem(name)))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "name of the new source")
	sourcesGenCmd.Flags().StringP("url", "u", "", "base URL of the site it scrapes")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a Lua source script",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		data := struct {
			Name             string
			URL              string
			SearchReleasesFn string
			SourceOptionsFn  string
			Author           string
		}{
			Name:             lo.Must(cmd.Flags().GetString("name")),
			URL:              lo.Must(cmd.Flags().GetString("url")),
			SearchReleasesFn: constant.SearchReleasesFn,
			SourceOptionsFn:  constant.SourceOptionsFn,
			Author:           author,
		}

		tmpl, err := template.New("source").Funcs(template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(data.Name)+provider.CustomProviderExtension)
		f, err := filesystem.API().Create(target)
		handleErr(err)
		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, data))
		cmd.Println(target)
	},
}
