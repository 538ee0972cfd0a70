package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/episan-cli/episan/inline"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/log"
	"github.com/episan-cli/episan/provider"
	"github.com/episan-cli/episan/query"
	"github.com/episan-cli/episan/search"
	"github.com/episan-cli/episan/source"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("query", "q", "", "The search text to send to each source")
	lo.Must0(searchCmd.MarkFlagRequired("query"))
	searchCmd.Flags().StringSliceP("sources", "S", nil, "Search the named sources instead of the configured defaults")
	searchCmd.Flags().BoolP("json", "j", false, "Format the results as a JSON object")

	selectionFlags(searchCmd)

	searchCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	searchCmd.RegisterFlagCompletionFunc("sources", sourceNamesCompletion)
}

// searchCmd searches the sources once and prints the selected episodes.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the sources and print the matching episodes",
	Long: `Search every source for the query, run the results through the
configured selection criteria and print what survived. Criteria flags are
layered on top of the search defaults from the config.`,
	Example: "episan search -q 'dark matter' -r 1080p --latest",
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := sourcesFromNames(lo.Must(cmd.Flags().GetStringSlice("sources")))
		handleErr(err)

		text := lo.Must(cmd.Flags().GetString("query"))
		go query.Remember(text, 1)

		pool := search.BuildPool(sources, text)
		for _, failure := range pool.Failures {
			log.Warn(failure)
		}
		if len(pool.Failures) == len(sources) {
			handleErr(fmt.Errorf("every source failed: %w", pool.Failures[0]))
		}

		criteria, err := selectionFromFlags(cmd)
		handleErr(err)

		episodes := search.Select(pool.Episodes, criteria)

		if lo.Must(cmd.Flags().GetBool("json")) {
			result := lo.Map(episodes, func(e *source.Episode, _ int) *inline.Episode {
				return &inline.Episode{Source: e.Source.Name(), Episode: e}
			})
			handleErr(json.NewEncoder(os.Stdout).Encode(&inline.Output{
				Query:    text,
				Criteria: criteria,
				Result:   result,
			}))
			return
		}

		if len(episodes) == 0 {
			fmt.Println("No episodes matched")
			return
		}

		rows := make([]table.Row, 0, len(episodes))
		for i, episode := range episodes {
			rows = append(rows, table.Row{
				i + 1,
				episode.SeriesName,
				episode.EffectiveSeason(),
				episode.Number,
				episode.Resolution,
				episode.Group.OrElse(""),
				episode.Extension,
				episode.Source.Name(),
			})
		}

		fmt.Println(renderTable(
			table.Row{"#", "Series", "Season", "Episode", "Resolution", "Group", "Ext", "Source"},
			rows,
			1, 3, 4,
		))
	},
}

// selectionFlags attaches the episode selection criteria flags shared by the
// headless commands.
func selectionFlags(cmd *cobra.Command) {
	cmd.Flags().IntSlice("seasons", nil, "Restrict matching to the given season numbers")
	cmd.Flags().IntSlice("numbers", nil, "Restrict matching to the given episode numbers")
	cmd.Flags().StringSliceP("resolutions", "r", nil, `Restrict matching to the given resolutions ("any" resets)`)
	cmd.Flags().StringSliceP("extensions", "x", nil, `Restrict matching to the given file extensions ("any" resets)`)
	cmd.Flags().StringSliceP("groups", "g", nil, "Restrict matching to the given release groups")
	cmd.Flags().BoolP("latest", "L", false, "Keep only the newest episode of each series")
	cmd.Flags().BoolP("duplicates", "D", false, "Keep every release variant of the same episode")
}

// selectionFromFlags layers the criteria flags of cmd on top of the
// configured search defaults.
func selectionFromFlags(cmd *cobra.Command) (*search.Query, error) {
	builder := search.ConfigBuilder()

	// Booleans override the config only when set, so that a configured
	// default of true survives an invocation without the flag.
	if cmd.Flags().Changed("latest") {
		builder.Latest(lo.Must(cmd.Flags().GetBool("latest")))
	}
	if cmd.Flags().Changed("duplicates") {
		builder.Duplicates(lo.Must(cmd.Flags().GetBool("duplicates")))
	}

	return builder.
		Seasons(lo.Must(cmd.Flags().GetIntSlice("seasons"))...).
		Episodes(lo.Must(cmd.Flags().GetIntSlice("numbers"))...).
		Resolutions(lo.Must(cmd.Flags().GetStringSlice("resolutions"))...).
		Extensions(lo.Must(cmd.Flags().GetStringSlice("extensions"))...).
		Groups(lo.Must(cmd.Flags().GetStringSlice("groups"))...).
		Build()
}

// sourcesFromNames instantiates the named sources, falling back to the
// configured defaults when names is empty.
func sourcesFromNames(names []string) ([]source.Source, error) {
	if len(names) == 0 {
		names = viper.GetStringSlice(key.DefaultSources)
	}

	if len(names) == 0 {
		return nil, errors.New("no sources: pass --sources or set " + key.DefaultSources)
	}

	var sources []source.Source
	for _, name := range names {
		p, ok := provider.Get(name)
		if !ok {
			return nil, fmt.Errorf("source not found: %s", name)
		}

		src, err := p.CreateSource()
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", name, err)
		}

		sources = append(sources, src)
	}

	return sources, nil
}
