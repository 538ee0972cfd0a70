package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/inline"
	"github.com/episan-cli/episan/query"
	"github.com/episan-cli/episan/util"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search text to send to each source")
	lo.Must0(inlineCmd.MarkFlagRequired("query"))
	inlineCmd.Flags().StringSliceP("sources", "S", nil, "Search the named sources instead of the configured defaults")
	inlineCmd.Flags().StringP("series", "s", "", "Criteria for picking one series from the results")
	inlineCmd.Flags().StringP("episodes", "e", "", "Criteria for trimming the selected episodes")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	inlineCmd.Flags().BoolP("links", "l", false, "Print release links instead of episode names")
	inlineCmd.Flags().BoolP("download", "d", false, "Hand the selected episodes to the download handler")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")

	selectionFlags(inlineCmd)

	inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	inlineCmd.RegisterFlagCompletionFunc("sources", sourceNamesCompletion)
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Search and select episodes without prompts",
	Long: `Search, select and emit episodes without any prompts, for scripts
and cron jobs.

Series selectors:
  first - first series in the result
  last - last series in the result
  [number] - select a series by index (starting from 0)
  [name] - select a series by exact name (case-insensitive)

Episode selectors:
  first - first episode of the selection
  last - last episode of the selection
  all - every episode of the selection
  [number] - select an episode by index (starting from 0)
  [from]-[to] - select episodes by index range
  @[substring]@ - select episodes whose name contains the substring

Without a series selector the whole selection is emitted.`,
	Example: `episan inline -q 'dark matter' -s first -e last -d`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := sourcesFromNames(lo.Must(cmd.Flags().GetStringSlice("sources")))
		handleErr(err)

		text := lo.Must(cmd.Flags().GetString("query"))
		go query.Remember(text, 1)

		criteria, err := selectionFromFlags(cmd)
		handleErr(err)

		var out io.Writer = os.Stdout
		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			file, err := filesystem.API().Create(path)
			handleErr(err)
			defer util.Ignore(file.Close)
			out = file
		}

		seriesPicker := mo.None[inline.SeriesPicker]()
		if value := lo.Must(cmd.Flags().GetString("series")); value != "" {
			picker, err := parseSeriesFlag(value)
			handleErr(err)
			seriesPicker = mo.Some(picker)
		}

		episodesFilter := mo.None[inline.EpisodesFilter]()
		if value := lo.Must(cmd.Flags().GetString("episodes")); value != "" {
			filter, err := inline.ParseEpisodesFilter(value)
			handleErr(err)
			episodesFilter = mo.Some(filter)
		}

		handleErr(inline.Run(&inline.Options{
			Out:            out,
			Sources:        sources,
			Query:          text,
			Selection:      criteria,
			Json:           lo.Must(cmd.Flags().GetBool("json")),
			Links:          lo.Must(cmd.Flags().GetBool("links")),
			Download:       lo.Must(cmd.Flags().GetBool("download")),
			SeriesPicker:   seriesPicker,
			EpisodesFilter: episodesFilter,
		}))
	},
}

// parseSeriesFlag maps the --series flag onto a picker: "first", "last",
// a numeric index, or an exact series name.
func parseSeriesFlag(value string) (inline.SeriesPicker, error) {
	switch {
	case value == "first" || value == "last":
		return inline.ParseSeriesPicker(value, "")
	default:
		if _, err := strconv.ParseUint(value, 10, 16); err == nil {
			return inline.ParseSeriesPicker("index", value)
		}

		return inline.ParseSeriesPicker("exact", value)
	}
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema for the structured inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for the structured inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "episode", "output", "query":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
