package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is one registered configuration key with its default value
// and help text.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Episan + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Pretty renders the field for the config info command.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// MarshalJSON emits the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        reflect.TypeOf(f.Value).String(),
	})
}

// Default indexes every known configuration field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys overridable through the environment.
var EnvExposed []string

func register(k string, v any, description string) {
	if _, taken := Default[k]; taken {
		panic("duplicate config key: " + k)
	}

	Default[k] = Field{Key: k, Value: v, Description: description}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.DefaultSources, []string{"nyaa"}, "Default sources to use.\nWill prompt if not set.\nType \"episan sources list\" to show available sources")
	register(key.SourceFeeds, map[string]string{"nyaa": "https://nyaa.si/?page=rss&q=%s"}, "Builtin RSS feed sources.\nMaps a source name to a feed URL where %s is replaced with the search query")

	register(key.SearchSeasons, []int{}, "Season numbers to match.\nEmpty matches any season")
	register(key.SearchEpisodes, []int{}, "Episode numbers to match.\nEmpty matches any episode")
	register(key.SearchResolutions, []string{}, "Resolutions to match (480p, 720p, 1080p, unknown).\nEmpty matches any resolution")
	register(key.SearchExtensions, []string{}, "File extensions to match.\nEmpty matches any extension")
	register(key.SearchGroups, []string{}, "Release groups to match.\nEmpty matches any group")
	register(key.SearchLatest, false, "Only keep the latest episode per series (per season when seasons are given)")
	register(key.SearchDuplicates, false, "Keep every release variant of the same episode")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")

	register(key.FormatStyle, "bracketed", "Release naming style used when rendering episodes.\nAvailable options are: bracketed, dotted")

	register(key.SeenSaveOnGrab, true, "Remember grabbed episodes")
	register(key.SeenSkip, false, "Hide episodes that were already grabbed")

	register(key.DownloadHandler, "save", "What to do with a selected release.\nAvailable options are: save, open, client")
	register(key.DownloadClientURL, "http://127.0.0.1:9091/transmission/rpc", "Transmission-compatible RPC endpoint used by the client handler")
	register(key.DownloadClientUser, "", "Username for the download client RPC.\nThe password is kept in the system keyring, see \"episan client\"")

	register(key.MiniSearchLimit, 20, "Limit of search results to show")

	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")

	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUIGrabOnEnter, true, "Grab episode on enter if other episodes aren't selected")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUIShowLinks, true, "Show links under list items")
	register(key.TUIReverseEpisodes, false, "Reverse episodes order")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
