package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/config"
	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/style"
	"github.com/episan-cli/episan/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errUnknownKey suggests the closest registered key by edit distance.
func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

func mustKnownKey(key string) {
	if _, ok := config.Default[key]; !ok {
		handleErr(errUnknownKey(key))
	}
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func configFilePath() string {
	return filepath.Join(where.Config(), constant.Episan+".toml")
}

func persistConfig() {
	handleErr(config.Persist())
}

func confirmf(format string, args ...any) {
	fmt.Printf(
		"%s %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		fmt.Sprintf(format, args...),
	)
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change the configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "keys to describe, all when empty")
	configInfoCmd.Flags().BoolP("json", "j", false, "output as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields with their current values",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))

		fields := lo.Values(config.Default)
		if len(keys) > 0 {
			fields = lo.Map(keys, func(key string, _ int) config.Field {
				mustKnownKey(key)
				return config.Default[key]
			})
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			fmt.Print(field.Pretty())
			if i < len(fields)-1 {
				fmt.Print("\n\n")
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>...",
	Short:             "Change a configuration value",
	Long:              "Change a configuration value. List values take several arguments,\nmap values take name=value pairs.",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		mustKnownKey(key)

		value, err := coerceValue(config.Default[key].Value, args[1:])
		handleErr(err)

		viper.Set(key, value)
		persistConfig()

		confirmf(
			"set %s to %s",
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", value)),
		)
	},
}

// coerceValue parses raw argument strings into the same type as the
// key's default value.
func coerceValue(like any, raw []string) (any, error) {
	switch like.(type) {
	case string:
		return raw[0], nil
	case int:
		parsed, err := strconv.ParseInt(raw[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		return int(parsed), nil
	case bool:
		parsed, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		return parsed, nil
	case []string:
		return raw, nil
	case []int:
		numbers := make([]int, 0, len(raw))
		for _, item := range raw {
			parsed, err := strconv.ParseInt(item, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid integer value: %s", item)
			}
			numbers = append(numbers, int(parsed))
		}
		return numbers, nil
	case map[string]string:
		entries := make(map[string]string, len(raw))
		for _, item := range raw {
			name, entry, found := strings.Cut(item, "=")
			if !found {
				return nil, fmt.Errorf("expected name=value, got: %s", item)
			}
			entries[name] = entry
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", like)
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print a configuration value",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		mustKnownKey(args[0])
		fmt.Println(viper.Get(args[0]))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the effective configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(configFilePath()); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		confirmf("wrote config to %s", configFilePath())
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFilePath()))
		confirmf("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore configuration keys to their defaults",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(fmt.Errorf("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			persistConfig()
			confirmf("reset all config values")
			return
		}

		key := lo.Must(cmd.Flags().GetString("key"))
		mustKnownKey(key)
		viper.Set(key, config.Default[key].Value)
		persistConfig()

		confirmf(
			"reset %s to default value %s",
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", config.Default[key].Value)),
		)
	},
}
