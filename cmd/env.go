package cmd

import (
	"os"
	"strings"

	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/config"
	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/style"
	"github.com/episan-cli/episan/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "list only variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "list only variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables the application reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := make([]string, 0, len(config.EnvExposed)+1)
		for _, k := range config.EnvExposed {
			names = append(names, strings.ToUpper(constant.Episan+"_"+config.EnvKeyReplacer.Replace(k)))
		}
		names = append(names, where.EnvConfigPath)
		slices.Sort(names)

		for _, name := range names {
			value, present := os.LookupEnv(name)
			if setOnly && !present || unsetOnly && present {
				continue
			}

			rendered := style.Fg(color.Red)("unset")
			if present {
				rendered = style.Fg(color.Green)(value)
			}

			cmd.Printf("%s=%s\n", style.New().Bold(true).Foreground(color.Purple).Render(name), rendered)
		}
	},
}
