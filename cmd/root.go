// Package cmd implements the command-line interface for episan.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/log"
	"github.com/episan-cli/episan/provider"
	"github.com/episan-cli/episan/style"
	"github.com/episan-cli/episan/tui"
	"github.com/episan-cli/episan/util"
	"github.com/episan-cli/episan/version"
	"github.com/episan-cli/episan/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   constant.Episan,
	Short: "A minimalist command-line interface for grabbing episode releases",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line interface for grabbing episode releases"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(tui.Run(&tui.Options{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}))
	},
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("continue", "c", false, "Start from the grab history instead of the source picker")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant to render with (e.g. nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-seen", "H", true, "Record grabbed episodes in the grab history")
	lo.Must0(viper.BindPFlag(key.SeenSaveOnGrab, rootCmd.PersistentFlags().Lookup("write-seen")))

	rootCmd.PersistentFlags().StringSliceP("source", "S", []string{}, "Sources to search by default")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", sourceNamesCompletion))
	lo.Must0(viper.BindPFlag(key.DefaultSources, rootCmd.PersistentFlags().Lookup("source")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Scratch files left over from a previous run are removed in the
	// background.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

func sourceNamesCompletion(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := lo.Map(
		append(provider.Builtins(), provider.Customs()...),
		func(p *provider.Provider, _ int) string { return p.Name },
	)
	return names, cobra.ShellCompDirectiveNoFileComp
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
