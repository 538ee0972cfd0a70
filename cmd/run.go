package cmd

import (
	"fmt"

	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/provider/custom"
	"github.com/episan-cli/episan/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a local Lua catalog script",
	Long: `Run a Lua 5.1 catalog script through the embedded interpreter and
validate that it satisfies the script contract. Meant for script development,
installed sources are loaded automatically.`,
	Args:    cobra.ExactArgs(1),
	Example: "  episan run ./eztv.lua",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := custom.LoadSource(args[0])
		handleErr(err)

		options := "no source options"
		if n := len(src.Options()); n > 0 {
			options = util.Quantify(n, "source option", "source options")
		}

		fmt.Printf("%s %s is a valid source (%s)\n", icon.Get(icon.Success), src.Name(), options)
	},
}
