package cmd

import (
	"github.com/episan-cli/episan/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)
	miniCmd.Flags().BoolP("continue", "c", false, "start from the grab history instead of the source picker")
}

var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Search and grab through sequential prompts",
	Long: `Walk through source selection, search and grabbing as a series of
plain prompts. Works on terminals too dumb for the full-screen mode.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := mini.Run(&mini.Options{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		})

		// Ctrl-C inside a prompt surfaces as an interrupt, not a failure.
		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}
