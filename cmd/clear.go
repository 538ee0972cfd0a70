package cmd

import (
	"fmt"
	"os"

	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/util"
	"github.com/episan-cli/episan/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// clearTarget is one artifact the clear command can remove.
type clearTarget struct {
	name      string
	flag      string
	shorthand string
	path      func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", "c", where.Cache},
	{"seen file", "seen", "s", where.Seen},
	{"download queue", "queue", "", where.Queue},
	{"queries history", "queries", "q", where.Queries},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, t := range clearTargets {
		clearCmd.Flags().BoolP(t.flag, t.shorthand, false, "clear "+t.name)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and temporary artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var cleared int

		for _, t := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(t.flag)) {
				continue
			}
			cleared++

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), t.name))
			err := util.Delete(t.path())
			erase()

			if err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(t.name))
		}

		if cleared == 0 {
			handleErr(cmd.Help())
		}
	},
}
