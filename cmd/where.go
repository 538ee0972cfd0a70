package cmd

import (
	"os"

	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/style"
	"github.com/episan-cli/episan/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// whereTarget is one application path exposed through the where
// command. An empty shorthand registers a long flag only, hidden
// targets are printable with their flag but left out of the overview.
type whereTarget struct {
	name      string
	path      func() string
	flag      string
	shorthand string
	hidden    bool
}

var whereTargets = []whereTarget{
	{"Config", where.Config, "config", "c", false},
	{"Sources", where.Sources, "sources", "s", false},
	{"Downloads", where.Downloads, "downloads", "d", false},
	{"Logs", where.Logs, "logs", "l", false},
	{"Cache", where.Cache, "cache", "", true},
	{"Temp", where.Temp, "temp", "", true},
	{"Seen", where.Seen, "seen", "", true},
	{"Queue", where.Queue, "queue", "", true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range whereTargets {
		whereCmd.Flags().BoolP(t.flag, t.shorthand, false, t.name+" path")
		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t whereTarget, _ int) string {
		return t.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the filesystem paths used by the application",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range whereTargets {
			if lo.Must(cmd.Flags().GetBool(t.flag)) {
				cmd.Println(t.path())
				return
			}
		}

		// No flag given, print the overview of the visible paths.
		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Filter(whereTargets, func(t whereTarget, _ int) bool {
			return !t.hidden
		})

		for i, t := range visible {
			cmd.Printf("%s %s\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.flag))
			cmd.Println(t.path())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
