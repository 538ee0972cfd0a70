package cmd

import (
	"fmt"
	"sort"

	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/seen"
	"github.com/episan-cli/episan/util"
	"github.com/episan-cli/episan/where"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seenCmd)
	seenCmd.AddCommand(seenClearCmd)
}

// seenCmd prints the grab history, newest first.
var seenCmd = &cobra.Command{
	Use:   "seen",
	Short: "Print the grab history",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := seen.Get()
		handleErr(err)

		if len(saved) == 0 {
			fmt.Println("Nothing grabbed yet")
			return
		}

		entries := lo.Values(saved)
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].GrabbedAt.After(entries[j].GrabbedAt)
		})

		rows := make([]table.Row, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, table.Row{
				entry.String(),
				entry.Resolution,
				entry.Group,
				entry.SourceID,
				entry.Grabs,
				entry.GrabbedAt.Format("2006-01-02 15:04"),
			})
		}

		fmt.Println(renderTable(
			table.Row{"Episode", "Resolution", "Group", "Source", "Grabs", "Last Grab"},
			rows,
			5,
		))
	},
}

// seenClearCmd wipes the grab history.
var seenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Wipe the grab history",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := seen.Get()
		handleErr(err)

		handleErr(util.Delete(where.Seen()))
		fmt.Printf("%s removed %s\n", icon.Get(icon.Success), util.Quantify(len(saved), "record", "records"))
	},
}
