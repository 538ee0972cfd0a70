package cmd

import (
	"fmt"

	"github.com/episan-cli/episan/client"
	"github.com/episan-cli/episan/download"
	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/provider"
	"github.com/episan-cli/episan/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd diagnoses the local setup: configured sources, the download
// handler and, when the client handler is active, the RPC connection.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Diagnose the configured sources and download handler",
	Run: func(cmd *cobra.Command, args []string) {
		ok := func(what string) {
			cmd.Printf("%s %s\n", icon.Get(icon.Success), what)
		}

		var failed bool
		notOk := func(what string) {
			failed = true
			cmd.Printf("%s %s\n", icon.Get(icon.Fail), what)
		}

		for _, name := range viper.GetStringSlice(key.DefaultSources) {
			if _, found := provider.Get(name); found {
				ok(fmt.Sprintf("source %q resolves", name))
			} else {
				notOk(fmt.Sprintf("source %q is not installed", name))
			}
		}

		handler := viper.GetString(key.DownloadHandler)
		if !lo.Contains(download.Handlers(), handler) {
			notOk(fmt.Sprintf("unknown download handler %q", handler))
		} else {
			ok(fmt.Sprintf("download handler %q", handler))
		}

		if handler == download.HandlerClient {
			version, err := client.Version()
			if err != nil {
				notOk("download client is unreachable")
				printClientUnreachable(err)
			} else {
				ok(fmt.Sprintf("download client responds (version %s)", version))
			}
		}

		if failed {
			cmd.Println()
			handleErr(fmt.Errorf("some checks failed"))
		}
	},
}

func printClientUnreachable(err error) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Download Client Unreachable", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The configured transmission RPC endpoint did not respond:\n  %v", err))

	suggestion := fmt.Sprintf("\n\nTo set up the connection, run:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render("episan client"))

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
