package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/episan-cli/episan/auth"
	"github.com/episan-cli/episan/client"
	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(clientCmd)

	clientCmd.Flags().BoolP("test", "t", false, "Only test connectivity to the configured daemon")
	clientCmd.Flags().BoolP("forget", "f", false, "Remove the stored daemon credentials")
	clientCmd.MarkFlagsMutuallyExclusive("test", "forget")
}

// clientCmd configures the download daemon behind the client handler.
var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Configure the download daemon for the client handler",
	Long: `Set up the Transmission-compatible daemon that receives grabbed links
when the download handler is set to "client". The RPC password goes to the
system keyring, never to the config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("forget")) {
			viper.Set(key.DownloadClientUser, "")
			persistConfig()
			handleErr(auth.DeleteClientPassword())
			log.Info("download client credentials removed")
			return
		}

		if lo.Must(cmd.Flags().GetBool("test")) {
			testClient()
			return
		}

		url := survey.Input{
			Message: "Daemon RPC URL:",
			Default: viper.GetString(key.DownloadClientURL),
			Help:    "For Transmission this is usually http://localhost:9091/transmission/rpc",
		}
		var endpoint string
		err := survey.AskOne(&url, &endpoint, survey.WithValidator(survey.Required))
		handleErr(err)

		viper.Set(key.DownloadClientURL, endpoint)

		user := survey.Input{
			Message: "RPC username (leave empty if authentication is off):",
			Default: viper.GetString(key.DownloadClientUser),
		}
		var username string
		err = survey.AskOne(&user, &username)
		handleErr(err)

		viper.Set(key.DownloadClientUser, username)

		if username != "" {
			pass := survey.Password{
				Message: "RPC password:",
			}
			var password string
			err = survey.AskOne(&pass, &password)
			handleErr(err)

			handleErr(auth.SetClientPassword(password))
		}

		persistConfig()
		testClient()
	},
}

func testClient() {
	version, err := client.Version()
	handleErr(err)

	fmt.Printf("%s Connected, daemon version %s\n", icon.Get(icon.Success), version)
}
