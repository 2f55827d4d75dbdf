package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apimgr/ghuser/src/common/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		info := version.Get()

		fmt.Fprintf(w, "%s %s (%s)\n", getBinaryName(), info.String(), version.GetCommitShort())
		if version.IsDev() {
			fmt.Fprintln(w, "development build")
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, info.Full())
		fmt.Fprintf(w, "\nAPI:        %s\n", viper.GetString("github.api_url"))
		fmt.Fprintf(w, "User-Agent: %s\n", info.UserAgent(viper.GetString("github.username")))
		return nil
	},
}
