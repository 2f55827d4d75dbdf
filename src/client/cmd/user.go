package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/apimgr/ghuser/src/client/api"
	"github.com/apimgr/ghuser/src/client/apperr"
	"github.com/apimgr/ghuser/src/client/tui"
)

var userCmd = &cobra.Command{
	Use:   "user [login]",
	Short: "Show a GitHub user's profile",
	Long:  `Show a GitHub user's profile. Without an argument the configured username is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		login := cfg.Username
		if len(args) == 1 {
			login = args[0]
		}

		profile, err := apiClient.User(cmd.Context(), login)
		if err != nil {
			return apperr.API(err)
		}
		return printUser(cmd.OutOrStdout(), profile, getOutputFormat())
	},
}

func printUser(w io.Writer, profile *api.UserProfile, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	case "plain":
		fmt.Fprintln(w, profile.String())
	case "table", "":
		fmt.Fprintln(w, tui.RenderProfile(profile))
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
	return nil
}
