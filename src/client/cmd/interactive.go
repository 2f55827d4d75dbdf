package cmd

import (
	"github.com/spf13/cobra"

	"github.com/apimgr/ghuser/src/client/menu"
	"github.com/apimgr/ghuser/src/client/tui"
	"github.com/apimgr/ghuser/src/common/terminal"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"tui"},
	Short:   "Open the interactive search menu (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// runInteractive loops until a prompt is aborted, a search fails or the
// process is interrupted.
func runInteractive(cmd *cobra.Command) error {
	loop := menu.New(apiClient, newPrompter(cmd), cmd.OutOrStdout(), cfg.Username, cfg.PageSize)
	return loop.Run(cmd.Context())
}

// newPrompter uses full prompts on a terminal and plain line prompts
// when input or output is redirected
func newPrompter(cmd *cobra.Command) tui.Prompter {
	if terminal.IsInteractive() {
		return tui.NewTeaPrompter(nil, nil)
	}
	return tui.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}
