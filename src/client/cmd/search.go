package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/apimgr/ghuser/src/client/api"
	"github.com/apimgr/ghuser/src/client/apperr"
	"github.com/apimgr/ghuser/src/client/tui"
	"github.com/apimgr/ghuser/src/common/terminal"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search GitHub users",
	Long: `Search GitHub users and print the first page of matches.

The query uses GitHub's search syntax, e.g. "tom location:berlin followers:>100".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		result, err := apiClient.SearchUsers(cmd.Context(), query)
		if err != nil {
			return apperr.API(err)
		}
		return printSearch(cmd.OutOrStdout(), query, result, getOutputFormat())
	},
}

func printSearch(w io.Writer, query string, result *api.SearchResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "plain":
		for _, u := range result.Items {
			fmt.Fprintln(w, u.Login)
		}
	case "table", "":
		if result.TotalCount == 0 {
			fmt.Fprintln(w, tui.RenderNoMatch(query))
			return nil
		}
		showURL := !terminal.GetSize().Narrow()
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if showURL {
			fmt.Fprintf(tw, "LOGIN\tTYPE\tSCORE\tURL\n")
		} else {
			fmt.Fprintf(tw, "LOGIN\tTYPE\tSCORE\n")
		}
		for _, u := range result.Items {
			if showURL {
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", u.Login, u.Type, u.Score, u.HTMLURL)
			} else {
				fmt.Fprintf(tw, "%s\t%s\t%.2f\n", u.Login, u.Type, u.Score)
			}
		}
		tw.Flush()
		fmt.Fprintf(w, "\nTotal Count: %d (showing %d)\n", result.TotalCount, len(result.Items))
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
	return nil
}
