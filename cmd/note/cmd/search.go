package cmd

import (
	"github.com/spf13/cobra"

	"note/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:     "s <keyword>...",
	Aliases: []string{"search"},
	Short:   "Search notes by title and tags",
	Long: `Search for notes that have any of the keywords in their title or tags
(the search is OR-ed), then optionally open one in the editor.

Examples:
  note s groceries
  note s foo bar`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		search := commands.NewSearchCommand(deps, args)
		_, err := search.Execute(cmd.Context())
		return err
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
