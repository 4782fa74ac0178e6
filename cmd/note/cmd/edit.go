package cmd

import (
	"github.com/spf13/cobra"

	"note/internal/application/commands"
)

var editCmd = &cobra.Command{
	Use:     "e [title]",
	Aliases: []string{"edit"},
	Short:   "Edit an existing note",
	Long: `Edit an existing note. The command line is matched against note titles;
when nothing matches you pick from a listing by title or $serial.

Examples:
  note e groceries
  note e`,
	RunE: func(cmd *cobra.Command, args []string) error {
		edit := commands.NewEditCommand(deps, args)
		_, err := edit.Execute(cmd.Context())
		return err
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
