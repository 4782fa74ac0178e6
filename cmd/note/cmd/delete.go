package cmd

import (
	"github.com/spf13/cobra"

	"note/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:     "d",
	Aliases: []string{"delete"},
	Short:   "Delete a note",
	Long: `Delete a note chosen from the listing. Notes are never erased: the file
is renamed with a .bak suffix and only its index record is removed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		del := commands.NewDeleteCommand(deps)
		_, err := del.Execute(cmd.Context())
		return err
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
