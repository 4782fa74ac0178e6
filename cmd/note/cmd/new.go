package cmd

import (
	"github.com/spf13/cobra"

	"note/internal/application/commands"
)

var newCmd = &cobra.Command{
	Use:     "n [title]",
	Aliases: []string{"new"},
	Short:   "Create a note and open it in the editor",
	Long: `Create a new note and open it in the editor. The optional content of the
command line becomes the title; with no content you are asked for one.

Examples:
  note n meeting notes
  note n`,
	RunE: func(cmd *cobra.Command, args []string) error {
		create := commands.NewCreateCommand(deps, false, args)
		_, err := create.Execute(cmd.Context())
		return err
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
