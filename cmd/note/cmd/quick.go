package cmd

import (
	"github.com/spf13/cobra"

	"note/internal/application/commands"
)

var quickCmd = &cobra.Command{
	Use:     "q [content]",
	Aliases: []string{"quick"},
	Short:   "Create a quick note without opening the editor",
	Long: `Create a quick note: everything on the command line becomes the note body.
A title can be embedded anywhere between slashes and is lifted out of the
body; otherwise you are asked for one.

Examples:
  note q buy milk /groceries/
  note q remember to call back`,
	RunE: func(cmd *cobra.Command, args []string) error {
		create := commands.NewCreateCommand(deps, true, args)
		_, err := create.Execute(cmd.Context())
		return err
	},
}

func init() {
	rootCmd.AddCommand(quickCmd)
}
