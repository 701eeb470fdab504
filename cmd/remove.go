package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := openUI()
			if err != nil {
				return err
			}
			err = ui.RunRemoveImperative(args[0], yes || !isTerminal(os.Stdin))
			if err != nil {
				ui.HintRemove(args[0], err)
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "assume yes and remove without prompting")
	rootCmd.AddCommand(cmd)
}
