package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := openUI()
			if err != nil {
				return err
			}
			return ui.RunList()
		},
	}
	rootCmd.AddCommand(cmd)
}
