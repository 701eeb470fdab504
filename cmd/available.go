package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "available",
		Short: "List the package catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := openUI()
			if err != nil {
				return err
			}
			return ui.RunAvailable()
		},
	}
	rootCmd.AddCommand(cmd)
}
