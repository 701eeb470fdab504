package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "outdated",
		Short: "List installed packages older than the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := openUI()
			if err != nil {
				return err
			}
			return ui.RunOutdated()
		},
	}
	rootCmd.AddCommand(cmd)
}
