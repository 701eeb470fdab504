package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "upgrade [name]",
		Short: "Upgrade one package or all to the catalog version",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := openUI()
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if dryRun {
				ui.PlanUpgrade(name)
				return nil
			}
			return ui.Upgrade(name)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print planned changes without executing")
	rootCmd.AddCommand(cmd)
}
