package cmd

import (
	"os"

	"github.com/gopak/pakman/internal/manager"
	"github.com/spf13/cobra"
)

func init() {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "install [name] [version]",
		Short: "Install one package or select from the catalog",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := openUI()
			if err != nil {
				return err
			}
			version := ""
			if len(args) == 2 {
				version = args[1]
			}
			if dryRun {
				if len(args) >= 1 {
					ui.PlanInstall(args[0], version)
					return nil
				}
				for _, e := range ui.Manager().Available() {
					if !e.Installed {
						ui.PlanInstall(e.Name, "")
					}
				}
				return nil
			}
			if len(args) >= 1 {
				return ui.Install(args[0], version)
			}
			if !isTerminal(os.Stdin) {
				return manager.ErrEmptyName
			}
			return ui.InstallInteractive()
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print planned changes without executing")
	rootCmd.AddCommand(cmd)
}
