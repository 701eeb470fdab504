package cmd

import (
	"os"

	"github.com/gopak/pakman/internal/shell"
	"github.com/spf13/cobra"
)

func runShell(cmd *cobra.Command, args []string) error {
	ui, err := openUI()
	if err != nil {
		return err
	}
	return shell.New(ui.Manager(), os.Stdin, os.Stdout).Run(cmd.Context())
}

func init() {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE:  runShell,
	}
	rootCmd.AddCommand(cmd)
}
