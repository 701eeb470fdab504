package cmd

import (
	"fmt"

	"github.com/gopak/pakman/internal/config"
	"github.com/gopak/pakman/internal/store"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the package database against the JSON Schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Get().DataFile
		if err := store.ValidateFile(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Println("Package database " + path + " is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
