package cmd

import (
	"os"
	"path/filepath"

	"github.com/gopak/pakman/internal/assets"
	"github.com/gopak/pakman/internal/config"
	"github.com/gopak/pakman/internal/logging"
	"github.com/gopak/pakman/internal/manager"
	"github.com/gopak/pakman/internal/store"
	"github.com/gopak/pakman/internal/ui/console"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var cfgFile string
var dataFile string
var verbose bool
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "pakman",
	Short:         "Toy package manager with an interactive shell",
	Long:          "pakman keeps a catalog of installed package records in a local JSON file.\nRun without a subcommand to start the interactive shell.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.Error("Error: " + err.Error())
	}
	logging.Close()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the YAML config file (default: ~/.config/pakman/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "path to the package database (overrides data_file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed steps")
	rootCmd.Version = version
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		cfgDir := config.DefaultDir()
		// Ensure config directory and default config.yaml exist
		if err := assets.WriteDefaultConfigIfMissing(cfgDir); err != nil {
			logging.Debug("cannot write default config: " + err.Error())
		}
		path = filepath.Join(cfgDir, assets.ConfigFileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		logging.Error("config error: " + err.Error())
		os.Exit(1)
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if verbose {
		cfg.Verbose = true
	}
	config.Set(cfg)
	if err := logging.Init(cfg.LogFile, cfg.Verbose); err != nil {
		logging.Warn("file logging disabled: " + err.Error())
	}
	logging.SetVerbose(cfg.Verbose)
	if !isTerminal(os.Stdout) {
		text.DisableColors()
	}
}

func isTerminal(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

func openUI() (*console.ConsoleUI, error) {
	cfg := config.Get()
	s, err := store.Open(cfg.DataFile)
	if err != nil {
		return nil, err
	}
	return console.NewConsoleUI(manager.New(s, manager.OptionsFromConfig(cfg))), nil
}
