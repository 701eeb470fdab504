package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultDataFile          = "packages.json"
	DefaultVersion           = "0.1.0"
	DefaultCustomDescription = "Custom package"
)

var current Config

func Get() Config { return current }

// Set replaces the active configuration, e.g. after command line overrides.
func Set(cfg Config) { current = cfg }

// envBindings maps config keys to the environment variables that may set them.
var envBindings = map[string][]string{
	"data_file":          {"PAKMAN_DATA_FILE"},
	"default_version":    {"PAKMAN_DEFAULT_VERSION"},
	"custom_description": {"PAKMAN_CUSTOM_DESCRIPTION"},
	"log_file":           {"PAKMAN_LOG_FILE"},
	"verbose":            {"PAKMAN_VERBOSE"},
}

// DefaultDir is ~/.config/pakman, resolved for the invoking user under sudo.
func DefaultDir() string {
	dir, _ := os.UserConfigDir()
	if su := os.Getenv("SUDO_USER"); su != "" {
		if u, err := user.Lookup(su); err == nil && u.HomeDir != "" {
			dir = filepath.Join(u.HomeDir, ".config")
		}
	}
	return filepath.Join(dir, "pakman")
}

// Load reads the YAML config at filePath if it exists. Environment variables
// override file values; both fall back to the built-in defaults.
func Load(filePath string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("data_file", DefaultDataFile)
	v.SetDefault("default_version", DefaultVersion)
	v.SetDefault("custom_description", DefaultCustomDescription)
	v.SetDefault("log_file", filepath.Join(DefaultDir(), "logs", "pakman.log"))
	v.SetDefault("verbose", false)

	if err := bindEnvs(v); err != nil {
		return Config{}, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("%s: %w", filePath, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.DataFile = expandHome(cfg.DataFile)
	cfg.LogFile = expandHome(cfg.LogFile)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	current = cfg
	return cfg, nil
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)
		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
