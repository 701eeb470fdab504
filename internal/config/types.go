package config

import (
	"errors"
	"strings"
)

type Config struct {
	DataFile          string `mapstructure:"data_file" yaml:"data_file" json:"data_file"`
	DefaultVersion    string `mapstructure:"default_version" yaml:"default_version" json:"default_version"`
	CustomDescription string `mapstructure:"custom_description" yaml:"custom_description" json:"custom_description"`
	LogFile           string `mapstructure:"log_file" yaml:"log_file" json:"log_file"`
	Verbose           bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file must not be empty")
	}
	if strings.TrimSpace(c.DefaultVersion) == "" {
		return errors.New("default_version must not be empty")
	}
	return nil
}
