package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath = "~/.nafs"
	envPrefix   = "NAFS"
)

// Config tells the store where to keep its files.
type Config interface {
	BasePath() string
}

// LoadConfig reads `.nafs.yaml` from $NAFS_CONFIG_PATH, the working
// directory or $HOME, with NAFS_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", defaultPath)
	viper.SetConfigName(".nafs") // .yaml is implicit
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if override := os.Getenv("NAFS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: path, Verbose: viper.GetBool("verbose")}, nil
}

// PathConfig is a Config fixed to one directory.
type PathConfig string

func (p PathConfig) BasePath() string {
	return string(p)
}

type fileConfig struct {
	Path    string `json:"path"`
	Verbose bool   `json:"verbose"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// VerboseConfigured reports whether the config file or NAFS_VERBOSE asked
// for debug logging.
func VerboseConfigured(cfg Config) bool {
	fc, ok := cfg.(*fileConfig)
	return ok && fc.Verbose
}
