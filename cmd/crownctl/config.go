package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the crownctl config file, TOML at
// ~/.config/crownctl/config.toml unless --config overrides it.
type Config struct {
	Publish PublishConfig `toml:"publish"`
}

// PublishConfig holds defaults for the publish command; flags override it.
type PublishConfig struct {
	Bucket   string `toml:"bucket"`
	Prefix   string `toml:"prefix,omitempty"`
	Region   string `toml:"region,omitempty"`
	Endpoint string `toml:"endpoint,omitempty"`
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "crownctl", "config.toml"), nil
}

// loadConfig reads the config file. A missing file yields a zero config, not
// an error; flags alone can drive every command.
func loadConfig() (Config, error) {
	path := configPath
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return cfg, nil
}
