package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/zvinowanda/catch/home"
)

type ConfigGlobal struct {
	Database  string `toml:"database"`
	PingCount int    `toml:"ping_count"`
	Quiet     bool   `toml:"quiet"`
	Target    string `toml:"target"`
}

type Config struct {
	Global ConfigGlobal `toml:"global"`
}

func LoadConfigurationFile(path string) (Config, error) {
	var conf Config
	_, err := toml.DecodeFile(path, &conf)
	return conf, err
}

func GetOSConfigPath(homePath string) string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("LOCALAPPDATA")
		if configDir == "" {
			configDir = filepath.Join(homePath, "LocalAppData")
		}
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			configDir = filepath.Join(homePath, ".config")
		}
	}

	return filepath.Join(configDir, "catch", "catch.toml")
}

// InitializeConfig reads the first configuration file that exists among
// $CATCH_CONFIG, ~/.catch.toml, the OS config directory, and ./catch.toml.
// A missing file is not an error; the defaults stand.
func InitializeConfig() (*Config, error) {
	var paths []string
	if p, ok := os.LookupEnv("CATCH_CONFIG"); ok {
		paths = []string{p}
	} else {
		homePath, _ := home.Home()
		paths = []string{
			filepath.Join(homePath, ".catch.toml"),
			GetOSConfigPath(homePath),
			"catch.toml",
		}
	}

	config := Config{
		Global: ConfigGlobal{
			PingCount: 4,
		},
	}

	for _, p := range paths {
		conf, err := LoadConfigurationFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		config = conf
		if config.Global.PingCount <= 0 {
			config.Global.PingCount = 4
		}
		break
	}

	return &config, nil
}
