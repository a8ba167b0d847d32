package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// config holds the host settings read from the YAML config file.
// Missing keys keep their defaults.
type config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Prompt  string `yaml:"prompt"`
	History string `yaml:"history"`
}

const promptCont = "... "

func defaultConfig() config {
	return config{
		Width:   800,
		Height:  600,
		Prompt:  "rurtle> ",
		History: filepath.Join(configDir(), "history"),
	}
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "rurtle")
}

// loadConfig reads the config file at path, or the default location
// when path is empty. A missing file is not an error; a file that does
// not parse is.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(configDir(), "config.yaml")
	}
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("%s: canvas size must be positive", path)
	}
	return cfg, nil
}
