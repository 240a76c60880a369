package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds scan settings loaded from a YAML file, as an
// alternative to command-line flags. Flags win when both are given.
type Config struct {
	Scan   ScanSection   `yaml:"scan"`
	Report ReportSection `yaml:"report"`
}

type ScanSection struct {
	Directory string `yaml:"directory"`
}

type ReportSection struct {
	Output string `yaml:"output"`
	Excel  bool   `yaml:"excel"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
