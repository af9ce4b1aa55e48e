package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/model"
)

// fileConfig is the YAML layout accepted by -config.
type fileConfig struct {
	Renderer        string              `yaml:"renderer"`
	ForceShowErrors bool                `yaml:"forceShowErrors"`
	MaxAttempts     int                 `yaml:"maxAttempts"`
	Fields          []model.Schema      `yaml:"fields"`
	Values          map[string]any      `yaml:"values"`
	Errors          map[string][]string `yaml:"errors"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
