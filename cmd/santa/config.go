package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/santa"
	"github.com/arloliu/santa/publish"
)

// cliConfig is the optional YAML file passed with --config.
//
// Example:
//
//	resolver:
//	  maxAttempts: 5000
//	  seedPhrase: office-2026
//	publish:
//	  bucketPrefix: santa-draw
//	  ttl: 720h
type cliConfig struct {
	Resolver santa.Config   `yaml:"resolver"`
	Publish  publish.Config `yaml:"publish"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Resolver: santa.DefaultConfig(),
		Publish:  publish.DefaultConfig(),
	}
}

// loadCLIConfig reads path over the defaults. An empty path returns the defaults.
func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	santa.SetDefaults(&cfg.Resolver)

	return cfg, nil
}
