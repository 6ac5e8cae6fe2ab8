package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// config controls the driver's logging and output verbosity. It
// follows the teacher's loadSDNConfig shape: an optional YAML file
// whose absence is not an error, decoded into a nested "roadmap" key.
type config struct {
	LogLevel string
	Quiet    bool
}

const defaultLogLevel = "info"

func loadConfig(filename string) (*config, error) {
	cfg := &config{LogLevel: defaultLogLevel}
	if filename == "" {
		return cfg, nil
	}

	file, err := os.Open(filename)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	type yamlConfig struct {
		Roadmap struct {
			LogLevel string `yaml:"log_level"`
			Quiet    bool   `yaml:"quiet"`
		} `yaml:"roadmap"`
	}

	var ymlCfg yamlConfig
	if err := yaml.NewDecoder(file).Decode(&ymlCfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if ymlCfg.Roadmap.LogLevel != "" {
		cfg.LogLevel = ymlCfg.Roadmap.LogLevel
	}
	cfg.Quiet = ymlCfg.Roadmap.Quiet
	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
