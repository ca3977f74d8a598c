package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the tool configuration, read from an optional cardkit.yaml
// plus CARDKIT_* environment overrides. Flags still win over both.
type Config struct {
	InputDir      string `yaml:"input_dir" env:"CARDKIT_INPUT_DIR" env-default:"characters"`
	Workers       int    `yaml:"workers" env:"CARDKIT_WORKERS" env-default:"4"`
	ReportPath    string `yaml:"report_path" env:"CARDKIT_REPORT"`
	LogLevel      string `yaml:"log_level" env:"CARDKIT_LOG_LEVEL" env-default:"info"`
	BackupEnabled bool   `yaml:"backup_enabled" env:"CARDKIT_BACKUP" env-default:"true"`
}

// loadConfig reads path when it exists, otherwise environment only.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
			return &cfg, nil
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from env: %w", err)
	}
	return &cfg, nil
}
