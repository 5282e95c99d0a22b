package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/midy/internal/logging"
	"github.com/danmuck/midy/internal/protocol"
	"github.com/danmuck/midy/internal/protocol/ump"
)

type fileConfig struct {
	LegacyGroupRange bool          `toml:"legacy_group_range"`
	StrictExtensions bool          `toml:"strict_extensions"`
	Log              fileLogConfig `toml:"log"`
}

type fileLogConfig struct {
	Level      string `toml:"level"`
	NoColor    bool   `toml:"no_color"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

type toolConfig struct {
	Policy protocol.Policy
	Log    logging.Config
}

func defaultToolConfig() toolConfig {
	return toolConfig{
		Policy: protocol.DefaultPolicy(),
		Log:    logging.DefaultConfig(logging.ProfileRuntime),
	}
}

func loadToolConfig(path string) (toolConfig, error) {
	cfg := defaultToolConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load umpctl config: %w", err)
	}

	if meta.IsDefined("legacy_group_range") && raw.LegacyGroupRange {
		cfg.Policy.Limits = ump.LegacyLimits()
	}

	if meta.IsDefined("strict_extensions") {
		cfg.Policy.Negotiation.StrictExtensions = raw.StrictExtensions
	}

	if meta.IsDefined("log", "level") {
		lvl, ok := logging.ParseLevel(raw.Log.Level)
		if !ok {
			return toolConfig{}, fmt.Errorf("parse log.level: unknown level %q", raw.Log.Level)
		}
		cfg.Log.Level = lvl
	}

	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if meta.IsDefined("log", "file") {
		cfg.Log.File.Path = strings.TrimSpace(raw.Log.File)
		cfg.Log.File.MaxSizeMB = raw.Log.MaxSizeMB
		cfg.Log.File.MaxBackups = raw.Log.MaxBackups
		cfg.Log.File.MaxAgeDays = raw.Log.MaxAgeDays
		cfg.Log.File.Compress = raw.Log.Compress
		if cfg.Log.File.MaxSizeMB <= 0 {
			cfg.Log.File.MaxSizeMB = 10
		}
	}

	return cfg, nil
}
