// Package config provides Viper-based configuration loading for the
// dungeon battle simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// BattleConfig holds combat engine settings.
type BattleConfig struct {
	// MaxTurns is the turn ceiling before a battle times out.
	MaxTurns int `mapstructure:"max_turns"`
	// ClassesDir optionally points at a directory of class YAML definitions
	// that replaces the embedded defaults. Empty means use the defaults.
	ClassesDir string `mapstructure:"classes_dir"`
}

// ReportConfig holds output artifact settings.
type ReportConfig struct {
	// LogPath is the destination for the plain-text battle log.
	LogPath string `mapstructure:"log_path"`
	// HTMLPath is the destination for the styled HTML battle report.
	HTMLPath string `mapstructure:"html_path"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Battle  BattleConfig  `mapstructure:"battle"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateBattle(c.Battle); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateReport(c.Report); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateBattle(b BattleConfig) error {
	if b.MaxTurns < 1 {
		return fmt.Errorf("battle.max_turns must be >= 1, got %d", b.MaxTurns)
	}
	return nil
}

func validateReport(r ReportConfig) error {
	var errs []string
	if r.LogPath == "" {
		errs = append(errs, "report.log_path must not be empty")
	}
	if r.HTMLPath == "" {
		errs = append(errs, "report.html_path must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path skips the file
// read entirely so the simulator runs on pure defaults.
//
// Precondition: path, if non-empty, must point at a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with DUNGEONSIM_ prefix
	v.SetEnvPrefix("DUNGEONSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("battle.max_turns", 50)
	v.SetDefault("battle.classes_dir", "")

	v.SetDefault("report.log_path", "game_log.txt")
	v.SetDefault("report.html_path", "battle_report.html")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
