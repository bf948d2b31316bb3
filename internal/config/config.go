// Package config loads herosheet settings from defaults, an optional YAML
// file and HEROSHEET_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// StorageConfig selects where the character collection lives
type StorageConfig struct {
	// Backend is "sqlite" or "file".
	Backend string `mapstructure:"backend"`
	// Path is the sqlite database file or the directory for the file backend.
	Path string `mapstructure:"path"`
	// Key is the storage key holding the character array.
	Key string `mapstructure:"key"`
}

// ExportConfig holds document export settings
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// UIConfig holds editor behaviour settings
type UIConfig struct {
	// AutosaveDelay is how long edits settle before they are persisted.
	AutosaveDelay time.Duration `mapstructure:"autosave_delay"`
	// Locale is the BCP 47 tag used for sorting names.
	Locale string `mapstructure:"locale"`
	// Sort is the default character list order.
	Sort string `mapstructure:"sort"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File receives log output. Empty disables logging for the TUI and
	// means stderr for the CLI and MCP server.
	File string `mapstructure:"file"`
}

// Config is the top-level application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Export  ExportConfig  `mapstructure:"export"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks every setting and reports all violations at once
func (c Config) Validate() error {
	var errs []string

	switch c.Storage.Backend {
	case "sqlite", "file":
	default:
		errs = append(errs, fmt.Sprintf("storage.backend must be one of [sqlite, file], got %q", c.Storage.Backend))
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		errs = append(errs, "storage.path must not be empty")
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		errs = append(errs, "storage.key must not be empty")
	}
	if strings.TrimSpace(c.Export.Dir) == "" {
		errs = append(errs, "export.dir must not be empty")
	}
	if c.UI.AutosaveDelay < 0 {
		errs = append(errs, "ui.autosave_delay must not be negative")
	}
	switch c.UI.Sort {
	case "name", "profession", "advancedProfession":
	default:
		errs = append(errs, fmt.Sprintf("ui.sort must be one of [name, profession, advancedProfession], got %q", c.UI.Sort))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load builds the configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("HEROSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(ExpandHome(path))
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Storage.Path = ExpandHome(cfg.Storage.Path)
	cfg.Export.Dir = ExpandHome(cfg.Export.Dir)
	cfg.Logging.File = ExpandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.path", filepath.Join(DataDir(), "herosheet.db"))
	v.SetDefault("storage.key", "characters")

	v.SetDefault("export.dir", "~/Documents/herosheet")

	v.SetDefault("ui.autosave_delay", "750ms")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.sort", "name")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}

// DataDir returns the XDG data directory for herosheet
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "herosheet")
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
