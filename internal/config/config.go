// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rulecheck/internal/paths"

	"gopkg.in/yaml.v3"
)

// Default values applied before a config file is read
const (
	DefaultFormat    = "text"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
	DefaultRules     = "all"
	DefaultS3Region  = "us-east-1"
	DefaultS3Key     = "areacodes.txt"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults Settings `yaml:"defaults"`

	// Area code reference list source
	AreaCodes AreaCodeConfig `yaml:"area_codes"`

	// Date rule options
	Date DateConfig `yaml:"date"`

	// Profiles for different validation scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Settings holds the output and logging options shared by defaults and profiles
type Settings struct {
	Format    string `yaml:"format"`
	NoColor   bool   `yaml:"no_color"`
	ShowInput bool   `yaml:"show_input"`
	Debug     bool   `yaml:"debug"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Rules     string `yaml:"rules"`
}

// AreaCodeConfig selects where the area code list is loaded from.
// An empty File means the built-in list.
type AreaCodeConfig struct {
	File string   `yaml:"file"`
	S3   S3Config `yaml:"s3"`
}

// S3Config locates an area code list stored in S3
type S3Config struct {
	Enabled bool   `yaml:"enabled"`
	Bucket  string `yaml:"bucket"`
	Region  string `yaml:"region"`
	Key     string `yaml:"key"`
}

// DateConfig holds date rule options
type DateConfig struct {
	Gregorian bool `yaml:"gregorian"`
}

// Profile represents a named set of overrides for the defaults.
// Non-empty strings replace the default and true booleans switch an option on.
type Profile struct {
	Settings    `yaml:",inline"`
	Description string          `yaml:"description"`
	AreaCodes   *AreaCodeConfig `yaml:"area_codes,omitempty"`
	Date        *DateConfig     `yaml:"date,omitempty"`
}

// defaultConfig returns the configuration used when no file is present
func defaultConfig() *Config {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	config.Defaults.Format = DefaultFormat
	config.Defaults.LogLevel = DefaultLogLevel
	config.Defaults.LogFormat = DefaultLogFormat
	config.Defaults.Rules = DefaultRules
	config.AreaCodes.S3.Region = DefaultS3Region
	config.AreaCodes.S3.Key = DefaultS3Key

	config.Profiles["ci"] = Profile{
		Settings: Settings{
			Format:    "json",
			NoColor:   true,
			LogFormat: "json",
		},
		Description: "Machine readable output for pipelines",
	}

	return config
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unknown keys are rejected so a misspelled option is not silently ignored
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	// Empty strings in the file keep the defaults
	if config.Defaults.Format == "" {
		config.Defaults.Format = DefaultFormat
	}
	if config.Defaults.LogLevel == "" {
		config.Defaults.LogLevel = DefaultLogLevel
	}
	if config.Defaults.LogFormat == "" {
		config.Defaults.LogFormat = DefaultLogFormat
	}
	if config.Defaults.Rules == "" {
		config.Defaults.Rules = DefaultRules
	}
	if config.AreaCodes.S3.Region == "" {
		config.AreaCodes.S3.Region = DefaultS3Region
	}
	if config.AreaCodes.S3.Key == "" {
		config.AreaCodes.S3.Key = DefaultS3Key
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	candidates := []string{"rulecheck.yaml", "rulecheck.yml", ".rulecheck.yaml", ".rulecheck.yml"}

	if dir := os.Getenv(paths.ConfigDirEnv); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		candidates = append(candidates, filepath.Join(dir, "rulecheck", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, ".rulecheck", "config.yaml"))
	}

	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the available profile names in sorted order
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// Effective is the configuration after a profile has been applied
type Effective struct {
	Settings
	AreaCodes AreaCodeConfig
	Date      DateConfig
}

// Resolve applies the named profile on top of the defaults. An empty name
// returns the defaults.
func (c *Config) Resolve(profileName string) (Effective, error) {
	eff := Effective{
		Settings:  c.Defaults,
		AreaCodes: c.AreaCodes,
		Date:      c.Date,
	}
	if profileName == "" {
		return eff, nil
	}

	profile := c.GetProfile(profileName)
	if profile == nil {
		return eff, fmt.Errorf("profile '%s' not found (available: %s)", profileName, strings.Join(c.ListProfiles(), ", "))
	}

	eff.Settings = mergeSettings(eff.Settings, profile.Settings)
	if profile.AreaCodes != nil {
		if profile.AreaCodes.File != "" {
			eff.AreaCodes.File = profile.AreaCodes.File
		}
		if profile.AreaCodes.S3.Enabled {
			eff.AreaCodes.S3 = profile.AreaCodes.S3
			if eff.AreaCodes.S3.Region == "" {
				eff.AreaCodes.S3.Region = c.AreaCodes.S3.Region
			}
			if eff.AreaCodes.S3.Key == "" {
				eff.AreaCodes.S3.Key = c.AreaCodes.S3.Key
			}
		}
	}
	if profile.Date != nil && profile.Date.Gregorian {
		eff.Date.Gregorian = true
	}
	return eff, nil
}

func mergeSettings(base, override Settings) Settings {
	if override.Format != "" {
		base.Format = override.Format
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	if override.LogFormat != "" {
		base.LogFormat = override.LogFormat
	}
	if override.Rules != "" {
		base.Rules = override.Rules
	}
	base.NoColor = base.NoColor || override.NoColor
	base.ShowInput = base.ShowInput || override.ShowInput
	base.Debug = base.Debug || override.Debug
	return base
}

// ValidateConfig checks values the application cannot recover from
func ValidateConfig(config *Config) error {
	if err := validateSettings("defaults", config.Defaults); err != nil {
		return err
	}
	if config.AreaCodes.S3.Enabled && config.AreaCodes.S3.Bucket == "" {
		return fmt.Errorf("area_codes.s3.bucket is required when s3 is enabled")
	}
	for name, profile := range config.Profiles {
		if err := validateSettings("profiles."+name, profile.Settings); err != nil {
			return err
		}
		if profile.AreaCodes != nil && profile.AreaCodes.S3.Enabled && profile.AreaCodes.S3.Bucket == "" {
			return fmt.Errorf("profiles.%s.area_codes.s3.bucket is required when s3 is enabled", name)
		}
	}
	return nil
}

func validateSettings(section string, s Settings) error {
	switch s.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s.log_level must be one of debug, info, warn, error (got %q)", section, s.LogLevel)
	}
	switch s.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("%s.log_format must be console or json (got %q)", section, s.LogFormat)
	}
	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration
// along with the error so the caller can report it.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults; a missing or bad config file is not fatal
		return defaultConfig(), err
	}
	return cfg, nil
}
