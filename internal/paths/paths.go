// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDirEnv overrides the configuration directory
const ConfigDirEnv = "RULECHECK_CONFIG_DIR"

// GetConfigDir returns the rulecheck configuration directory.
// Uses the OS user config dir (XDG_CONFIG_HOME, APPDATA, Library/Application
// Support) and falls back to ~/.rulecheck.
func GetConfigDir() string {
	// Check for explicit override first (works on all platforms)
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}

	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "rulecheck")
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".rulecheck")
}

// GetConfigFile returns the path to the main config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// ResolvePath expands a leading ~ and returns a cleaned absolute path
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", &PathValidationError{Path: path, Reason: "path is empty"}
	}
	if strings.ContainsRune(path, 0) {
		return "", &PathValidationError{Path: path, Reason: "path contains a null byte"}
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}

// PathValidationError represents a path validation error
type PathValidationError struct {
	Path   string
	Reason string
}

func (e *PathValidationError) Error() string {
	return fmt.Sprintf("invalid path '%s': %s", e.Path, e.Reason)
}
