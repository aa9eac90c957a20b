// Package project provides project discovery and loading functionality.
package project

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigDirName is the name of the errdoc configuration directory.
const ConfigDirName = ".errdoc"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.json"

// ErrNoProjectRoot is returned when .errdoc/config.json is not found.
var ErrNoProjectRoot = errors.New(".errdoc/config.json not found: not an errdoc project (or any parent up to the root)")

// FindRoot walks up from the current working directory until it finds .errdoc/config.json.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds .errdoc/config.json.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, ConfigDirName, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}
