// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global medflow directory.
	GlobalDirName = ".medflow"

	// LayoutsDirName is the name of the persisted-layouts directory.
	LayoutsDirName = "layouts"

	// SessionsDirName is the name of the exported session reports directory.
	SessionsDirName = "sessions"
)

// File names
const (
	SettingsFileName = "settings.yaml"
)

// GlobalDir returns the path to the global medflow directory (~/.medflow/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalLayoutsDir returns the path to the layouts directory.
func GlobalLayoutsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LayoutsDirName), nil
}

// LayoutFile returns the path of the persisted layout snapshot for the
// given namespace.
func LayoutFile(namespace string) (string, error) {
	dir, err := GlobalLayoutsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, namespace+".json"), nil
}

// GlobalSessionsDir returns the path to the session reports directory.
func GlobalSessionsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SessionsDirName), nil
}

// EnsureGlobalDir creates the global medflow directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureLayoutsDir creates the layouts directory if it doesn't exist.
func EnsureLayoutsDir() error {
	dir, err := GlobalLayoutsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureSessionsDir creates the session reports directory if it doesn't exist.
func EnsureSessionsDir() error {
	dir, err := GlobalSessionsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
