package config

import (
	"os"
	"path/filepath"
)

const (
	// ConfigName is the base name viper searches for, without extension.
	ConfigName = ".todolist"
	// ConfigFileName is the file written by `todolist config init`.
	ConfigFileName = ConfigName + ".yaml"
	// CrashLogDir is the directory for crash reports relative to the global config dir.
	CrashLogDir = "crash_logs"
)

// GetGlobalConfigDir returns the directory holding per-user state (~/.todolist).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigName), nil
}

// GlobalConfigPath returns $HOME/.todolist.yaml.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}

// LocalConfigPath returns ./.todolist.yaml.
func LocalConfigPath() string {
	return filepath.Join(".", ConfigFileName)
}

// DefaultCrashDir returns where crash reports go when crash.dir is not configured.
// Falls back to the system temp dir when the home directory is unknown.
func DefaultCrashDir() string {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "todolist", CrashLogDir)
	}
	return filepath.Join(dir, CrashLogDir)
}
