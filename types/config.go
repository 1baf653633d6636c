/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose" yaml:"-"`
	Config  string        `mapstructure:"config" yaml:"-"`
	Log     LogConfig     `mapstructure:"log" yaml:"log" validate:"required"`
	Display DisplayConfig `mapstructure:"display" yaml:"display" validate:"required"`
	Shell   ShellConfig   `mapstructure:"shell" yaml:"shell"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
	Crash   CrashConfig   `mapstructure:"crash" yaml:"crash"`
}

// LogConfig controls the diagnostic logger written to stderr.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json logfmt"`
}

// DisplayConfig holds rendering settings
type DisplayConfig struct {
	// Color is "auto" (only on a terminal), "always" or "never".
	Color string `mapstructure:"color" yaml:"color" validate:"required,oneof=auto always never"`
	Table bool   `mapstructure:"table" yaml:"table"`
}

// ShellConfig holds settings for the interactive menu
type ShellConfig struct {
	ClearScreen   bool `mapstructure:"clearScreen" yaml:"clearScreen"`
	Pause         bool `mapstructure:"pause" yaml:"pause"`
	ConfirmDelete bool `mapstructure:"confirmDelete" yaml:"confirmDelete"`
	AutoID        bool `mapstructure:"autoId" yaml:"autoId"`
	// WatchConfig re-reads display settings when the config file changes.
	WatchConfig bool `mapstructure:"watchConfig" yaml:"watchConfig"`
}

// ExportConfig describes where the end-of-session snapshot goes. An empty Path disables it.
type ExportConfig struct {
	Path   string `mapstructure:"path" yaml:"path"`
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=json yaml toml"`
}

// CrashConfig holds crash report settings
type CrashConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// DefaultAppConfig returns the configuration used when no file or environment overrides exist.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Display: DisplayConfig{
			Color: "auto",
		},
		Shell: ShellConfig{
			ClearScreen: true,
			Pause:       true,
			AutoID:      true,
		},
		Export: ExportConfig{
			Format: "json",
		},
	}
}
