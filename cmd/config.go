package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/todolist/internal/config"
	"github.com/josephgoksu/todolist/internal/export"
	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/shell"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/viper"
)

const envPrefix = "TODOLIST"

var (
	// GlobalAppConfig holds the global application configuration instance.
	GlobalAppConfig types.AppConfig
	// configMu guards GlobalAppConfig against reloads from the config watcher.
	configMu sync.RWMutex
)

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	if err := loadConfig(); err != nil {
		HandleFatalError("Invalid configuration. Run with --verbose for details.", err)
	}
}

func loadConfig() error {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)                          // e.g., TODOLIST_SHELL_PAUSE
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Replace dots with underscores in env var names
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home) // $HOME/.todolist.yaml
		}
		viper.AddConfigPath(".") // ./.todolist.yaml
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
		}
		LogError("No config file found. Using defaults and environment variables.", nil)
	} else {
		LogError("Using config file: "+viper.ConfigFileUsed(), nil)
	}

	cfg, err := decodeConfig()
	if err != nil {
		return err
	}
	setConfig(cfg)
	logger.SetCrashDir(cfg.Crash.Dir)
	return nil
}

func setDefaults() {
	def := types.DefaultAppConfig()
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.format", def.Log.Format)
	viper.SetDefault("display.color", def.Display.Color)
	viper.SetDefault("display.table", def.Display.Table)
	viper.SetDefault("shell.clearScreen", def.Shell.ClearScreen)
	viper.SetDefault("shell.pause", def.Shell.Pause)
	viper.SetDefault("shell.confirmDelete", def.Shell.ConfirmDelete)
	viper.SetDefault("shell.autoId", def.Shell.AutoID)
	viper.SetDefault("shell.watchConfig", def.Shell.WatchConfig)
	viper.SetDefault("export.path", def.Export.Path)
	viper.SetDefault("export.format", def.Export.Format)
	viper.SetDefault("crash.dir", config.DefaultCrashDir())
}

// decodeConfig unmarshals and validates the current viper state.
func decodeConfig() (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Verbose = cfg.Verbose || verbose
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if err := models.ValidateStruct(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func setConfig(cfg types.AppConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	GlobalAppConfig = cfg
}

// GetConfig returns a copy of the current configuration.
func GetConfig() types.AppConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return GlobalAppConfig
}

func cfgFileUsed() string {
	if f := viper.ConfigFileUsed(); f != "" {
		return f
	}
	return "(none)"
}

func newLogger(cfg types.AppConfig) *log.Logger {
	return logger.NewStderr(logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Verbose:   cfg.Verbose,
		Timestamp: cfg.Log.Format != "text",
	})
}

// shellOptions maps configuration onto the shell. Clearing and pausing only
// make sense when a person is at the keyboard, so both are off for piped input.
func shellOptions(cfg types.AppConfig, in io.Reader, out io.Writer) shell.Options {
	outFile, _ := out.(*os.File)
	interactive := ui.IsInteractive(in, out)

	return shell.Options{
		ClearScreen:   cfg.Shell.ClearScreen && interactive,
		Pause:         cfg.Shell.Pause && interactive,
		ConfirmDelete: cfg.Shell.ConfirmDelete,
		AutoID:        cfg.Shell.AutoID,
		Renderer: ui.Renderer{
			Color: ui.ColorEnabled(cfg.Display.Color, outFile),
			Table: cfg.Display.Table,
		},
	}
}

// exportHook returns the exit hook writing the session snapshot, or nil when
// export.path is not set.
func exportHook(cfg types.AppConfig, l *log.Logger) shell.ExitHook {
	if cfg.Export.Path == "" {
		return nil
	}
	path := cfg.Export.Path
	format := export.FormatFromPath(path, cfg.Export.Format)
	w := export.NewWriter(appFs)

	return func(tasks []models.Task) error {
		if err := w.Write(path, format, logger.SessionID(), tasks); err != nil {
			return err
		}
		l.Info("tasks exported", "path", path, "format", format, "count", len(tasks))
		return nil
	}
}

// watchConfig re-reads the config file on change and calls apply with the new
// settings in place. Invalid edits are logged and ignored.
func watchConfig(l *log.Logger, apply func()) {
	if viper.ConfigFileUsed() == "" {
		l.Warn("shell.watchConfig is set but no config file is in use")
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		l.Debug("config file changed", "file", e.Name, "op", e.Op.String())
		cfg, err := decodeConfig()
		if err != nil {
			l.Warn("ignoring invalid config change", "err", err)
			return
		}
		setConfig(cfg)
		apply()
		l.Info("display settings reloaded", "file", e.Name)
	})
	viper.WatchConfig()
}
