package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".todolist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	setupCmdTest(t)

	require.NoError(t, loadConfig())
	cfg := GetConfig()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "auto", cfg.Display.Color)
	assert.False(t, cfg.Display.Table)
	assert.True(t, cfg.Shell.ClearScreen)
	assert.True(t, cfg.Shell.Pause)
	assert.True(t, cfg.Shell.AutoID)
	assert.False(t, cfg.Shell.ConfirmDelete)
	assert.Empty(t, cfg.Export.Path)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.NotEmpty(t, cfg.Crash.Dir)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	setupCmdTest(t)
	cfgFile = writeConfigFile(t, "log:\n  level: DEBUG\nshell:\n  confirmDelete: true\nexport:\n  format: toml\n")
	t.Setenv("TODOLIST_SHELL_PAUSE", "false")

	require.NoError(t, loadConfig())
	cfg := GetConfig()

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Shell.ConfirmDelete)
	assert.False(t, cfg.Shell.Pause)
	assert.Equal(t, "toml", cfg.Export.Format)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	setupCmdTest(t)
	require.NoError(t, os.WriteFile(".env", []byte("TODOLIST_DISPLAY_TABLE=true\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("TODOLIST_DISPLAY_TABLE") })

	require.NoError(t, loadConfig())
	assert.True(t, GetConfig().Display.Table)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "unknown log level", content: "log:\n  level: loud\n", field: "Level"},
		{name: "unknown color mode", content: "display:\n  color: sometimes\n", field: "Color"},
		{name: "unknown export format", content: "export:\n  format: csv\n", field: "Format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCmdTest(t)
			cfgFile = writeConfigFile(t, tt.content)

			err := loadConfig()
			require.Error(t, err)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	setupCmdTest(t)
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")

	assert.Error(t, loadConfig())
}

func TestLoadConfig_SetsCrashDir(t *testing.T) {
	setupCmdTest(t)
	dir := t.TempDir()
	cfgFile = writeConfigFile(t, "crash:\n  dir: "+dir+"\n")

	require.NoError(t, loadConfig())
	assert.Equal(t, dir, GetConfig().Crash.Dir)

	reports, err := logger.ListCrashReports()
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestShellOptions_PipedIO(t *testing.T) {
	cfg := types.DefaultAppConfig()
	cfg.Shell.ConfirmDelete = true
	cfg.Display.Table = true

	opts := shellOptions(cfg, &bytes.Buffer{}, &bytes.Buffer{})

	assert.False(t, opts.ClearScreen)
	assert.False(t, opts.Pause)
	assert.True(t, opts.ConfirmDelete)
	assert.True(t, opts.AutoID)
	assert.True(t, opts.Renderer.Table)
	assert.False(t, opts.Renderer.Color)

	cfg.Display.Color = "always"
	assert.True(t, shellOptions(cfg, &bytes.Buffer{}, &bytes.Buffer{}).Renderer.Color)
}

func TestExportHook(t *testing.T) {
	fs := setupCmdTest(t)
	cfg := types.DefaultAppConfig()
	assert.Nil(t, exportHook(cfg, logger.Discard()))

	cfg.Export.Path = "/out/tasks.toml"
	hook := exportHook(cfg, logger.Discard())
	require.NotNil(t, hook)

	task := models.NewTask("1", "Buy milk", mustParse(t, "01.03.2024"), models.High)
	require.NoError(t, hook([]models.Task{task}))

	data, err := afero.ReadFile(fs, "/out/tasks.toml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[tasks]]")
	assert.Contains(t, string(data), `name = "Buy milk"`)
}
