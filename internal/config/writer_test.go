package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

func TestWriteConfig_WritesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/home/user/.todolist.yaml"

	if err := WriteConfig(fs, path, types.DefaultAppConfig(), false); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# todolist configuration") {
		t.Errorf("missing header, got:\n%s", content)
	}
	for _, want := range []string{"log:", "level: info", "confirmDelete: false", "format: json"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in:\n%s", want, content)
		}
	}
	if strings.Contains(content, "verbose") {
		t.Errorf("runtime-only keys should not be written:\n%s", content)
	}

	var decoded types.AppConfig
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("written config is not valid YAML: %v", err)
	}
	if decoded.Display.Color != "auto" {
		t.Errorf("Display.Color = %q, want %q", decoded.Display.Color, "auto")
	}
}

func TestWriteConfig_RespectsForce(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/work/.todolist.yaml"
	if err := afero.WriteFile(fs, path, []byte("keep: me\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteConfig(fs, path, types.DefaultAppConfig(), false)
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("expected ErrConfigExists, got %v", err)
	}
	data, _ := afero.ReadFile(fs, path)
	if string(data) != "keep: me\n" {
		t.Errorf("existing file was modified: %q", data)
	}

	cfg := types.DefaultAppConfig()
	cfg.Shell.ConfirmDelete = true
	if err := WriteConfig(fs, path, cfg, true); err != nil {
		t.Fatalf("forced write failed: %v", err)
	}
	data, _ = afero.ReadFile(fs, path)
	if !strings.Contains(string(data), "confirmDelete: true") {
		t.Errorf("forced write did not replace file:\n%s", data)
	}
}

func TestGetGlobalConfigDir_Override(t *testing.T) {
	orig := GetGlobalConfigDir
	defer func() { GetGlobalConfigDir = orig }()

	GetGlobalConfigDir = func() (string, error) { return "/tmp/todolist-test", nil }
	if got := DefaultCrashDir(); got != "/tmp/todolist-test/crash_logs" {
		t.Errorf("DefaultCrashDir() = %q", got)
	}

	GetGlobalConfigDir = func() (string, error) { return "", errors.New("no home") }
	if got := DefaultCrashDir(); !strings.HasSuffix(got, "todolist/crash_logs") {
		t.Errorf("fallback DefaultCrashDir() = %q", got)
	}
}
