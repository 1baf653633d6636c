package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by WriteConfig when the target exists and force is off.
var ErrConfigExists = errors.New("config file already exists")

const configHeader = "# todolist configuration\n# Every key can also be set as TODOLIST_<SECTION>_<KEY> in the environment.\n"

// RenderConfig serializes cfg as YAML with two-space indentation.
func RenderConfig(cfg types.AppConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfig writes cfg to path on fs, creating parent directories.
// An existing file is only replaced when force is set.
func WriteConfig(fs afero.Fs, path string, cfg types.AppConfig, force bool) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	if exists && !force {
		return fmt.Errorf("%s: %w", path, ErrConfigExists)
	}

	data, err := RenderConfig(cfg)
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, append([]byte(configHeader), data...), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
