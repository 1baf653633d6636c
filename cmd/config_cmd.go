/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/todolist/internal/config"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage todolist configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write a config file with the default settings.

The file goes to ./.todolist.yaml, or to $HOME/.todolist.yaml with --global.
An existing file is left alone unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		global, _ := cmd.Flags().GetBool("global")
		return runConfigInit(cmd, force, global)
	},
}

// configShowCmd shows current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.RenderConfig(GetConfig())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		if f := viper.ConfigFileUsed(); f != "" {
			fmt.Fprintln(cmd.OutOrStdout(), f)
			return nil
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "No config file in use. Run 'todolist config init' to create one.")
		return nil
	},
}

func runConfigInit(cmd *cobra.Command, force, global bool) error {
	path := config.LocalConfigPath()
	if global {
		p, err := config.GlobalConfigPath()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		path = p
	}

	cfg := types.DefaultAppConfig()
	cfg.Crash.Dir = config.DefaultCrashDir()

	if err := config.WriteConfig(appFs, path, cfg, force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.NewPanel("Config written", path).WithBorderColor(ui.ColorSuccess).Render())
	return nil
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")
	configInitCmd.Flags().Bool("global", false, "write to $HOME instead of the current directory")

	configCmd.AddCommand(configInitCmd, configShowCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
