/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/shell"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "1.0.0"

	// appFs is where config files and exports are written. Tests swap in a MemMapFs.
	appFs = afero.NewOsFs()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todolist",
	Short: "todolist - an in-memory to-do list for the terminal",
	Long: `todolist keeps a to-do list for the length of one session.

Running it without a subcommand opens the numbered menu: add, edit, delete and
complete tasks, and view them as entered, by due date or by priority.
Nothing is saved between runs unless export.path is configured, in which case
a snapshot is written when the session ends.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.HandlePanic()
	logger.SetVersion(version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.todolist.yaml or ./.todolist.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// runShell starts a fresh store and hands it to the menu shell.
func runShell(cmd *cobra.Command) error {
	cfg := GetConfig()
	l := newLogger(cfg)
	logger.SetCommand("shell")

	s := store.NewMemoryTaskStore()
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	sh := shell.New(s, in, out, shellOptions(cfg, in, out), l)
	sh.OnExit(exportHook(cfg, l))

	if cfg.Shell.WatchConfig {
		watchConfig(l, func() {
			sh.SetOptions(shellOptions(GetConfig(), in, out))
		})
	}

	l.Debug("session started", "config", cfgFileUsed())
	return sh.Run(cmd.Context())
}
