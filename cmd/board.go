package cmd

import (
	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/tui"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the full-screen task board",
	Long: `Open the full-screen task board.

The board holds its own in-memory list, like the menu. Use tab to switch
between the views, a/e to add or edit, c to complete, d to delete and q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		l := newLogger(cfg)
		logger.SetCommand("board")

		s := store.NewMemoryTaskStore()
		opts := shellOptions(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		if err := tui.Run(cmd.Context(), s, tui.Options{Renderer: opts.Renderer, AutoID: opts.AutoID}, l); err != nil {
			return err
		}

		if hook := exportHook(cfg, l); hook != nil {
			if err := hook(s.ListAll()); err != nil {
				PrintError("Could not export tasks.", err)
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
