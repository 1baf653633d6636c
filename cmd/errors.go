package cmd

import (
	"fmt"
	"os"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/spf13/viper"
)

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
// With --verbose the underlying error is printed instead of userMsg.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		fmt.Fprintln(os.Stderr, ui.StyleError.Render(fmt.Sprintf("Error: %v", technicalErr)))
		return
	}
	fmt.Fprintln(os.Stderr, ui.StyleError.Render(userMsg))
}

// LogError prints a debug line to stderr, only in verbose mode.
func LogError(msg string, err error) {
	if !viper.GetBool("verbose") {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)
	}
}
