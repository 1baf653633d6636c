package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// setupCmdTest isolates a command run: fresh viper state, an empty home and
// working directory, and an in-memory filesystem for written files.
func setupCmdTest(t *testing.T) afero.Fs {
	t.Helper()
	viper.Reset()
	cfgFile = ""
	verbose = false
	require.NoError(t, configInitCmd.Flags().Set("force", "false"))
	require.NoError(t, configInitCmd.Flags().Set("global", "false"))

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	fs := afero.NewMemMapFs()
	original := appFs
	appFs = fs
	t.Cleanup(func() {
		appFs = original
		viper.Reset()
	})
	return fs
}

// execute runs rootCmd with args and stdin, returning stdout and stderr together.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}
