package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rampx/cli/internal/config"
	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/output"
	"github.com/rampx/cli/internal/prompt"
	"github.com/rampx/cli/internal/testutil"
	"github.com/rampx/cli/internal/toolchain"
)

// executeRoot runs the root command with args in an isolated home directory
// and returns what it wrote to stdout.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testutil.Home(t)

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), AnnotateError(err)
}

// useRunner routes git and package manager invocations to a recorder.
func useRunner(t *testing.T) *toolchain.RecordingRunner {
	t.Helper()
	r := &toolchain.RecordingRunner{}
	orig := runnerFactory
	runnerFactory = func() toolchain.Runner { return r }
	t.Cleanup(func() { runnerFactory = orig })
	return r
}

// useChooser replaces the interactive prompt.
func useChooser(t *testing.T, c prompt.Chooser) {
	t.Helper()
	orig := chooserFactory
	chooserFactory = func() prompt.Chooser { return c }
	t.Cleanup(func() { chooserFactory = orig })
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "rpx", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().ShorthandLookup("v"))
	assert.NotNil(t, root.Flags().ShorthandLookup("V"))

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"init", "patterns", "config", "version"})
}

func TestRoot_NoArgsPrintsHelp(t *testing.T) {
	out, err := executeRoot(t)
	require.NoError(t, err)

	assert.Contains(t, out, "rpx")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "init")
	assert.Contains(t, out, "patterns")
}

func TestRoot_HelpFlag(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			out, err := executeRoot(t, flag)
			require.NoError(t, err)
			assert.Contains(t, out, "Usage:")
			assert.Contains(t, out, tagline)
		})
	}
}

func TestRoot_VersionFlag(t *testing.T) {
	for _, flag := range []string{"-V", "--version"} {
		t.Run(flag, func(t *testing.T) {
			out, err := executeRoot(t, flag)
			require.NoError(t, err)
			assert.Equal(t, "0.0.0-dev\n", out)
		})
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	_, err := executeRoot(t, "frobnicate")
	require.Error(t, err)

	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, err.Error(), "rpx --help")
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}

func TestRoot_UnknownFlag(t *testing.T) {
	_, err := executeRoot(t, "patterns", "node", "--bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--help")
}

func TestAnnotateError(t *testing.T) {
	assert.NoError(t, AnnotateError(nil))

	plain := errors.New("something else")
	assert.Equal(t, plain, AnnotateError(plain))
}

func TestExecute(t *testing.T) {
	testutil.Home(t)

	t.Run("success", func(t *testing.T) {
		assert.NoError(t, Execute(context.Background(), []string{"version", "--short"}))
	})

	t.Run("failure carries exit code", func(t *testing.T) {
		err := Execute(context.Background(), []string{"frobnicate"})
		require.Error(t, err)

		var exitErr *oerrors.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, oerrors.ExitGeneralError, exitErr.Code)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
		assert.Contains(t, err.Error(), "rpx --help")
	})
}

func TestLogConfig(t *testing.T) {
	withTimestamps := &config.Config{Log: config.LogConfig{Timestamps: output.BoolPtr(true)}}

	tests := []struct {
		name      string
		flagSet   bool
		flagValue bool
		cfg       *config.Config
		want      *bool
	}{
		{name: "default off", cfg: config.DefaultConfig(), want: nil},
		{name: "nil config", cfg: nil, want: nil},
		{name: "config enables", cfg: withTimestamps, want: output.BoolPtr(true)},
		{name: "flag overrides config", flagSet: true, flagValue: false, cfg: withTimestamps, want: output.BoolPtr(false)},
		{name: "flag enables", flagSet: true, flagValue: true, cfg: config.DefaultConfig(), want: output.BoolPtr(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := logConfig(true, tt.flagSet, tt.flagValue, tt.cfg)
			assert.True(t, lc.Verbose)
			assert.Equal(t, tt.want, lc.Timestamps)
		})
	}
}

func TestRoot_TimestampsFlag(t *testing.T) {
	root := NewRootCmd()
	assert.NotNil(t, root.PersistentFlags().Lookup("timestamps"))

	_, err := executeRoot(t, "--timestamps", "version", "--short")
	require.NoError(t, err)
}
