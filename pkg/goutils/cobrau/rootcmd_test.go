/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package cobrau

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/voedger/mirror/pkg/goutils/logger"
)

func Test_PrepareRootCmd(t *testing.T) {
	require := require.New(t)

	t.Run("version", func(t *testing.T) {
		out := new(bytes.Buffer)
		root := PrepareRootCmd("tool", "test tool", []string{"tool", "version"}, "1.2.3")
		root.SetOut(out)
		require.NoError(root.Execute())
		require.Equal("tool version 1.2.3\n", out.String())
	})

	t.Run("verbose and trace flags set log level", func(t *testing.T) {
		defer logger.SetLogLevelWithRestore(logger.LogLevelInfo)()

		var level logger.TLogLevel
		sub := &cobra.Command{
			Use: "sub",
			RunE: func(*cobra.Command, []string) error {
				if logger.IsTrace() {
					level = logger.LogLevelTrace
				} else if logger.IsVerbose() {
					level = logger.LogLevelVerbose
				}
				return nil
			},
		}

		root := PrepareRootCmd("tool", "test tool", []string{"tool", "sub", "-v"}, "1.0", sub)
		require.NoError(root.Execute())
		require.Equal(logger.LogLevelVerbose, level)

		root.SetArgs([]string{"sub", "--trace"})
		require.NoError(root.Execute())
		require.Equal(logger.LogLevelTrace, level)
	})

	t.Run("errors are returned, not printed", func(t *testing.T) {
		testErr := errors.New("test error")
		sub := &cobra.Command{
			Use:  "fail",
			RunE: func(*cobra.Command, []string) error { return testErr },
		}
		root := PrepareRootCmd("tool", "test tool", []string{"tool", "fail"}, "1.0", sub)
		require.ErrorIs(ExecCommandWithContext(context.Background(), root), testErr)
	})
}
