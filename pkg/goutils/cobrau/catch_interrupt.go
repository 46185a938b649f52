/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/voedger/mirror/pkg/goutils/logger"
)

// Executes command with context which is cancelled on interrupt signal.
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	return ExecCommandWithContext(context.Background(), cmd)
}

// Executes command with context derived from ctx and cancelled on interrupt signal.
func ExecCommandWithContext(ctx context.Context, cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	if ctx.Err() != nil {
		logger.Info("interrupted:", context.Cause(ctx))
	}
	return err
}
