package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newResetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved layout",
		Long:  "Delete the saved layout. The next start shows the default layout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.adapter.Clear(); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			rt.log.Info("saved layout cleared", zap.String("key", rt.adapter.Key()))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Saved dashboard cleared.")
			return nil
		},
	}
}
