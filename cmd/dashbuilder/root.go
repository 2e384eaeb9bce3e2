package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dashbuilder/internal/app"
	"dashbuilder/internal/config"
	"dashbuilder/internal/kvstore"
	"dashbuilder/internal/logging"
	"dashbuilder/internal/persist"
	"dashbuilder/internal/telemetry"
	"dashbuilder/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runtime holds what every command needs, opened once per invocation.
type runtime struct {
	cfg     *config.Config
	log     *zap.Logger
	tracing *telemetry.Provider
	store   kvstore.Store
	adapter *persist.Adapter
}

func newRootCmd(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:   "dashbuilder",
		Short: "Build a dashboard by dragging widgets from a catalog",
		Long: `dashbuilder places text, chart and image widgets on a dashboard.

Pick a widget type in the sidebar with m, move the marker with the arrow keys
and drop it with enter. Save with ctrl+s and load the saved layout with ctrl+o.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return rt.open(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, rt)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.BindFlags(root.PersistentFlags())
	_ = root.RegisterFlagCompletionFunc("backend", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"file", "sqlite", "memory"}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newListCmd(rt))
	root.AddCommand(newExportCmd(rt))
	root.AddCommand(newResetCmd(rt))
	return root
}

func (rt *runtime) open(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	rt.cfg = cfg

	rt.log, err = logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}

	rt.tracing, err = telemetry.NewProvider(cmd.Context())
	if err != nil {
		rt.log.Warn("tracing disabled", zap.Error(err))
		rt.tracing = telemetry.Disabled()
	}

	rt.store, err = kvstore.Open(cfg.StoreOptions())
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	rt.adapter = persist.NewAdapter(rt.store,
		persist.WithKey(cfg.StorageKey),
		persist.WithTracer(rt.tracing.Tracer()))

	rt.log.Debug("started",
		zap.String("command", cmd.Name()),
		zap.String("backend", cfg.Backend),
		zap.String("data_dir", cfg.DataDir),
		zap.String("key", cfg.StorageKey),
		zap.String("config_file", cfg.ConfigFile),
		zap.Bool("tracing", rt.tracing.Enabled()))
	return nil
}

// close releases whatever open managed to set up.
func (rt *runtime) close(ctx context.Context) error {
	var errs []error
	if rt.store != nil {
		errs = append(errs, rt.store.Close())
	}
	if rt.tracing != nil {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		errs = append(errs, rt.tracing.Shutdown(ctx))
	}
	if rt.log != nil {
		_ = rt.log.Sync()
	}
	return errors.Join(errs...)
}

func runTUI(cmd *cobra.Command, rt *runtime) error {
	a := app.New(app.Deps{Adapter: rt.adapter, Logger: rt.log})
	model := ui.NewAppModel(a, ui.Options{
		ShowSidebar: rt.cfg.ShowSidebar,
		NoticeTTL:   ui.DefaultNoticeTTL,
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
