package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			app, err := newApp(cfg, logger)
			if err != nil {
				logger.Error("load site failed", zap.Error(err))
				return err
			}

			srv := &http.Server{
				Addr:         cfg.Addr,
				Handler:      app.Handler(),
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
				IdleTimeout:  cfg.IdleTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening",
					zap.String("addr", cfg.Addr),
					zap.String("site", app.Site().Name),
					zap.Int("pages", len(app.Site().Pages)),
				)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return <-errCh
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: SHOWCASE_ADDR)")
	return cmd
}
