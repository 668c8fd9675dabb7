package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/polynomial/internal/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serve exposes evaluation, arithmetic, and formatting as a JSON API over HTTP, with Prometheus metrics at /metrics.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := a.cfg.Addr
			if cmd.Flags().Changed("addr") {
				addr, _ = cmd.Flags().GetString("addr")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			l, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			return a.serve(ctx, l)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from config, else :8080)")
	return cmd
}

// serve handles requests on l until ctx is done, then shuts down gracefully.
func (a *app) serve(ctx context.Context, l net.Listener) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	s := server.New(server.Options{
		Logger:       a.log,
		Registry:     reg,
		Variable:     a.vopt,
		Precision:    a.cfg.Precision,
		MaxPrecision: a.cfg.MaxPrecision,
	})
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(a.log.Handler(), slog.LevelWarn),
	}

	errc := make(chan error, 1)
	go func() {
		a.log.Info("listening", slog.String("addr", l.Addr().String()))
		errc <- srv.Serve(l)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		a.log.Info("shutting down", slog.Any("cause", context.Cause(ctx)))
	}
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		a.log.Warn("graceful shutdown did not complete", slog.Duration("timeout", shutdownTimeout), slog.Any("error", err))
		srv.Close()
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	a.log.Info("server stopped")
	return nil
}
