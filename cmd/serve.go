package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"shipments/internal/api"
	"shipments/internal/api/handler/v1handler"
	"shipments/internal/config"
	"shipments/internal/shipping"
	"shipments/internal/tracing"
	"shipments/pkg/logger"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, svc shipping.Service) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Shipping: svc},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopTracing, err := tracing.Setup(ctx, tracing.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not set up tracing", zap.Error(err))
			}

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			svc := shipping.New(strg, shipping.NewOptions(cfg))
			stopWebserver := setupServer(ctx, cfg, svc)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := stopTracing(shutdownCtx); err != nil {
				logger.Error(ctx, "could not flush traces", zap.Error(err))
			}
		},
	}

	return cmd
}
