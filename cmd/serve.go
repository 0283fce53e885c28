package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"unitconv/internal/api"
	"unitconv/internal/api/handler/v1handler"
	"unitconv/internal/config"
	"unitconv/internal/converter"
	"unitconv/internal/history"
	"unitconv/internal/worker"
	"unitconv/pkg/logger"
	"unitconv/pkg/storage"
	"unitconv/pkg/storage/memory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupHistory builds the history log on the configured storage. In async
// mode it also starts the River worker that owns the log and returns a
// recorder that enqueues jobs for it.
func setupHistory(ctx context.Context, cfg *config.Config) (history.History, history.Recorder, func(ctx context.Context)) {
	if !cfg.UsesPostgres() {
		logger.Info(ctx, "keeping conversion history in memory")
		h := history.New(memory.New(), history.NewOptions(cfg))

		return h, h, func(context.Context) {}
	}

	pgsql, closeStrg := getPostgres(ctx, cfg)
	h := history.New(pgsql, history.NewOptions(cfg))
	if !cfg.History.Async {
		return h, h, func(context.Context) { closeStrg() }
	}

	// river hard-stops when its start context is cancelled; shutdown is driven by Stop instead
	riverClient, err := worker.Start(context.WithoutCancel(ctx), pgsql.Pool, h)
	if err != nil {
		logger.Fatal(ctx, "could not start history worker", zap.Error(err))
	}
	logger.Info(ctx, "history worker started", zap.String("queue", history.Queue))

	var jobs storage.JobStorage = pgsql

	return h, history.NewQueueRecorder(jobs), func(ctx context.Context) {
		logger.Info(ctx, "stopping history worker...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop history worker", zap.Error(err))
		}
		closeStrg()
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
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
		Short: "Starts the API server and, in async mode, the history worker",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			h, recorder, stopHistory := setupHistory(ctx, cfg)

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Converter: converter.New(nil),
				History:   h,
				Recorder:  recorder,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopHistory(shutdownCtx)
		},
	}

	return cmd
}
