package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/mkymst/tagrel/pkg/cli/config"
	controller "github.com/mkymst/tagrel/pkg/controller/http"
	"github.com/mkymst/tagrel/pkg/infra/storage"
)

func cmdServe() *cli.Command {
	var serverCfg config.Server

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run a local package index accepting uploads",
		Flags:   serverCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting tagrel index server",
				slog.String("addr", serverCfg.Addr),
				slog.String("data_dir", serverCfg.DataDir),
			)

			store, err := storage.NewLocal(serverCfg.DataDir)
			if err != nil {
				return err
			}

			server, err := controller.NewServer(
				ctx,
				store,
				controller.WithAddr(serverCfg.Addr),
				controller.WithUploadToken(serverCfg.UploadToken),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
