package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/mkymst/tagrel/pkg/cli/config"
	"github.com/mkymst/tagrel/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg     config.Logger
		sentryCfg     config.Sentry
		logger        *slog.Logger
		sentryEnabled bool
	)

	app := &cli.Command{
		Name:    "tagrel",
		Usage:   "Tag-driven release pipeline",
		Version: types.Version,
		Flags:   append(loggerCfg.Flags(), sentryCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			sentryEnabled, err = sentryCfg.Configure()
			if err != nil {
				return nil, err
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdVersion(),
			cmdApply(),
			cmdBuild(),
			cmdPublish(),
			cmdRelease(),
			cmdServe(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))

		if sentryEnabled {
			sentry.CaptureException(err)
			sentry.Flush(2 * time.Second)
		}
		return err
	}

	return nil
}
