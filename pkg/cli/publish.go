package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mkymst/tagrel/pkg/cli/config"
	"github.com/mkymst/tagrel/pkg/infra/index"
	"github.com/mkymst/tagrel/pkg/usecase"
)

func cmdPublish() *cli.Command {
	var (
		projectCfg config.Project
		indexCfg   config.Index
	)

	flags := append(projectCfg.Flags(), indexCfg.Flags()...)

	return &cli.Command{
		Name:  "publish",
		Usage: "Upload built distributions to a package index",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			publishUC := usecase.NewPublish(index.NewClient(indexCfg.URL, indexCfg.Token))

			artifacts, err := publishUC.Publish(ctx, projectCfg.DistDir)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "uploaded %d artifacts to %s\n", len(artifacts), indexCfg.URL)
			return nil
		},
	}
}
