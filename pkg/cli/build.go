package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mkymst/tagrel/pkg/cli/config"
	"github.com/mkymst/tagrel/pkg/infra/metadata"
	"github.com/mkymst/tagrel/pkg/usecase"
)

func cmdBuild() *cli.Command {
	var projectCfg config.Project

	return &cli.Command{
		Name:  "build",
		Usage: "Build source and binary distributions",
		Flags: projectCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			buildUC := usecase.NewBuild(metadata.New(),
				usecase.WithMetadataFile(projectCfg.MetadataFile),
			)

			artifacts, err := buildUC.Build(ctx, projectCfg.Dir, projectCfg.DistDir)
			if err != nil {
				return err
			}

			for _, artifact := range artifacts {
				fmt.Fprintln(os.Stdout, artifact.Path)
			}
			return nil
		},
	}
}
