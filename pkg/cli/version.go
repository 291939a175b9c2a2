package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/infra/metadata"
	"github.com/mkymst/tagrel/pkg/usecase"
)

func tagFlag(dest *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "tag",
		Usage:       "Triggering tag name, e.g. v1.2.3",
		Required:    true,
		Destination: dest,
		Sources:     cli.EnvVars("TAGREL_TAG", "GITHUB_REF_NAME"),
	}
}

func cmdVersion() *cli.Command {
	var tag string

	return &cli.Command{
		Name:  "version",
		Usage: "Derive a release version from a tag",
		Flags: []cli.Flag{tagFlag(&tag)},
		Action: func(ctx context.Context, c *cli.Command) error {
			versionUC := usecase.NewVersion(metadata.New())

			version, err := versionUC.Derive(ctx, model.Tag(tag))
			if err != nil {
				return err
			}

			// Plain output so it can be captured by scripts
			fmt.Fprintln(os.Stdout, version.String())
			return nil
		},
	}
}
