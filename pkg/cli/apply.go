package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/mkymst/tagrel/pkg/cli/config"
	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/infra/metadata"
	"github.com/mkymst/tagrel/pkg/usecase"
)

func cmdApply() *cli.Command {
	var (
		tag        string
		projectCfg config.Project
	)

	flags := append([]cli.Flag{tagFlag(&tag)}, projectCfg.Flags()...)

	return &cli.Command{
		Name:  "apply",
		Usage: "Derive a version from a tag and rewrite the metadata file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			versionUC := usecase.NewVersion(metadata.New())

			metadataPath := filepath.Join(projectCfg.Dir, projectCfg.MetadataFile)
			version, err := versionUC.Apply(ctx, model.Tag(tag), metadataPath)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, version.String())
			return nil
		},
	}
}
