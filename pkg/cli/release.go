package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/mkymst/tagrel/pkg/cli/config"
	"github.com/mkymst/tagrel/pkg/domain/model"
	githubinfra "github.com/mkymst/tagrel/pkg/infra/github"
	"github.com/mkymst/tagrel/pkg/infra/index"
	"github.com/mkymst/tagrel/pkg/infra/metadata"
	"github.com/mkymst/tagrel/pkg/infra/notify"
	"github.com/mkymst/tagrel/pkg/usecase"
)

func cmdRelease() *cli.Command {
	var (
		tag        string
		projectCfg config.Project
		githubCfg  config.GitHub
		indexCfg   config.Index
		notifyCfg  config.Notify
	)

	flags := []cli.Flag{tagFlag(&tag)}
	flags = append(flags, projectCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, indexCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)

	return &cli.Command{
		Name:    "release",
		Aliases: []string{"r"},
		Usage:   "Run the full pipeline: apply version, build, create release, publish",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			owner, repo, err := githubCfg.OwnerRepo()
			if err != nil {
				return err
			}

			metadataStore := metadata.New()
			versionUC := usecase.NewVersion(metadataStore)
			buildUC := usecase.NewBuild(metadataStore,
				usecase.WithMetadataFile(projectCfg.MetadataFile),
			)
			publishUC := usecase.NewPublish(index.NewClient(indexCfg.URL, indexCfg.Token))

			var opts []usecase.ReleaseOption
			if notifyCfg.SlackWebhookURL != "" {
				opts = append(opts, usecase.WithNotifier(notify.NewSlack(notifyCfg.SlackWebhookURL)))
			}

			releaseUC := usecase.NewRelease(
				versionUC,
				buildUC,
				publishUC,
				githubinfra.NewClient(githubCfg.Token),
				opts...,
			)

			result, err := releaseUC.Run(ctx, &model.ReleaseRequest{
				Tag:          model.Tag(tag),
				Owner:        owner,
				Repo:         repo,
				ProjectDir:   projectCfg.Dir,
				MetadataFile: projectCfg.MetadataFile,
				DistDir:      projectCfg.DistDir,
			})
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen, color.Bold)
			_, _ = green.Fprintf(os.Stdout, "released %s\n", tag)
			if result.HTMLURL != "" {
				fmt.Fprintln(os.Stdout, result.HTMLURL)
			}
			for _, asset := range result.Assets {
				fmt.Fprintf(os.Stdout, "  %s\n", asset)
			}
			return nil
		},
	}
}
