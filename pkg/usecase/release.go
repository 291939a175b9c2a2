package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
)

type releaseUseCase struct {
	version      interfaces.VersionUseCase
	build        interfaces.BuildUseCase
	publish      interfaces.PublishUseCase
	githubClient interfaces.GitHubClient
	notifier     interfaces.Notifier
}

// ReleaseOption is a functional option for the release pipeline
type ReleaseOption func(*releaseUseCase)

// WithNotifier enables a notification after a successful release
func WithNotifier(n interfaces.Notifier) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.notifier = n
	}
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(
	version interfaces.VersionUseCase,
	build interfaces.BuildUseCase,
	publish interfaces.PublishUseCase,
	githubClient interfaces.GitHubClient,
	opts ...ReleaseOption,
) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		version:      version,
		build:        build,
		publish:      publish,
		githubClient: githubClient,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run applies the version, builds, creates the forge release and publishes.
// Stages run strictly in order; the first failure aborts the pipeline.
func (uc *releaseUseCase) Run(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Starting release pipeline",
		"tag", string(req.Tag),
		"owner", req.Owner,
		"repo", req.Repo,
		"project_dir", req.ProjectDir,
	)

	metadataPath := filepath.Join(req.ProjectDir, req.MetadataFile)
	version, err := uc.version.Apply(ctx, req.Tag, metadataPath)
	if err != nil {
		return nil, goerr.Wrap(err, "version stage failed", goerr.V("tag", string(req.Tag)))
	}

	artifacts, err := uc.build.Build(ctx, req.ProjectDir, req.DistDir)
	if err != nil {
		return nil, goerr.Wrap(err, "build stage failed", goerr.V("version", version.String()))
	}

	info := &model.ReleaseInfo{
		Owner:   req.Owner,
		Repo:    req.Repo,
		TagName: string(req.Tag),
		Name:    fmt.Sprintf("Release %s", version.String()),
	}

	result, err := uc.githubClient.CreateRelease(ctx, info)
	if err != nil {
		return nil, goerr.Wrap(err, "release stage failed", goerr.V("tag", string(req.Tag)))
	}

	logger.Info("Created release",
		"release_id", result.ID,
		"url", result.HTMLURL,
	)

	for _, artifact := range artifacts {
		if err := uc.githubClient.UploadReleaseAsset(ctx, req.Owner, req.Repo, result.ID, artifact); err != nil {
			return nil, goerr.Wrap(err, "asset upload failed", goerr.V("asset", artifact.Name))
		}
		result.Assets = append(result.Assets, artifact.Name)
	}

	if _, err := uc.publish.Publish(ctx, req.DistDir); err != nil {
		return nil, goerr.Wrap(err, "publish stage failed", goerr.V("dist_dir", req.DistDir))
	}

	// A failed announcement should not fail an otherwise complete release.
	if uc.notifier != nil {
		if err := uc.notifier.NotifyRelease(ctx, info, result); err != nil {
			logger.Warn("Failed to send release notification", "error", err)
		}
	}

	logger.Info("Release pipeline complete",
		"tag", string(req.Tag),
		"version", version.String(),
		"assets", len(result.Assets),
	)

	return result, nil
}
