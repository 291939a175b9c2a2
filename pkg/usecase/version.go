package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
)

type versionUseCase struct {
	metadata interfaces.MetadataStore
}

// NewVersion creates a new instance of VersionUseCase
func NewVersion(metadata interfaces.MetadataStore) interfaces.VersionUseCase {
	return &versionUseCase{
		metadata: metadata,
	}
}

// Derive computes the release version for a tag
func (uc *versionUseCase) Derive(ctx context.Context, tag model.Tag) (model.ReleaseVersion, error) {
	version, err := tag.DeriveVersion()
	if err != nil {
		return "", err
	}

	ctxlog.From(ctx).Debug("Derived release version",
		"tag", string(tag),
		"version", version.String(),
	)

	return version, nil
}

// Apply derives the version and rewrites the metadata file's version line
func (uc *versionUseCase) Apply(ctx context.Context, tag model.Tag, metadataPath string) (model.ReleaseVersion, error) {
	logger := ctxlog.From(ctx)

	version, err := uc.Derive(ctx, tag)
	if err != nil {
		return "", err
	}

	if err := uc.metadata.RewriteVersion(metadataPath, version); err != nil {
		return "", goerr.Wrap(err, "failed to apply version",
			goerr.V("tag", string(tag)),
			goerr.V("metadata", metadataPath),
		)
	}

	logger.Info("Applied release version",
		"tag", string(tag),
		"version", version.String(),
		"metadata", metadataPath,
	)

	return version, nil
}
