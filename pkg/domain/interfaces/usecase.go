package interfaces

import (
	"context"

	"github.com/mkymst/tagrel/pkg/domain/model"
)

// VersionUseCase derives release versions and applies them to metadata files
type VersionUseCase interface {
	// Derive computes the release version for a tag
	Derive(ctx context.Context, tag model.Tag) (model.ReleaseVersion, error)

	// Apply derives the version and rewrites the metadata file's version line
	Apply(ctx context.Context, tag model.Tag, metadataPath string) (model.ReleaseVersion, error)
}

// BuildUseCase builds distribution artifacts from a project directory
type BuildUseCase interface {
	// Build produces the sdist and wheel archives in distDir
	Build(ctx context.Context, projectDir, distDir string) ([]*model.Artifact, error)
}

// PublishUseCase uploads built artifacts to a package index
type PublishUseCase interface {
	// Publish uploads every artifact found in distDir
	Publish(ctx context.Context, distDir string) ([]*model.Artifact, error)
}

// ReleaseUseCase runs the full tag-to-release pipeline
type ReleaseUseCase interface {
	// Run applies the version, builds, creates the forge release and publishes
	Run(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseResult, error)
}
