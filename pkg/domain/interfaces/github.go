package interfaces

import (
	"context"

	"github.com/mkymst/tagrel/pkg/domain/model"
)

// GitHubClient defines operations for interacting with the GitHub API
type GitHubClient interface {
	// CreateRelease creates a release pointing at the tag in info
	CreateRelease(ctx context.Context, info *model.ReleaseInfo) (*model.ReleaseResult, error)

	// UploadReleaseAsset attaches a built artifact to an existing release
	UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, artifact *model.Artifact) error
}
