package github

import (
	"context"
	"os"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

// NewClient creates a GitHub client authenticated with a personal access
// token or CI-provided token.
func NewClient(token string) interfaces.GitHubClient {
	return &client{
		githubClient: github.NewClient(nil).WithAuthToken(token),
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake API
func NewClientWithBaseURL(token, baseURL string) (interfaces.GitHubClient, error) {
	gh, err := github.NewClient(nil).WithAuthToken(token).WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to set GitHub base URL", goerr.V("base_url", baseURL))
	}
	return &client{githubClient: gh}, nil
}

// CreateRelease creates a release pointing at the tag in info
func (c *client) CreateRelease(ctx context.Context, info *model.ReleaseInfo) (*model.ReleaseResult, error) {
	release := &github.RepositoryRelease{
		TagName: github.Ptr(info.TagName),
		Name:    github.Ptr(info.Name),
	}
	if info.Body != "" {
		release.Body = github.Ptr(info.Body)
	}

	created, _, err := c.githubClient.Repositories.CreateRelease(ctx, info.Owner, info.Repo, release)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release",
			goerr.V("owner", info.Owner),
			goerr.V("repo", info.Repo),
			goerr.V("tag", info.TagName),
		)
	}

	return &model.ReleaseResult{
		ID:      created.GetID(),
		HTMLURL: created.GetHTMLURL(),
	}, nil
}

// UploadReleaseAsset attaches a built artifact to an existing release
func (c *client) UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, artifact *model.Artifact) error {
	f, err := os.Open(artifact.Path)
	if err != nil {
		return goerr.Wrap(err, "failed to open artifact", goerr.V("path", artifact.Path))
	}
	defer f.Close()

	opts := &github.UploadOptions{Name: artifact.Name}
	if _, _, err := c.githubClient.Repositories.UploadReleaseAsset(ctx, owner, repo, releaseID, opts, f); err != nil {
		return goerr.Wrap(err, "failed to upload release asset",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("release_id", releaseID),
			goerr.V("asset", artifact.Name),
		)
	}

	return nil
}
