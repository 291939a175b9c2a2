package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/infra/metadata"
	"github.com/mkymst/tagrel/pkg/usecase"
)

// MockGitHubClient is a mock implementation of GitHubClient
type MockGitHubClient struct {
	createReleaseFunc func(ctx context.Context, info *model.ReleaseInfo) (*model.ReleaseResult, error)
	createdReleases   []*model.ReleaseInfo
	uploadedAssets    []string
}

func (m *MockGitHubClient) CreateRelease(ctx context.Context, info *model.ReleaseInfo) (*model.ReleaseResult, error) {
	m.createdReleases = append(m.createdReleases, info)
	if m.createReleaseFunc != nil {
		return m.createReleaseFunc(ctx, info)
	}
	return &model.ReleaseResult{ID: 100, HTMLURL: "https://github.test/release/100"}, nil
}

func (m *MockGitHubClient) UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, artifact *model.Artifact) error {
	m.uploadedAssets = append(m.uploadedAssets, artifact.Name)
	return nil
}

// MockNotifier records notifications
type MockNotifier struct {
	notified []*model.ReleaseResult
	err      error
}

func (m *MockNotifier) NotifyRelease(ctx context.Context, info *model.ReleaseInfo, result *model.ReleaseResult) error {
	m.notified = append(m.notified, result)
	return m.err
}

func newReleaseRequest(t *testing.T) *model.ReleaseRequest {
	t.Helper()
	projectDir := createTestProject(t)

	return &model.ReleaseRequest{
		Tag:          "v2.0.0-rc1",
		Owner:        "owner",
		Repo:         "repo",
		ProjectDir:   projectDir,
		MetadataFile: "pyproject.toml",
		DistDir:      filepath.Join(projectDir, "dist"),
	}
}

func newReleaseUseCase(gh *MockGitHubClient, index *MockIndexClient, opts ...usecase.ReleaseOption) interfaces.ReleaseUseCase {
	store := metadata.New()
	return usecase.NewRelease(
		usecase.NewVersion(store),
		usecase.NewBuild(store),
		usecase.NewPublish(index),
		gh,
		opts...,
	)
}

func TestReleaseUseCase_Run(t *testing.T) {
	ctx := context.Background()
	req := newReleaseRequest(t)

	gh := &MockGitHubClient{}
	index := &MockIndexClient{}
	notifier := &MockNotifier{}

	uc := newReleaseUseCase(gh, index, usecase.WithNotifier(notifier))

	result, err := uc.Run(ctx, req)
	gt.NoError(t, err)
	gt.Value(t, result).NotNil()
	gt.Number(t, result.ID).Equal(int64(100))

	// Metadata file got the derived version
	data, err := os.ReadFile(filepath.Join(req.ProjectDir, req.MetadataFile))
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains(`version = "2.0.0_rc1"`)

	// Release created for the tag with both artifacts attached
	gt.Number(t, len(gh.createdReleases)).Equal(1)
	gt.Value(t, gh.createdReleases[0].TagName).Equal("v2.0.0-rc1")
	gt.Number(t, len(gh.uploadedAssets)).Equal(2)
	gt.Number(t, len(result.Assets)).Equal(2)

	// Both artifacts published to the index
	gt.Number(t, len(index.uploads)).Equal(2)

	// Notification sent once
	gt.Number(t, len(notifier.notified)).Equal(1)
}

func TestReleaseUseCase_Run_InvalidTag(t *testing.T) {
	ctx := context.Background()
	req := newReleaseRequest(t)
	req.Tag = "v"

	gh := &MockGitHubClient{}
	uc := newReleaseUseCase(gh, &MockIndexClient{})

	_, err := uc.Run(ctx, req)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("version stage failed")
	gt.Number(t, len(gh.createdReleases)).Equal(0)
}

func TestReleaseUseCase_Run_CreateReleaseError(t *testing.T) {
	ctx := context.Background()
	req := newReleaseRequest(t)

	gh := &MockGitHubClient{
		createReleaseFunc: func(ctx context.Context, info *model.ReleaseInfo) (*model.ReleaseResult, error) {
			return nil, errors.New("forbidden")
		},
	}
	index := &MockIndexClient{}
	uc := newReleaseUseCase(gh, index)

	_, err := uc.Run(ctx, req)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("release stage failed")

	// Publish never runs after a failed release stage
	gt.Number(t, len(index.uploads)).Equal(0)
}

func TestReleaseUseCase_Run_NotifyFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	req := newReleaseRequest(t)

	notifier := &MockNotifier{err: errors.New("webhook down")}
	uc := newReleaseUseCase(&MockGitHubClient{}, &MockIndexClient{}, usecase.WithNotifier(notifier))

	result, err := uc.Run(ctx, req)
	gt.NoError(t, err)
	gt.Value(t, result).NotNil()
	gt.Number(t, len(notifier.notified)).Equal(1)
}
