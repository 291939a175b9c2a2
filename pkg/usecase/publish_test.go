package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/domain/types"
	"github.com/mkymst/tagrel/pkg/usecase"
)

// MockIndexClient records uploads
type MockIndexClient struct {
	uploadFunc func(ctx context.Context, project *model.Project, artifact *model.Artifact) error
	uploads    []MockUpload
}

type MockUpload struct {
	Project *model.Project
	File    string
}

func (m *MockIndexClient) Upload(ctx context.Context, project *model.Project, artifact *model.Artifact) error {
	m.uploads = append(m.uploads, MockUpload{Project: project, File: artifact.Name})
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, project, artifact)
	}
	return nil
}

func createDistDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{
		"demo_pkg-1.2.3.tar.gz",
		"demo_pkg-1.2.3-py3-none-any.whl",
		"notes.txt", // not a distribution, must be skipped
	} {
		gt.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0644))
	}
	return dir
}

func TestPublishUseCase_Publish(t *testing.T) {
	ctx := context.Background()
	distDir := createDistDir(t)

	mock := &MockIndexClient{}
	uc := usecase.NewPublish(mock)

	artifacts, err := uc.Publish(ctx, distDir)
	gt.NoError(t, err)
	gt.Number(t, len(artifacts)).Equal(2)
	gt.Number(t, len(mock.uploads)).Equal(2)

	for _, upload := range mock.uploads {
		gt.Value(t, upload.Project.Name).Equal("demo_pkg")
		gt.Value(t, upload.Project.Version).Equal("1.2.3")
	}
}

func TestPublishUseCase_EmptyDist(t *testing.T) {
	ctx := context.Background()

	uc := usecase.NewPublish(&MockIndexClient{})

	_, err := uc.Publish(ctx, t.TempDir())
	gt.Error(t, err)
	gt.Value(t, errors.Is(err, types.ErrNoArtifacts)).Equal(true)
}

func TestPublishUseCase_UploadError(t *testing.T) {
	ctx := context.Background()
	distDir := createDistDir(t)

	mock := &MockIndexClient{
		uploadFunc: func(ctx context.Context, project *model.Project, artifact *model.Artifact) error {
			return errors.New("index unavailable")
		},
	}
	uc := usecase.NewPublish(mock)

	_, err := uc.Publish(ctx, distDir)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to publish artifact")
}
