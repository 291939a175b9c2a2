package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/mkymst/tagrel/pkg/infra/metadata"
	"github.com/mkymst/tagrel/pkg/usecase"
)

func TestVersionUseCase_Apply(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	content := "[project]\nname = \"demo\"\nversion = \"0.0.0\"\n"
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))

	uc := usecase.NewVersion(metadata.New())

	version, err := uc.Apply(ctx, "v1.2.3-rc1", path)
	gt.NoError(t, err)
	gt.Value(t, version.String()).Equal("1.2.3_rc1")

	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains(`version = "1.2.3_rc1"`)
}

func TestVersionUseCase_Apply_InvalidTag(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewVersion(metadata.New())

	_, err := uc.Apply(ctx, "v", filepath.Join(t.TempDir(), "pyproject.toml"))
	gt.Error(t, err)
}

func TestVersionUseCase_Apply_MissingVersionLine(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "pyproject.toml")
	gt.NoError(t, os.WriteFile(path, []byte("[project]\nname = \"demo\"\n"), 0644))

	uc := usecase.NewVersion(metadata.New())

	_, err := uc.Apply(ctx, "v1.0", path)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to apply version")
}
