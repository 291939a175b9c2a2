package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/domain/types"
)

type publishUseCase struct {
	index interfaces.IndexClient
}

// NewPublish creates a new instance of PublishUseCase
func NewPublish(index interfaces.IndexClient) interfaces.PublishUseCase {
	return &publishUseCase{
		index: index,
	}
}

// Publish uploads every artifact found in distDir
func (uc *publishUseCase) Publish(ctx context.Context, distDir string) ([]*model.Artifact, error) {
	logger := ctxlog.From(ctx)

	artifacts, err := ScanDist(distDir)
	if err != nil {
		return nil, err
	}
	if len(artifacts) == 0 {
		return nil, goerr.Wrap(types.ErrNoArtifacts, "nothing to publish", goerr.V("dist_dir", distDir))
	}

	for _, artifact := range artifacts {
		project, err := projectFromArtifact(artifact)
		if err != nil {
			return nil, err
		}

		logger.Info("Uploading artifact",
			"file", artifact.Name,
			"kind", string(artifact.Kind),
			"project", project.Name,
			"version", project.Version,
		)

		if err := uc.index.Upload(ctx, project, artifact); err != nil {
			return nil, goerr.Wrap(err, "failed to publish artifact", goerr.V("file", artifact.Name))
		}
	}

	logger.Info("Published artifacts", "count", len(artifacts), "dist_dir", distDir)
	return artifacts, nil
}

// ScanDist lists the distribution files in distDir
func ScanDist(distDir string) ([]*model.Artifact, error) {
	entries, err := os.ReadDir(distDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dist directory", goerr.V("dir", distDir))
	}

	var artifacts []*model.Artifact
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		var kind model.ArtifactKind
		switch {
		case strings.HasSuffix(entry.Name(), ".tar.gz"):
			kind = model.ArtifactSdist
		case strings.HasSuffix(entry.Name(), ".whl"):
			kind = model.ArtifactWheel
		default:
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to stat artifact", goerr.V("file", entry.Name()))
		}

		artifacts = append(artifacts, &model.Artifact{
			Path: filepath.Join(distDir, entry.Name()),
			Name: entry.Name(),
			Kind: kind,
			Size: info.Size(),
		})
	}

	return artifacts, nil
}

// projectFromArtifact recovers the project name and version from a
// distribution filename. Built artifacts use normalized names, so the
// first hyphen always separates name from version.
func projectFromArtifact(artifact *model.Artifact) (*model.Project, error) {
	var base string
	switch artifact.Kind {
	case model.ArtifactSdist:
		base = strings.TrimSuffix(artifact.Name, ".tar.gz")
	case model.ArtifactWheel:
		base = strings.TrimSuffix(artifact.Name, ".whl")
	default:
		return nil, goerr.New("unknown artifact kind", goerr.V("file", artifact.Name))
	}

	parts := strings.SplitN(base, "-", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, goerr.New("cannot parse artifact filename",
			goerr.V("file", artifact.Name),
		)
	}

	return &model.Project{
		Name:    parts[0],
		Version: parts[1],
	}, nil
}
