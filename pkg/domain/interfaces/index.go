package interfaces

import (
	"context"
	"io"

	"github.com/mkymst/tagrel/pkg/domain/model"
)

// IndexClient uploads distribution files to a package index
type IndexClient interface {
	// Upload sends one artifact to the index
	Upload(ctx context.Context, project *model.Project, artifact *model.Artifact) error
}

// ArtifactStore persists uploaded distribution files for the local index
type ArtifactStore interface {
	// Save stores one uploaded file under the project's directory
	Save(ctx context.Context, project, filename string, r io.Reader) (int64, error)

	// List returns every stored project with its files
	List(ctx context.Context) ([]model.IndexEntry, error)

	// ListProject returns the files stored for one project
	ListProject(ctx context.Context, project string) ([]string, error)
}
