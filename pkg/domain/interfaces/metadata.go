package interfaces

import "github.com/mkymst/tagrel/pkg/domain/model"

// MetadataStore reads and rewrites build-metadata files
type MetadataStore interface {
	// Load parses the metadata file and returns the project it describes
	Load(path string) (*model.Project, error)

	// RewriteVersion overwrites the version declaration line with version
	RewriteVersion(path string, version model.ReleaseVersion) error
}
