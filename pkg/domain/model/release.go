package model

// ReleaseInfo describes the release to create for a tag
type ReleaseInfo struct {
	Owner   string // Repository owner
	Repo    string // Repository name
	TagName string // Tag the release points at
	Name    string // Release title
	Body    string // Release notes (may be empty)
}

// ReleaseResult is returned after a release has been created
type ReleaseResult struct {
	ID      int64    // Release ID assigned by the forge
	HTMLURL string   // Browser URL of the release page
	Assets  []string // Names of uploaded assets
}

// ReleaseRequest is the input to the full release pipeline
type ReleaseRequest struct {
	Tag          Tag    // Triggering tag
	Owner        string // Repository owner
	Repo         string // Repository name
	ProjectDir   string // Directory containing the package source
	MetadataFile string // Build-metadata file, relative to ProjectDir
	DistDir      string // Output directory for built artifacts
}
