package model

// ArtifactKind distinguishes the two distribution forms a build produces
type ArtifactKind string

const (
	ArtifactSdist ArtifactKind = "sdist"
	ArtifactWheel ArtifactKind = "wheel"
)

// Artifact is a built distribution file on disk
type Artifact struct {
	Path string       // Absolute or dist-dir-relative path to the file
	Name string       // Filename, e.g. "pkg-1.2.3.tar.gz"
	Kind ArtifactKind // sdist or wheel
	Size int64        // Size in bytes
}
