package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrEmptyVersion is returned when a tag yields no version after
	// stripping the alphabetic prefix (e.g. the tag "v" or an empty tag).
	ErrEmptyVersion = goerr.New("derived version is empty")

	// ErrVersionLineNotFound is returned when the metadata file has no
	// line starting with "version = ". The original workflow silently
	// skipped the rewrite in this case; tagrel treats it as a failure.
	ErrVersionLineNotFound = goerr.New("no version declaration line in metadata file")

	// ErrNoArtifacts is returned when publish finds nothing to upload.
	ErrNoArtifacts = goerr.New("no distribution artifacts found")
)
