package model

import "strings"

// Project represents the package described by a build-metadata file
type Project struct {
	Name    string // Distribution name, e.g. "clickhouse-pandas-wrapper"
	Version string // Version as currently declared in the metadata file
}

// NormalizedName returns the name with hyphens replaced by underscores,
// the form used in distribution filenames.
func (p *Project) NormalizedName() string {
	return strings.ReplaceAll(p.Name, "-", "_")
}
