package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mkymst/tagrel/pkg/domain/types"
)

// Tag is a version-control tag name, e.g. "v1.2.3" or "release-2.0".
type Tag string

// ReleaseVersion is a normalized version string suitable for a package
// metadata version field: no leading alphabetic run, no hyphens.
type ReleaseVersion string

func (v ReleaseVersion) String() string {
	return string(v)
}

// tagPrefix matches the leading alphabetic run of a tag, plus one
// separator hyphen if present ("v1.2.3" -> "v", "release-2.0" -> "release-").
var tagPrefix = regexp.MustCompile(`^[A-Za-z]+-?`)

// DeriveVersion converts a tag into a release version: the alphabetic
// prefix is stripped and every remaining hyphen becomes an underscore.
//
//	v1.2.3      -> 1.2.3
//	v1.2.3-rc1  -> 1.2.3_rc1
//	version-9-beta -> 9_beta
//
// A tag without an alphabetic prefix is accepted as-is (hyphens are
// still normalized). An empty result is an error rather than a value
// that would break the downstream build.
func (t Tag) DeriveVersion() (ReleaseVersion, error) {
	rest := tagPrefix.ReplaceAllString(string(t), "")
	version := strings.ReplaceAll(rest, "-", "_")
	if version == "" {
		return "", goerr.Wrap(types.ErrEmptyVersion, "cannot derive version", goerr.V("tag", string(t)))
	}
	return ReleaseVersion(version), nil
}
