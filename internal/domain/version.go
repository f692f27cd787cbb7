package domain

import (
	"github.com/Masterminds/semver/v3"
)

// Version wraps semver.Version for additional methods.
type Version struct {
	*semver.Version
}

// NewVersion creates a new Version from a string.
func NewVersion(s string) (*Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, err
	}
	return &Version{v}, nil
}

// BumpPatch increments the patch version.
func (v *Version) BumpPatch() *Version {
	newVer := v.IncPatch()
	return &Version{&newVer}
}

// String returns the version string with v prefix.
func (v *Version) String() string {
	return "v" + v.Version.String()
}

// NextPatchTag suggests a release tag from the latest existing tag by
// bumping the patch component. It returns "" when the latest tag is empty
// or not semver shaped; a suggestion is a convenience, never a requirement.
func NextPatchTag(latestTag string) string {
	if latestTag == "" {
		return ""
	}
	v, err := NewVersion(latestTag)
	if err != nil {
		return ""
	}
	return v.BumpPatch().String()
}
