// Package version exposes the astir semantic version. Rendering never
// depends on it; it exists for tooling (CLI banners, tree-document
// compatibility gates).
package version

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
)

// Version is the current release, bumped by the release tooling.
const Version = "0.17.0"

var current = semver.MustParse(Version)

// Current returns the parsed current version.
func Current() *semver.Version {
	return current
}

// Satisfies reports whether the current version meets the given
// constraint expression, e.g. ">= 0.17, < 1".
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parse constraint %q: %w", constraint, err)
	}
	return c.Check(current), nil
}
