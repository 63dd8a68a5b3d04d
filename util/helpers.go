// Package util provides helpers shared by the ghwire services: environment lookup,
// release tag parsing, repository names and package URLs, and logger setup.
//
//revive:disable-next-line:var-naming
package util

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val
}

// GetEnvInt returns the env var parsed as an int, or defVal when it is unset or
// blank. A value that is not a number is an error.
func GetEnvInt(key string, defVal int) (int, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defVal, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

var versionPrefixPattern = regexp.MustCompile(`^.*?-v(\d+)`)

// CleanVersion removes branch prefixes from tag names
// Examples:
//   - "main-v12.0.1376-g7ac6f3" -> "12.0.1376-g7ac6f3"
//   - "release-v2.3.4" -> "2.3.4"
//   - "v1.2.3" -> "v1.2.3" (unchanged)
func CleanVersion(version string) string {
	if version == "" {
		return version
	}
	if matches := versionPrefixPattern.FindStringSubmatch(version); len(matches) > 1 {
		return versionPrefixPattern.ReplaceAllString(version, matches[1])
	}
	return version
}

// ParsedSemver holds all components of a semantic version
type ParsedSemver struct {
	Major         *int
	Minor         *int
	Patch         *int
	Prerelease    string
	BuildMetadata string
}

// ParseReleaseTag parses a release tag such as "v1.4.0-rc.1" into its semantic
// version components. It returns nil when the tag is not a version.
func ParseReleaseTag(tag string) *ParsedSemver {
	cleaned := CleanVersion(strings.TrimSpace(tag))
	if cleaned == "" {
		return nil
	}
	v, err := semver.NewVersion(cleaned)
	if err != nil {
		return nil
	}
	major := int(v.Major())
	minor := int(v.Minor())
	patch := int(v.Patch())
	return &ParsedSemver{
		Major:         &major,
		Minor:         &minor,
		Patch:         &patch,
		Prerelease:    v.Prerelease(),
		BuildMetadata: v.Metadata(),
	}
}

// CompareReleaseTags orders two tags by semantic version. Tags that are not
// versions sort before those that are, and compare as strings among themselves.
func CompareReleaseTags(a, b string) int {
	va, errA := semver.NewVersion(CleanVersion(a))
	vb, errB := semver.NewVersion(CleanVersion(b))
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return va.Compare(vb)
}
