// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import (
	"strings"

	"github.com/package-url/packageurl-go"
)

// GitHubPURL returns the package URL of a repository, optionally pinned to a
// version, e.g. pkg:github/octo/hello@v1.0.0
func GitHubPURL(fullName, version string) (string, error) {
	repo, err := ParseRepoName(fullName)
	if err != nil {
		return "", err
	}
	purl := packageurl.NewPackageURL(packageurl.TypeGithub, NormalizeLogin(repo.Owner), strings.ToLower(repo.Name), version, nil, "")
	return purl.ToString(), nil
}
