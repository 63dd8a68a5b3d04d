// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import (
	"fmt"
	"strings"
)

// RepoName holds the parsed components of a full repository name
type RepoName struct {
	Owner string
	Name  string
}

// String returns the "owner/name" form.
func (r RepoName) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepoName parses a full repository name of the form "owner/name".
func ParseRepoName(fullName string) (RepoName, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(fullName), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoName{}, fmt.Errorf("invalid repository name %q, expected owner/name", fullName)
	}
	return RepoName{Owner: owner, Name: name}, nil
}

// NormalizeLogin trims an account or organization login and lowercases it.
// Logins are case-insensitive upstream.
func NormalizeLogin(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}
