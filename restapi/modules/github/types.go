// Package github provides GitHub integration types for the REST API.
package github

// StarState is the response body of the star endpoints.
type StarState struct {
	Repository string `json:"repository"`
	Starred    bool   `json:"starred"`
}
