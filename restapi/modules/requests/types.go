// Package requests provides the request preview endpoint, which runs the sparse
// request builders on caller input and returns the wire body.
package requests

import "encoding/json"

// PreviewInput holds builder inputs. Absent fields are never passed to a setter;
// fields present with an empty value are.
type PreviewInput struct {
	Ref              *string           `json:"ref"`
	Task             *string           `json:"task"`
	AutoMerge        *bool             `json:"auto_merge"`
	RequiredContexts *[]string         `json:"required_contexts"`
	Payload          json.RawMessage   `json:"payload"`
	Environment      *string           `json:"environment"`
	Description      *string           `json:"description"`
	State            *string           `json:"state"`
	TargetURL        *string           `json:"target_url"`
	Context          *string           `json:"context"`
	Title            *string           `json:"title"`
	Body             *string           `json:"body"`
	Head             *string           `json:"head"`
	Base             *string           `json:"base"`
	Assignee         *string           `json:"assignee"`
	Milestone        *uint64           `json:"milestone"`
	Labels           *[]string         `json:"labels"`
	Files            map[string]string `json:"files"`
	Public           *bool             `json:"public"`
	TagName          *string           `json:"tag_name"`
	Commitish        *string           `json:"target_commitish"`
	Name             *string           `json:"name"`
	Draft            *bool             `json:"draft"`
	Prerelease       *bool             `json:"prerelease"`
}

// Kinds lists the request kinds the preview endpoint builds.
var Kinds = []string{"deployment", "deployment_status", "status", "pull_edit", "pull", "issue", "gist", "release"}
