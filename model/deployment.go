package model

import "encoding/json"

// Deployment is a request to deploy a ref.
type Deployment struct {
	URL           string          `json:"url"`
	ID            uint64          `json:"id"`
	NodeID        string          `json:"node_id,omitempty"`
	SHA           string          `json:"sha"`
	Ref           string          `json:"ref"`
	Task          string          `json:"task"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	Environment   string          `json:"environment"`
	Description   *string         `json:"description"`
	Creator       *User           `json:"creator"`
	CreatedAt     DateTime        `json:"created_at"`
	UpdatedAt     DateTime        `json:"updated_at"`
	StatusesURL   string          `json:"statuses_url"`
	RepositoryURL string          `json:"repository_url"`
}

// DeploymentRequest is the body of a create-deployment call. The zero value is
// not useful; use NewDeploymentRequest.
type DeploymentRequest struct {
	ref              string
	task             Optional[string]
	autoMerge        Optional[bool]
	requiredContexts Optional[[]string]
	payload          Optional[json.RawMessage]
	environment      Optional[string]
	description      Optional[string]
}

// Ref returns the commit reference to deploy.
func (r DeploymentRequest) Ref() string { return r.ref }

// Fields returns the wire layout.
func (r DeploymentRequest) Fields() []Field {
	return []Field{
		Required("ref", String(r.ref)),
		optString("task", r.task),
		optBool("auto_merge", r.autoMerge),
		optStrings("required_contexts", r.requiredContexts),
		optRaw("payload", r.payload),
		optString("environment", r.environment),
		optString("description", r.description),
	}
}

// MarshalJSON writes only the fields that were set.
func (r DeploymentRequest) MarshalJSON() ([]byte, error) { return marshalFields(r) }

// DeploymentRequestBuilder accumulates a DeploymentRequest. It is not safe for
// concurrent use.
type DeploymentRequestBuilder struct {
	req DeploymentRequest
}

// NewDeploymentRequest starts a deployment of ref, which may be a branch, tag or
// SHA.
func NewDeploymentRequest(ref string) *DeploymentRequestBuilder {
	return &DeploymentRequestBuilder{req: DeploymentRequest{ref: ref}}
}

// Task sets the task name, such as "deploy" or "deploy:migrations".
func (b *DeploymentRequestBuilder) Task(task string) *DeploymentRequestBuilder {
	b.req.task = Some(task)
	return b
}

// AutoMerge sets whether the default branch is merged into ref first.
func (b *DeploymentRequestBuilder) AutoMerge(merge bool) *DeploymentRequestBuilder {
	b.req.autoMerge = Some(merge)
	return b
}

// RequiredContexts sets the status contexts that must pass. Calling it with no
// arguments sends an empty list, which skips the check.
func (b *DeploymentRequestBuilder) RequiredContexts(contexts ...string) *DeploymentRequestBuilder {
	b.req.requiredContexts = Some(append([]string{}, contexts...))
	return b
}

// Payload sets extra JSON for the deployment. It is sent verbatim and must be
// valid JSON.
func (b *DeploymentRequestBuilder) Payload(payload json.RawMessage) *DeploymentRequestBuilder {
	b.req.payload = Some(json.RawMessage(append([]byte{}, payload...)))
	return b
}

// Environment sets the target environment name.
func (b *DeploymentRequestBuilder) Environment(env string) *DeploymentRequestBuilder {
	b.req.environment = Some(env)
	return b
}

// Description sets the short description.
func (b *DeploymentRequestBuilder) Description(desc string) *DeploymentRequestBuilder {
	b.req.description = Some(desc)
	return b
}

// Build returns a snapshot of the request. Later setter calls do not affect it.
func (b *DeploymentRequestBuilder) Build() DeploymentRequest {
	req := b.req
	req.requiredContexts = cloneOptStrings(req.requiredContexts)
	req.payload = cloneOptRaw(req.payload)
	return req
}

// DeploymentStatus is one state change of a deployment.
type DeploymentStatus struct {
	URL           string   `json:"url"`
	ID            uint64   `json:"id"`
	State         State    `json:"state"`
	TargetURL     string   `json:"target_url"`
	Description   string   `json:"description"`
	Environment   string   `json:"environment,omitempty"`
	DeploymentURL string   `json:"deployment_url"`
	RepositoryURL string   `json:"repository_url"`
	Creator       *User    `json:"creator"`
	CreatedAt     DateTime `json:"created_at"`
	UpdatedAt     DateTime `json:"updated_at"`
}

// DeploymentStatusRequest is the body of a create-deployment-status call.
type DeploymentStatusRequest struct {
	state       State
	targetURL   Optional[string]
	description Optional[string]
}

// State returns the requested state.
func (r DeploymentStatusRequest) State() State { return r.state }

// Fields returns the wire layout.
func (r DeploymentStatusRequest) Fields() []Field {
	return []Field{
		Required("state", stateValue(r.state)),
		optString("target_url", r.targetURL),
		optString("description", r.description),
	}
}

// MarshalJSON writes only the fields that were set.
func (r DeploymentStatusRequest) MarshalJSON() ([]byte, error) { return marshalFields(r) }

// DeploymentStatusRequestBuilder accumulates a DeploymentStatusRequest.
type DeploymentStatusRequestBuilder struct {
	req DeploymentStatusRequest
}

// NewDeploymentStatusRequest starts a deployment status in the given state.
func NewDeploymentStatusRequest(state State) *DeploymentStatusRequestBuilder {
	return &DeploymentStatusRequestBuilder{req: DeploymentStatusRequest{state: state}}
}

// TargetURL sets the link to the deployment output.
func (b *DeploymentStatusRequestBuilder) TargetURL(url string) *DeploymentStatusRequestBuilder {
	b.req.targetURL = Some(url)
	return b
}

// Description sets the short status description.
func (b *DeploymentStatusRequestBuilder) Description(desc string) *DeploymentStatusRequestBuilder {
	b.req.description = Some(desc)
	return b
}

// Build returns a snapshot of the request.
func (b *DeploymentStatusRequestBuilder) Build() DeploymentStatusRequest {
	return b.req
}
