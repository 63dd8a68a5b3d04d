package model

import "fmt"

// State is the state of a commit status or deployment status. It is encoded as
// its lowercase tag.
type State string

const (
	// StatePending marks work that has not finished.
	StatePending State = "pending"
	// StateSuccess marks work that finished successfully.
	StateSuccess State = "success"
	// StateError marks work that could not run.
	StateError State = "error"
	// StateFailure marks work that ran and failed.
	StateFailure State = "failure"

	// Deployment statuses only.

	// StateInactive marks a deployment replaced by a later one.
	StateInactive State = "inactive"
	// StateInProgress marks a deployment that is running.
	StateInProgress State = "in_progress"
	// StateQueued marks a deployment waiting to run.
	StateQueued State = "queued"
)

var knownStates = map[State]bool{
	StatePending:    true,
	StateSuccess:    true,
	StateError:      true,
	StateFailure:    true,
	StateInactive:   true,
	StateInProgress: true,
	StateQueued:     true,
}

// ParseState returns the State named by s.
func ParseState(s string) (State, error) {
	st := State(s)
	if !knownStates[st] {
		return "", fmt.Errorf("unknown state %q", s)
	}
	return st, nil
}

func (s State) String() string { return string(s) }

// MarshalText writes the tag.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText rejects unknown tags.
func (s *State) UnmarshalText(text []byte) error {
	st, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

func stateValue(s State) Value { return String(string(s)) }

// Status is a commit status.
type Status struct {
	ID          int64    `json:"id"`
	URL         string   `json:"url"`
	State       State    `json:"state"`
	TargetURL   *string  `json:"target_url"`
	Description *string  `json:"description"`
	Context     string   `json:"context"`
	Creator     *User    `json:"creator"`
	CreatedAt   DateTime `json:"created_at"`
	UpdatedAt   DateTime `json:"updated_at"`
}

// StatusRequest is the body of a create-commit-status call.
type StatusRequest struct {
	state       State
	targetURL   Optional[string]
	description Optional[string]
	context     Optional[string]
}

// State returns the requested state.
func (r StatusRequest) State() State { return r.state }

// Fields returns the wire layout.
func (r StatusRequest) Fields() []Field {
	return []Field{
		Required("state", stateValue(r.state)),
		optString("target_url", r.targetURL),
		optString("description", r.description),
		optString("context", r.context),
	}
}

// MarshalJSON writes only the fields that were set.
func (r StatusRequest) MarshalJSON() ([]byte, error) { return marshalFields(r) }

// StatusRequestBuilder accumulates a StatusRequest. It is not safe for
// concurrent use.
type StatusRequestBuilder struct {
	req StatusRequest
}

// NewStatusRequest starts a status request in the given state.
func NewStatusRequest(state State) *StatusRequestBuilder {
	return &StatusRequestBuilder{req: StatusRequest{state: state}}
}

// TargetURL sets the link shown next to the status.
func (b *StatusRequestBuilder) TargetURL(url string) *StatusRequestBuilder {
	b.req.targetURL = Some(url)
	return b
}

// Description sets the short status description.
func (b *StatusRequestBuilder) Description(desc string) *StatusRequestBuilder {
	b.req.description = Some(desc)
	return b
}

// Context sets the label that tells this status apart from others.
func (b *StatusRequestBuilder) Context(ctx string) *StatusRequestBuilder {
	b.req.context = Some(ctx)
	return b
}

// Build returns a snapshot of the request.
func (b *StatusRequestBuilder) Build() StatusRequest {
	return b.req
}
