// Package webhooks defines the GitHub webhook payloads accepted by ghwire and the
// envelope they are stored in.
package webhooks

import (
	"github.com/ortelius/ghwire/model"
)

// Event is one received webhook delivery, decoded.
type Event struct {
	ID         string         `json:"id"`
	Name       string         `json:"event"`
	Action     string         `json:"action,omitempty"`
	ReceivedAt model.DateTime `json:"received_at"`
	Repository *model.Repo    `json:"repository,omitempty"`
	Sender     *model.User    `json:"sender,omitempty"`

	// Payload is one of the *Event payload types of this package.
	Payload any `json:"payload"`
}

// Delivery is a raw webhook request as received over HTTP.
type Delivery struct {
	// ID is the X-GitHub-Delivery header; a new id is generated when it is empty.
	ID   string
	Name string
	Body []byte
}

// DeploymentEvent is the "deployment" payload.
type DeploymentEvent struct {
	Action     string           `json:"action"`
	Deployment model.Deployment `json:"deployment"`
	Repository model.Repo       `json:"repository"`
	Sender     model.User       `json:"sender"`
}

// DeploymentStatusEvent is the "deployment_status" payload.
type DeploymentStatusEvent struct {
	Action           string                 `json:"action"`
	DeploymentStatus model.DeploymentStatus `json:"deployment_status"`
	Deployment       model.Deployment       `json:"deployment"`
	Repository       model.Repo             `json:"repository"`
	Sender           model.User             `json:"sender"`
}

// Branch is a branch containing the commit of a status event.
type Branch struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
		URL string `json:"url"`
	} `json:"commit"`
	Protected bool `json:"protected"`
}

// StatusEvent is the "status" payload.
type StatusEvent struct {
	ID          uint64         `json:"id"`
	SHA         string         `json:"sha"`
	Name        string         `json:"name"`
	TargetURL   *string        `json:"target_url"`
	Context     string         `json:"context"`
	Description *string        `json:"description"`
	State       model.State    `json:"state"`
	Branches    []Branch       `json:"branches"`
	CreatedAt   model.DateTime `json:"created_at"`
	UpdatedAt   model.DateTime `json:"updated_at"`
	Repository  model.Repo     `json:"repository"`
	Sender      model.User     `json:"sender"`
}

// ReleaseEvent is the "release" payload.
type ReleaseEvent struct {
	Action     string        `json:"action"`
	Release    model.Release `json:"release"`
	Repository model.Repo    `json:"repository"`
	Sender     model.User    `json:"sender"`
}

// CommitAuthor identifies the author or committer of a pushed commit.
type CommitAuthor struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}

// PushCommit is one commit of a push.
type PushCommit struct {
	ID        string         `json:"id"`
	TreeID    string         `json:"tree_id"`
	Distinct  bool           `json:"distinct"`
	Message   string         `json:"message"`
	Timestamp model.DateTime `json:"timestamp"`
	URL       string         `json:"url"`
	Author    CommitAuthor   `json:"author"`
	Committer CommitAuthor   `json:"committer"`
	Added     []string       `json:"added"`
	Removed   []string       `json:"removed"`
	Modified  []string       `json:"modified"`
}

// Pusher is the account that pushed.
type Pusher struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PushEvent is the "push" payload. Its repository carries epoch-second
// timestamps.
type PushEvent struct {
	Ref        string       `json:"ref"`
	Before     string       `json:"before"`
	After      string       `json:"after"`
	Created    bool         `json:"created"`
	Deleted    bool         `json:"deleted"`
	Forced     bool         `json:"forced"`
	BaseRef    *string      `json:"base_ref"`
	Compare    string       `json:"compare"`
	Commits    []PushCommit `json:"commits"`
	HeadCommit *PushCommit  `json:"head_commit"`
	Repository model.Repo   `json:"repository"`
	Pusher     Pusher       `json:"pusher"`
	Sender     model.User   `json:"sender"`
}

// WatchEvent is the "watch" payload, sent when a repository is starred.
type WatchEvent struct {
	Action     string     `json:"action"`
	Repository model.Repo `json:"repository"`
	Sender     model.User `json:"sender"`
}

// StarEvent is the "star" payload. StarredAt is null for "deleted".
type StarEvent struct {
	Action     string          `json:"action"`
	StarredAt  *model.DateTime `json:"starred_at"`
	Repository model.Repo      `json:"repository"`
	Sender     model.User      `json:"sender"`
}

// Hook describes the webhook that sent a ping.
type Hook struct {
	Type      string         `json:"type"`
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Active    bool           `json:"active"`
	Events    []string       `json:"events"`
	CreatedAt model.DateTime `json:"created_at"`
	UpdatedAt model.DateTime `json:"updated_at"`
}

// PingEvent is the "ping" payload sent when a webhook is created.
type PingEvent struct {
	Zen        string      `json:"zen"`
	HookID     int64       `json:"hook_id"`
	Hook       *Hook       `json:"hook"`
	Repository *model.Repo `json:"repository"`
	Sender     *model.User `json:"sender"`
}
