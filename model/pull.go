package model

// Pull is a pull request.
type Pull struct {
	ID                uint64    `json:"id"`
	URL               string    `json:"url"`
	HTMLURL           string    `json:"html_url"`
	DiffURL           string    `json:"diff_url"`
	PatchURL          string    `json:"patch_url"`
	IssueURL          string    `json:"issue_url"`
	CommitsURL        string    `json:"commits_url"`
	ReviewCommentsURL string    `json:"review_comments_url"`
	ReviewCommentURL  string    `json:"review_comment_url"`
	CommentsURL       string    `json:"comments_url"`
	StatusesURL       string    `json:"statuses_url"`
	Number            uint64    `json:"number"`
	State             string    `json:"state"`
	Title             string    `json:"title"`
	Body              *string   `json:"body"`
	CreatedAt         DateTime  `json:"created_at"`
	UpdatedAt         DateTime  `json:"updated_at"`
	ClosedAt          *DateTime `json:"closed_at"`
	MergedAt          *DateTime `json:"merged_at"`
	Head              *Commit   `json:"head,omitempty"`
	Base              *Commit   `json:"base,omitempty"`
	User              User      `json:"user"`
	MergeCommitSHA    *string   `json:"merge_commit_sha"`
	Mergeable         *bool     `json:"mergeable"`
	MergedBy          *User     `json:"merged_by"`
	Comments          *uint64   `json:"comments,omitempty"`
	Commits           *uint64   `json:"commits,omitempty"`
	Additions         *uint64   `json:"additions,omitempty"`
	Deletions         *uint64   `json:"deletions,omitempty"`
	ChangedFiles      *uint64   `json:"changed_files,omitempty"`
}

// PullEdit is the body of an update-pull-request call. Every field is optional.
type PullEdit struct {
	title Optional[string]
	body  Optional[string]
	state Optional[string]
}

// Fields returns the wire layout.
func (r PullEdit) Fields() []Field {
	return []Field{
		optString("title", r.title),
		optString("body", r.body),
		optString("state", r.state),
	}
}

// MarshalJSON writes only the fields that were set.
func (r PullEdit) MarshalJSON() ([]byte, error) { return marshalFields(r) }

// PullEditBuilder accumulates a PullEdit.
type PullEditBuilder struct {
	req PullEdit
}

// NewPullEdit starts an empty pull request edit.
func NewPullEdit() *PullEditBuilder {
	return &PullEditBuilder{}
}

// Title sets the new title.
func (b *PullEditBuilder) Title(title string) *PullEditBuilder {
	b.req.title = Some(title)
	return b
}

// Body sets the new description.
func (b *PullEditBuilder) Body(body string) *PullEditBuilder {
	b.req.body = Some(body)
	return b
}

// State sets the new state, "open" or "closed".
func (b *PullEditBuilder) State(state string) *PullEditBuilder {
	b.req.state = Some(state)
	return b
}

// Build returns a snapshot of the edit.
func (b *PullEditBuilder) Build() PullEdit {
	return b.req
}

// PullRequest is the body of a create-pull-request call.
type PullRequest struct {
	title string
	head  string
	base  string
	body  Optional[string]
}

// Fields returns the wire layout.
func (r PullRequest) Fields() []Field {
	return []Field{
		Required("title", String(r.title)),
		Required("head", String(r.head)),
		Required("base", String(r.base)),
		optString("body", r.body),
	}
}

// MarshalJSON writes only the fields that were set.
func (r PullRequest) MarshalJSON() ([]byte, error) { return marshalFields(r) }

// PullRequestBuilder accumulates a PullRequest.
type PullRequestBuilder struct {
	req PullRequest
}

// NewPullRequest starts a pull request merging head into base.
func NewPullRequest(title, head, base string) *PullRequestBuilder {
	return &PullRequestBuilder{req: PullRequest{title: title, head: head, base: base}}
}

// Body sets the description.
func (b *PullRequestBuilder) Body(body string) *PullRequestBuilder {
	b.req.body = Some(body)
	return b
}

// Build returns a snapshot of the request.
func (b *PullRequestBuilder) Build() PullRequest {
	return b.req
}
