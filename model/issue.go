package model

// Label is an issue label.
type Label struct {
	URL   string `json:"url"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LabelRequest is the body of a create-label call.
type LabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Issue is an issue.
type Issue struct {
	ID          uint64    `json:"id"`
	URL         string    `json:"url"`
	LabelsURL   string    `json:"labels_url"`
	CommentsURL string    `json:"comments_url"`
	EventsURL   string    `json:"events_url"`
	HTMLURL     string    `json:"html_url"`
	Number      uint64    `json:"number"`
	State       string    `json:"state"`
	Title       string    `json:"title"`
	Body        *string   `json:"body"`
	User        User      `json:"user"`
	Labels      []Label   `json:"labels"`
	Assignee    *User     `json:"assignee"`
	Locked      bool      `json:"locked"`
	Comments    uint64    `json:"comments"`
	ClosedAt    *DateTime `json:"closed_at"`
	CreatedAt   DateTime  `json:"created_at"`
	UpdatedAt   DateTime  `json:"updated_at"`
}

// IssueRequest is the body of a create-issue call. Labels are always sent.
type IssueRequest struct {
	title     string
	body      Optional[string]
	assignee  Optional[string]
	milestone Optional[uint64]
	labels    []string
}

// Fields returns the wire layout.
func (r IssueRequest) Fields() []Field {
	return []Field{
		Required("title", String(r.title)),
		optString("body", r.body),
		optString("assignee", r.assignee),
		optUint("milestone", r.milestone),
		Required("labels", Strings(r.labels)),
	}
}

// MarshalJSON writes only the fields that were set.
func (r IssueRequest) MarshalJSON() ([]byte, error) { return marshalFields(r) }

// IssueRequestBuilder accumulates an IssueRequest.
type IssueRequestBuilder struct {
	req IssueRequest
}

// NewIssueRequest starts an issue with the given title and no labels.
func NewIssueRequest(title string) *IssueRequestBuilder {
	return &IssueRequestBuilder{req: IssueRequest{title: title, labels: []string{}}}
}

// Body sets the issue text.
func (b *IssueRequestBuilder) Body(body string) *IssueRequestBuilder {
	b.req.body = Some(body)
	return b
}

// Assignee sets the login of the assignee.
func (b *IssueRequestBuilder) Assignee(login string) *IssueRequestBuilder {
	b.req.assignee = Some(login)
	return b
}

// Milestone sets the milestone number.
func (b *IssueRequestBuilder) Milestone(number uint64) *IssueRequestBuilder {
	b.req.milestone = Some(number)
	return b
}

// Labels replaces the label names.
func (b *IssueRequestBuilder) Labels(labels ...string) *IssueRequestBuilder {
	b.req.labels = append([]string{}, labels...)
	return b
}

// Build returns a snapshot of the request.
func (b *IssueRequestBuilder) Build() IssueRequest {
	req := b.req
	req.labels = cloneStrings(req.labels)
	return req
}
