// Package model - Release, its assets and the create-release request.
package model

// Asset is a file attached to a release.
type Asset struct {
	URL                string   `json:"url"`
	BrowserDownloadURL string   `json:"browser_download_url"`
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	Label              *string  `json:"label"`
	State              string   `json:"state"`
	ContentType        string   `json:"content_type"`
	Size               uint64   `json:"size"`
	DownloadCount      uint64   `json:"download_count"`
	CreatedAt          DateTime `json:"created_at"`
	UpdatedAt          DateTime `json:"updated_at"`
	Uploader           *User    `json:"uploader"`
}

// Release is a published or draft release.
type Release struct {
	URL             string    `json:"url"`
	HTMLURL         string    `json:"html_url"`
	AssetsURL       string    `json:"assets_url"`
	UploadURL       string    `json:"upload_url"`
	TarballURL      *string   `json:"tarball_url"`
	ZipballURL      *string   `json:"zipball_url"`
	ID              uint64    `json:"id"`
	TagName         string    `json:"tag_name"`
	TargetCommitish string    `json:"target_commitish"`
	Name            *string   `json:"name"`
	Body            *string   `json:"body"`
	Draft           bool      `json:"draft"`
	Prerelease      bool      `json:"prerelease"`
	CreatedAt       DateTime  `json:"created_at"`
	PublishedAt     *DateTime `json:"published_at"`
	Author          *User     `json:"author"`
	Assets          []Asset   `json:"assets"`
}

// ReleaseRequest is the body of a create-release call.
type ReleaseRequest struct {
	tagName         string
	targetCommitish Optional[string]
	name            Optional[string]
	body            Optional[string]
	draft           Optional[bool]
	prerelease      Optional[bool]
}

// TagName returns the tag the release is created from.
func (r ReleaseRequest) TagName() string { return r.tagName }

// Fields returns the wire layout.
func (r ReleaseRequest) Fields() []Field {
	return []Field{
		Required("tag_name", String(r.tagName)),
		optString("target_commitish", r.targetCommitish),
		optString("name", r.name),
		optString("body", r.body),
		optBool("draft", r.draft),
		optBool("prerelease", r.prerelease),
	}
}

// MarshalJSON writes only the fields that were set.
func (r ReleaseRequest) MarshalJSON() ([]byte, error) { return marshalFields(r) }

// ReleaseRequestBuilder accumulates a ReleaseRequest.
type ReleaseRequestBuilder struct {
	req ReleaseRequest
}

// NewReleaseRequest starts a release of tag.
func NewReleaseRequest(tag string) *ReleaseRequestBuilder {
	return &ReleaseRequestBuilder{req: ReleaseRequest{tagName: tag}}
}

// Commitish sets the branch or SHA the tag is created from when it does not exist.
func (b *ReleaseRequestBuilder) Commitish(commitish string) *ReleaseRequestBuilder {
	b.req.targetCommitish = Some(commitish)
	return b
}

// Name sets the release title.
func (b *ReleaseRequestBuilder) Name(name string) *ReleaseRequestBuilder {
	b.req.name = Some(name)
	return b
}

// Body sets the release notes.
func (b *ReleaseRequestBuilder) Body(body string) *ReleaseRequestBuilder {
	b.req.body = Some(body)
	return b
}

// Draft sets whether the release is an unpublished draft.
func (b *ReleaseRequestBuilder) Draft(draft bool) *ReleaseRequestBuilder {
	b.req.draft = Some(draft)
	return b
}

// Prerelease sets whether the release is marked as a prerelease.
func (b *ReleaseRequestBuilder) Prerelease(pre bool) *ReleaseRequestBuilder {
	b.req.prerelease = Some(pre)
	return b
}

// Build returns a snapshot of the request.
func (b *ReleaseRequestBuilder) Build() ReleaseRequest {
	return b.req
}
