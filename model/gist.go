package model

import "sort"

// GistFile is one file of a gist as returned by the API.
type GistFile struct {
	Filename  string  `json:"filename,omitempty"`
	Type      string  `json:"type,omitempty"`
	Size      uint64  `json:"size"`
	RawURL    string  `json:"raw_url"`
	Truncated bool    `json:"truncated,omitempty"`
	Language  *string `json:"language"`
	Content   string  `json:"content,omitempty"`
}

// Gist is a gist.
type Gist struct {
	URL         string              `json:"url"`
	ForksURL    string              `json:"forks_url"`
	CommitsURL  string              `json:"commits_url"`
	ID          string              `json:"id"`
	Description *string             `json:"description"`
	Public      bool                `json:"public"`
	Owner       *User               `json:"owner"`
	User        *User               `json:"user"`
	Files       map[string]GistFile `json:"files"`
	Comments    uint64              `json:"comments"`
	CommentsURL string              `json:"comments_url"`
	HTMLURL     string              `json:"html_url"`
	GitPullURL  string              `json:"git_pull_url"`
	GitPushURL  string              `json:"git_push_url"`
	CreatedAt   DateTime            `json:"created_at"`
	UpdatedAt   DateTime            `json:"updated_at"`
}

// GistFork is a fork of a gist.
type GistFork struct {
	User      User     `json:"user"`
	URL       string   `json:"url"`
	ID        string   `json:"id"`
	CreatedAt DateTime `json:"created_at"`
	UpdatedAt DateTime `json:"updated_at"`
}

// Content is the new state of one gist file in a create or edit call.
type Content struct {
	filename Optional[string]
	content  string
}

// NewContent returns file content that keeps the file's current name.
func NewContent(content string) Content {
	return Content{content: content}
}

// RenamedContent returns file content that also renames the file.
func RenamedContent(filename, content string) Content {
	return Content{filename: Some(filename), content: content}
}

// Filename returns the new file name, if one was set.
func (c Content) Filename() (string, bool) { return c.filename.Get() }

// Text returns the file content.
func (c Content) Text() string { return c.content }

// Fields returns the wire layout.
func (c Content) Fields() []Field {
	return []Field{
		optString("filename", c.filename),
		Required("content", String(c.content)),
	}
}

// MarshalJSON writes the filename only when it was set.
func (c Content) MarshalJSON() ([]byte, error) { return marshalFields(c) }

// GistRequest is the body of a create-gist call.
type GistRequest struct {
	description Optional[string]
	public      Optional[bool]
	files       map[string]Content
}

// Files returns a copy of the files of the request.
func (r GistRequest) Files() map[string]Content {
	return cloneContents(r.files)
}

// Fields returns the wire layout. Files are keyed by name in sorted order.
func (r GistRequest) Fields() []Field {
	names := make([]string, 0, len(r.files))
	for name := range r.files {
		names = append(names, name)
	}
	sort.Strings(names)
	files := make([]Member, 0, len(names))
	for _, name := range names {
		files = append(files, Member{Key: name, Value: Encode(r.files[name])})
	}
	return []Field{
		optString("description", r.description),
		optBool("public", r.public),
		Required("files", Object(files...)),
	}
}

// MarshalJSON writes only the fields that were set.
func (r GistRequest) MarshalJSON() ([]byte, error) { return marshalFields(r) }

// GistRequestBuilder accumulates a GistRequest.
type GistRequestBuilder struct {
	req GistRequest
}

// NewGistRequest starts a gist from file name to content.
func NewGistRequest(files map[string]string) *GistRequestBuilder {
	contents := make(map[string]Content, len(files))
	for name, content := range files {
		contents[name] = NewContent(content)
	}
	return &GistRequestBuilder{req: GistRequest{files: contents}}
}

// Description sets the gist description.
func (b *GistRequestBuilder) Description(desc string) *GistRequestBuilder {
	b.req.description = Some(desc)
	return b
}

// Public sets whether the gist is public.
func (b *GistRequestBuilder) Public(public bool) *GistRequestBuilder {
	b.req.public = Some(public)
	return b
}

// File adds or replaces one file.
func (b *GistRequestBuilder) File(name string, content Content) *GistRequestBuilder {
	b.req.files[name] = content
	return b
}

// Build returns a snapshot of the request.
func (b *GistRequestBuilder) Build() GistRequest {
	req := b.req
	req.files = cloneContents(req.files)
	return req
}

func cloneContents(in map[string]Content) map[string]Content {
	out := make(map[string]Content, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
