package model

// Repo is a repository.
//
// PushedAt, CreatedAt and UpdatedAt are RFC 3339 strings in the REST API but epoch
// seconds in push webhook payloads; DateTime accepts both.
type Repo struct {
	ID               uint64       `json:"id"`
	NodeID           string       `json:"node_id,omitempty"`
	Owner            User         `json:"owner"`
	Name             string       `json:"name"`
	FullName         string       `json:"full_name"`
	Description      *string      `json:"description"`
	Private          bool         `json:"private"`
	Fork             bool         `json:"fork"`
	URL              string       `json:"url"`
	HTMLURL          string       `json:"html_url"`
	ArchiveURL       string       `json:"archive_url"`
	AssigneesURL     string       `json:"assignees_url"`
	BlobsURL         string       `json:"blobs_url"`
	BranchesURL      string       `json:"branches_url"`
	CloneURL         string       `json:"clone_url"`
	CollaboratorsURL string       `json:"collaborators_url"`
	CommentsURL      string       `json:"comments_url"`
	CommitsURL       string       `json:"commits_url"`
	CompareURL       string       `json:"compare_url"`
	ContentsURL      string       `json:"contents_url"`
	ContributorsURL  string       `json:"contributors_url"`
	DownloadsURL     string       `json:"downloads_url"`
	EventsURL        string       `json:"events_url"`
	ForksURL         string       `json:"forks_url"`
	GitCommitsURL    string       `json:"git_commits_url"`
	GitRefsURL       string       `json:"git_refs_url"`
	GitTagsURL       string       `json:"git_tags_url"`
	GitURL           string       `json:"git_url"`
	HooksURL         string       `json:"hooks_url"`
	IssueCommentURL  string       `json:"issue_comment_url"`
	IssueEventsURL   string       `json:"issue_events_url"`
	IssuesURL        string       `json:"issues_url"`
	KeysURL          string       `json:"keys_url"`
	LabelsURL        string       `json:"labels_url"`
	LanguagesURL     string       `json:"languages_url"`
	MergesURL        string       `json:"merges_url"`
	MilestonesURL    string       `json:"milestones_url"`
	MirrorURL        *string      `json:"mirror_url"`
	NotificationsURL string       `json:"notifications_url"`
	PullsURL         string       `json:"pulls_url"`
	ReleasesURL      string       `json:"releases_url"`
	SSHURL           string       `json:"ssh_url"`
	StargazersURL    string       `json:"stargazers_url"`
	StatusesURL      string       `json:"statuses_url"`
	SubscribersURL   string       `json:"subscribers_url"`
	SubscriptionURL  string       `json:"subscription_url"`
	SvnURL           string       `json:"svn_url"`
	TagsURL          string       `json:"tags_url"`
	TeamsURL         string       `json:"teams_url"`
	TreesURL         string       `json:"trees_url"`
	Homepage         *string      `json:"homepage"`
	Language         *string      `json:"language"`
	ForksCount       uint64       `json:"forks_count"`
	StargazersCount  uint64       `json:"stargazers_count"`
	WatchersCount    uint64       `json:"watchers_count"`
	Size             uint64       `json:"size"`
	DefaultBranch    string       `json:"default_branch"`
	OpenIssuesCount  uint64       `json:"open_issues_count"`
	HasIssues        bool         `json:"has_issues"`
	HasWiki          bool         `json:"has_wiki"`
	HasPages         bool         `json:"has_pages"`
	HasDownloads     bool         `json:"has_downloads"`
	PushedAt         *DateTime    `json:"pushed_at"`
	CreatedAt        DateTime     `json:"created_at"`
	UpdatedAt        DateTime     `json:"updated_at"`
	Permissions      *Permissions `json:"permissions,omitempty"`
}

// RepoDetails is the short repository form used in listings.
type RepoDetails struct {
	ID       uint64 `json:"id"`
	Owner    User   `json:"owner"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// Commit is one side (head or base) of a pull request.
type Commit struct {
	Label string `json:"label"`
	Ref   string `json:"ref"`
	SHA   string `json:"sha"`
	User  User   `json:"user"`
	Repo  *Repo  `json:"repo"`
}
