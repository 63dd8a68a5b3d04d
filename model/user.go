// Package model - User and the nested identity records shared by most resources.
package model

// User is the public profile of an account as embedded in other resources.
type User struct {
	Login             string `json:"login"`
	ID                uint64 `json:"id"`
	NodeID            string `json:"node_id,omitempty"`
	AvatarURL         string `json:"avatar_url"`
	GravatarID        string `json:"gravatar_id"`
	URL               string `json:"url"`
	HTMLURL           string `json:"html_url"`
	FollowersURL      string `json:"followers_url"`
	FollowingURL      string `json:"following_url"`
	GistsURL          string `json:"gists_url"`
	StarredURL        string `json:"starred_url"`
	SubscriptionsURL  string `json:"subscriptions_url"`
	OrganizationsURL  string `json:"organizations_url"`
	ReposURL          string `json:"repos_url"`
	EventsURL         string `json:"events_url"`
	ReceivedEventsURL string `json:"received_events_url"`
	Type              string `json:"type"`
	SiteAdmin         bool   `json:"site_admin"`
}

// Permissions are the caller's rights on a repository.
type Permissions struct {
	Admin bool `json:"admin"`
	Push  bool `json:"push"`
	Pull  bool `json:"pull"`
}

// FieldErr describes one rejected field of a request.
type FieldErr struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
}

// ClientError is the error body returned for a rejected request.
type ClientError struct {
	Message string     `json:"message"`
	Errors  []FieldErr `json:"errors,omitempty"`
}

func (e *ClientError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	msg := e.Message
	for i, fe := range e.Errors {
		sep := ", "
		if i == 0 {
			sep = ": "
		}
		msg += sep + fe.Resource + "." + fe.Field + " " + fe.Code
	}
	return msg
}
