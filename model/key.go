package model

// Key is a deploy key.
type Key struct {
	ID        uint64   `json:"id"`
	Key       string   `json:"key"`
	Title     string   `json:"title"`
	Verified  bool     `json:"verified"`
	CreatedAt DateTime `json:"created_at"`
	ReadOnly  bool     `json:"read_only"`
}

// KeyRequest is the body of a create-deploy-key call.
type KeyRequest struct {
	Title    string `json:"title"`
	Key      string `json:"key"`
	ReadOnly bool   `json:"read_only"`
}
