package common

import "time"

// PostResult is a display-ready post view: the raw post joined with its
// author plus the fields derived for the requesting viewer.
type PostResult struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	AuthorName     string    `json:"author_name"`
	AuthorInitials string    `json:"author_initials"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	TimeAgo        string    `json:"time_ago"`
	Likes          int       `json:"likes"`
	IsLikedByMe    bool      `json:"is_liked_by_me"`
}
