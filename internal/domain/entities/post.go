package entities

import "time"

// Post is a feed entry authored by one user. Content and Timestamp are
// immutable after creation; only the like state changes.
//
// LikedBy has set semantics: a user id appears at most once. Likes moves in
// lockstep with LikedBy for every post created through the API. Seed posts
// start with a legacy like count and an empty LikedBy, so Likes is a counter
// in its own right rather than being derived from the set.
type Post struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
	LikedBy   []int     `json:"liked_by"`
}

func NewPost(userID int, content string) *Post {
	return &Post{
		UserID:    userID,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Likes:     0,
		LikedBy:   make([]int, 0),
	}
}

// LikedByUser reports whether userID is in the liker set.
func (p *Post) LikedByUser(userID int) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike adds userID to the liker set, or removes it when already
// present, keeping the counter in lockstep. It returns true when the post
// is liked by the user after the call.
func (p *Post) ToggleLike(userID int) bool {
	for i, id := range p.LikedBy {
		if id == userID {
			p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
			p.Likes--
			return false
		}
	}
	p.LikedBy = append(p.LikedBy, userID)
	p.Likes++
	return true
}
