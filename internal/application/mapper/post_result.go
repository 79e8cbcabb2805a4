package mapper

import (
	"fmt"
	"time"

	"linkedpro/internal/application/common"
	"linkedpro/internal/domain/entities"
)

// NewPostResult joins a post with its author and derives the viewer-specific
// fields. viewerID 0 means no authenticated viewer.
func NewPostResult(post *entities.Post, author *entities.User, viewerID int, now time.Time) *common.PostResult {
	return &common.PostResult{
		ID:             post.ID,
		UserID:         post.UserID,
		AuthorName:     author.Name,
		AuthorInitials: Initials(author.Name),
		Content:        post.Content,
		Timestamp:      post.Timestamp,
		TimeAgo:        TimeAgo(post.Timestamp, now),
		Likes:          post.Likes,
		IsLikedByMe:    viewerID != 0 && post.LikedByUser(viewerID),
	}
}

// TimeAgo buckets a timestamp's age into a human-readable relative label:
// under a minute "just now", then minutes, hours and days, and an absolute
// date once the post is thirty days old.
func TimeAgo(timestamp, now time.Time) string {
	seconds := int(now.Sub(timestamp).Seconds())
	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	case seconds < 2592000:
		return fmt.Sprintf("%dd ago", seconds/86400)
	default:
		return timestamp.Format("1/2/2006")
	}
}
