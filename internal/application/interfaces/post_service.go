package interfaces

import (
	"linkedpro/internal/application/command"
	"linkedpro/internal/application/query"
)

type PostService interface {
	CreatePost(authorID int, cmd *command.CreatePostCommand) (*command.CreatePostCommandResult, error)
	ToggleLike(postID, userID int) (*command.ToggleLikeCommandResult, error)
	Feed(viewerID int) (*query.FeedQueryResult, error)
	Profile(viewerID, userID int) (*query.ProfileQueryResult, error)
}
