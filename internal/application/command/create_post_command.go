package command

import "linkedpro/internal/application/common"

type CreatePostCommand struct {
	Content string `json:"content"`
}

type CreatePostCommandResult struct {
	Post *common.PostResult `json:"post"`
}
