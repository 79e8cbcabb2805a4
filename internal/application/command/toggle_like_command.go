package command

import "linkedpro/internal/application/common"

type ToggleLikeCommandResult struct {
	Post  *common.PostResult `json:"post"`
	Liked bool               `json:"liked"`
}
