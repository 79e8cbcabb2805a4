package query

import "linkedpro/internal/application/common"

type ProfileQueryResult struct {
	User         *common.UserResult   `json:"user"`
	Posts        []*common.PostResult `json:"posts"`
	IsOwnProfile bool                 `json:"is_own_profile"`
	PostCount    int                  `json:"post_count"`
}
