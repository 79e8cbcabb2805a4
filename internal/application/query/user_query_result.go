package query

import "linkedpro/internal/application/common"

type UserQueryResult struct {
	User *common.UserResult `json:"user"`
}
