package query

import "linkedpro/internal/application/common"

type SessionQueryResult struct {
	User      *common.UserResult `json:"user"`
	Route     string             `json:"route"`
	ContextID int                `json:"context_id,omitempty"`
}
