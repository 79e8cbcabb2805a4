package query

import "linkedpro/internal/application/common"

// FeedQueryResult is an ordered, display-ready sequence of post views.
// An empty feed is a valid result.
type FeedQueryResult struct {
	Posts []*common.PostResult `json:"posts"`
}
