package services

import (
	"sort"
	"time"

	"linkedpro/internal/application/common"
	"linkedpro/internal/application/mapper"
	"linkedpro/internal/domain/entities"
)

// AssembleFeed derives a display-ready, time-ordered sequence of post views
// from raw posts. It is a pure function of its inputs: nothing is mutated
// and the same inputs always produce the same output.
//
// Posts are sorted by timestamp descending; the sort is stable, so posts
// with equal timestamps keep their relative store order. A post whose
// author cannot be resolved is dropped. viewerID 0 means no authenticated
// viewer, so is_liked_by_me is false everywhere.
func AssembleFeed(posts []*entities.Post, resolveAuthor func(id int) *entities.User, viewerID int, now time.Time) []*common.PostResult {
	ordered := make([]*entities.Post, len(posts))
	copy(ordered, posts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.After(ordered[j].Timestamp)
	})

	results := make([]*common.PostResult, 0, len(ordered))
	for _, post := range ordered {
		author := resolveAuthor(post.UserID)
		if author == nil {
			continue
		}
		results = append(results, mapper.NewPostResult(post, author, viewerID, now))
	}
	return results
}
