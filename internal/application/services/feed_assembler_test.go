package services

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedpro/internal/domain/entities"
	"linkedpro/internal/infrastructure/memory"
)

func resolveFrom(users ...*entities.User) func(int) *entities.User {
	byID := map[int]*entities.User{}
	for _, u := range users {
		byID[u.ID] = u
	}
	return func(id int) *entities.User { return byID[id] }
}

func TestAssembleFeedOrdersSeedPostsNewestFirst(t *testing.T) {
	users := memory.NewUserRepository(memory.SeedUsers()...)
	now := time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC)

	feed := AssembleFeed(memory.SeedPosts(), users.FindByID, 1, now)
	require.Len(t, feed, 5)

	got := make([]int, len(feed))
	for i, p := range feed {
		got[i] = p.ID
	}
	want := []int{1, 2, 3, 4, 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("feed order mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 1, feed[0].ID)
	assert.Equal(t, 5, feed[len(feed)-1].ID)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Timestamp.After(feed[i-1].Timestamp),
			"feed must be non-increasing by timestamp")
	}
}

func TestAssembleFeedIsStableForEqualTimestamps(t *testing.T) {
	author := &entities.User{ID: 1, Name: "John Doe"}
	ts := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	posts := []*entities.Post{
		{ID: 10, UserID: 1, Content: "first in store order", Timestamp: ts},
		{ID: 11, UserID: 1, Content: "second in store order", Timestamp: ts},
		{ID: 12, UserID: 1, Content: "third in store order", Timestamp: ts},
	}

	feed := AssembleFeed(posts, resolveFrom(author), 0, ts)
	require.Len(t, feed, 3)
	assert.Equal(t, 10, feed[0].ID)
	assert.Equal(t, 11, feed[1].ID)
	assert.Equal(t, 12, feed[2].ID)
}

func TestAssembleFeedDropsPostsWithMissingAuthor(t *testing.T) {
	author := &entities.User{ID: 1, Name: "John Doe"}
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	posts := []*entities.Post{
		{ID: 1, UserID: 1, Content: "kept", Timestamp: now.Add(-time.Hour)},
		{ID: 2, UserID: 99, Content: "orphaned", Timestamp: now},
	}

	feed := AssembleFeed(posts, resolveFrom(author), 0, now)
	require.Len(t, feed, 1)
	assert.Equal(t, 1, feed[0].ID)
}

func TestAssembleFeedDoesNotMutateInput(t *testing.T) {
	users := memory.NewUserRepository(memory.SeedUsers()...)
	posts := memory.SeedPosts()
	now := time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC)

	AssembleFeed(posts, users.FindByID, 1, now)

	// Input slice keeps its store order.
	for i, p := range posts {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestAssembleFeedEmptyInput(t *testing.T) {
	feed := AssembleFeed(nil, resolveFrom(), 0, time.Now())
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}

func TestAssembleFeedDerivedFields(t *testing.T) {
	author := &entities.User{ID: 2, Name: "Sarah Wilson"}
	now := time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC)
	posts := []*entities.Post{
		{ID: 1, UserID: 2, Content: "hi", Timestamp: now.Add(-30 * time.Minute), Likes: 1, LikedBy: []int{3}},
	}

	feed := AssembleFeed(posts, resolveFrom(author), 3, now)
	require.Len(t, feed, 1)
	assert.Equal(t, "Sarah Wilson", feed[0].AuthorName)
	assert.Equal(t, "SW", feed[0].AuthorInitials)
	assert.Equal(t, "30m ago", feed[0].TimeAgo)
	assert.True(t, feed[0].IsLikedByMe)

	asOther := AssembleFeed(posts, resolveFrom(author), 1, now)
	assert.False(t, asOther[0].IsLikedByMe)
}
