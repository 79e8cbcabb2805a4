package repositories

import "linkedpro/internal/domain/entities"

// PostRepository is the content store. Create assigns the next sequential
// id and inserts at the front of storage order; display order is derived
// by the feed assembler regardless. All methods exchange snapshot copies,
// so callers never share mutable state with the store; ToggleLike is the
// only mutation of a stored post and happens atomically inside the store.
// FindByID and ToggleLike return nil for an unknown id.
type PostRepository interface {
	Create(post *entities.Post) *entities.Post
	FindByID(id int) *entities.Post
	ListByUser(userID int) []*entities.Post
	ListAll() []*entities.Post
	ToggleLike(postID, userID int) (post *entities.Post, liked bool)
	Count() int
}
