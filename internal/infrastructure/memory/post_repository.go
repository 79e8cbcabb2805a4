package memory

import (
	"sync"

	"linkedpro/internal/domain/entities"
	"linkedpro/internal/domain/repositories"
)

// PostRepository keeps posts in process memory, newest first in storage
// order. Posts are never deleted or edited after creation; only the like
// state changes, and only through ToggleLike under the write lock.
//
// Every method exchanges copies: stored records are only ever touched while
// holding the lock, so concurrent readers never observe a toggle halfway.
type PostRepository struct {
	mu     sync.RWMutex
	posts  []*entities.Post
	nextID int
}

func clonePost(post *entities.Post) *entities.Post {
	clone := *post
	clone.LikedBy = make([]int, len(post.LikedBy))
	copy(clone.LikedBy, post.LikedBy)
	return &clone
}

func NewPostRepository(initial ...*entities.Post) *PostRepository {
	repo := &PostRepository{
		posts:  make([]*entities.Post, 0, len(initial)),
		nextID: 1,
	}
	for _, post := range initial {
		repo.posts = append(repo.posts, clonePost(post))
		if post.ID >= repo.nextID {
			repo.nextID = post.ID + 1
		}
	}
	return repo
}

func (r *PostRepository) Create(post *entities.Post) *entities.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clonePost(post)
	stored.ID = r.nextID
	r.nextID++
	r.posts = append([]*entities.Post{stored}, r.posts...)
	return clonePost(stored)
}

func (r *PostRepository) FindByID(id int) *entities.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if post := r.findLocked(id); post != nil {
		return clonePost(post)
	}
	return nil
}

func (r *PostRepository) ListByUser(userID int) []*entities.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entities.Post
	for _, post := range r.posts {
		if post.UserID == userID {
			out = append(out, clonePost(post))
		}
	}
	return out
}

func (r *PostRepository) ListAll() []*entities.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Post, len(r.posts))
	for i, post := range r.posts {
		out[i] = clonePost(post)
	}
	return out
}

// ToggleLike flips the user's membership in the post's liker set. The
// read-modify-write runs entirely under the write lock, so two concurrent
// toggles can never both see the same starting state. Returns nil when the
// post id is unknown.
func (r *PostRepository) ToggleLike(postID, userID int) (*entities.Post, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := r.findLocked(postID)
	if post == nil {
		return nil, false
	}
	liked := post.ToggleLike(userID)
	return clonePost(post), liked
}

func (r *PostRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.posts)
}

func (r *PostRepository) findLocked(id int) *entities.Post {
	for _, post := range r.posts {
		if post.ID == id {
			return post
		}
	}
	return nil
}

var _ repositories.PostRepository = (*PostRepository)(nil)
