package services

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"linkedpro/internal/application/command"
	"linkedpro/internal/application/interfaces"
	"linkedpro/internal/application/mapper"
	"linkedpro/internal/application/query"
	"linkedpro/internal/domain"
	"linkedpro/internal/domain/entities"
	"linkedpro/internal/domain/repositories"
)

type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) interfaces.PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// CreatePost validates trimmed content before any write; a rejected post
// leaves the store count unchanged.
func (s *PostService) CreatePost(authorID int, cmd *command.CreatePostCommand) (*command.CreatePostCommandResult, error) {
	author := s.userRepo.FindByID(authorID)
	if author == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	content := strings.TrimSpace(cmd.Content)
	if msg := domain.ValidatePostContent(content); msg != "" {
		return nil, domain.NewFieldValidationError(map[string]string{"content": msg})
	}

	post := s.postRepo.Create(entities.NewPost(authorID, content))

	s.logger.Info("post created",
		zap.Int("post_id", post.ID),
		zap.Int("user_id", authorID))

	return &command.CreatePostCommandResult{
		Post: mapper.NewPostResult(post, author, authorID, s.now()),
	}, nil
}

// ToggleLike is idempotent under double application: toggling twice with
// the same user returns the post to its original state.
func (s *PostService) ToggleLike(postID, userID int) (*command.ToggleLikeCommandResult, error) {
	post, liked := s.postRepo.ToggleLike(postID, userID)
	if post == nil {
		return nil, domain.NewNotFoundError("post not found")
	}

	author := s.userRepo.FindByID(post.UserID)
	if author == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	return &command.ToggleLikeCommandResult{
		Post:  mapper.NewPostResult(post, author, userID, s.now()),
		Liked: liked,
	}, nil
}

// Feed assembles the global feed for the viewer.
func (s *PostService) Feed(viewerID int) (*query.FeedQueryResult, error) {
	posts := AssembleFeed(s.postRepo.ListAll(), s.userRepo.FindByID, viewerID, s.now())
	return &query.FeedQueryResult{Posts: posts}, nil
}

// Profile returns a user's view record together with their assembled feed.
func (s *PostService) Profile(viewerID, userID int) (*query.ProfileQueryResult, error) {
	user := s.userRepo.FindByID(userID)
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	authored := s.postRepo.ListByUser(userID)
	posts := AssembleFeed(authored, s.userRepo.FindByID, viewerID, s.now())

	return &query.ProfileQueryResult{
		User:         mapper.NewUserResultFromEntity(user),
		Posts:        posts,
		IsOwnProfile: viewerID == userID,
		PostCount:    len(authored),
	}, nil
}
