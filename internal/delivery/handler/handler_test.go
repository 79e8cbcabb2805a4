package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"linkedpro/internal/application/command"
	"linkedpro/internal/application/query"
	"linkedpro/internal/application/services"
	"linkedpro/internal/delivery/middleware"
	"linkedpro/internal/infrastructure"
	"linkedpro/internal/infrastructure/memory"
	"linkedpro/internal/session"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	userRepo := memory.NewUserRepository(memory.SeedUsers()...)
	postRepo := memory.NewPostRepository(memory.SeedPosts()...)
	jwtService := infrastructure.NewJWTService("test-secret", time.Hour)
	sessions := session.NewRegistry()
	logger := zap.NewNop()

	users := services.NewUserService(userRepo, jwtService, sessions, logger)
	posts := services.NewPostService(postRepo, userRepo, logger)

	limiter := infrastructure.NewRateLimiter(1000, 1000)
	t.Cleanup(limiter.Stop)

	e := echo.New()
	h := NewHandler(users, posts, logger)
	h.Register(e,
		middleware.Auth(jwtService, sessions),
		middleware.RateLimit(limiter))
	return e
}

func doJSON(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/login", "", command.LoginUserCommand{
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result command.LoginUserCommandResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestLogin(t *testing.T) {
	e := newTestServer(t)

	token := loginAs(t, e, "john@example.com", "password123")
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/login", "", command.LoginUserCommand{
		Email:    "john@example.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var envelope struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "auth", envelope.Error.Kind)
	assert.Equal(t, "invalid credentials", envelope.Error.Message)
}

func TestFeedRequiresAuth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/feed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFeedReturnsSeedPostsNewestFirst(t *testing.T) {
	e := newTestServer(t)
	token := loginAs(t, e, "john@example.com", "password123")

	rec := doJSON(e, http.MethodGet, "/api/feed", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed query.FeedQueryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed.Posts, 5)
	assert.Equal(t, 1, feed.Posts[0].ID)
	assert.Equal(t, 5, feed.Posts[4].ID)
	assert.Equal(t, "John Doe", feed.Posts[0].AuthorName)
}

func TestRegisterCreatePostAndLike(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register", "", command.RegisterUserCommand{
		Name:     "Alice Brown",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered command.RegisterUserCommandResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.Equal(t, 4, registered.User.ID)
	token := registered.Token

	rec = doJSON(e, http.MethodPost, "/api/posts", token, command.CreatePostCommand{
		Content: "Hello from Alice!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created command.CreatePostCommandResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 6, created.Post.ID)
	assert.Equal(t, "just now", created.Post.TimeAgo)

	rec = doJSON(e, http.MethodPost, "/api/posts/3/like", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var toggled command.ToggleLikeCommandResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.True(t, toggled.Liked)
	assert.Equal(t, 16, toggled.Post.Likes)
	assert.True(t, toggled.Post.IsLikedByMe)

	rec = doJSON(e, http.MethodPost, "/api/posts/3/like", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.False(t, toggled.Liked)
	assert.Equal(t, 15, toggled.Post.Likes)
}

func TestCreatePostValidation(t *testing.T) {
	e := newTestServer(t)
	token := loginAs(t, e, "john@example.com", "password123")

	rec := doJSON(e, http.MethodPost, "/api/posts", token, command.CreatePostCommand{Content: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error struct {
			Kind   string            `json:"kind"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "validation", envelope.Error.Kind)
	assert.Equal(t, "Please enter some content", envelope.Error.Fields["content"])
}

func TestLikeUnknownPost(t *testing.T) {
	e := newTestServer(t)
	token := loginAs(t, e, "john@example.com", "password123")

	rec := doJSON(e, http.MethodPost, "/api/posts/99/like", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileAndUpdate(t *testing.T) {
	e := newTestServer(t)
	token := loginAs(t, e, "john@example.com", "password123")

	rec := doJSON(e, http.MethodGet, "/api/profile/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile query.ProfileQueryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.True(t, profile.IsOwnProfile)
	assert.Equal(t, 2, profile.PostCount)

	rec = doJSON(e, http.MethodPut, "/api/profile", token, command.UpdateProfileCommand{
		Name:  "Johnny Doe",
		Email: "johnny@example.com",
		Bio:   "updated",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// The edit is visible on the profile of another viewer immediately.
	sarahToken := loginAs(t, e, "sarah@example.com", "password123")
	rec = doJSON(e, http.MethodGet, "/api/profile/1", sarahToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Johnny Doe", profile.User.Name)
	assert.False(t, profile.IsOwnProfile)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	e := newTestServer(t)
	token := loginAs(t, e, "john@example.com", "password123")

	rec := doJSON(e, http.MethodPut, "/api/profile", token, command.UpdateProfileCommand{
		Name:  "John Doe",
		Email: "sarah@example.com",
		Bio:   "",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSessionAndNavigate(t *testing.T) {
	e := newTestServer(t)
	token := loginAs(t, e, "mike@example.com", "password123")

	rec := doJSON(e, http.MethodGet, "/api/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sess query.SessionQueryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, "Mike Chen", sess.User.Name)
	assert.Equal(t, session.RouteHome, sess.Route)

	rec = doJSON(e, http.MethodPost, "/api/navigate", token, command.NavigateCommand{Route: session.RouteProfile})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/session", token, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, session.RouteProfile, sess.Route)
	// Navigating to a profile with no target defaults to your own.
	assert.Equal(t, 3, sess.ContextID)

	// Unknown routes land on home.
	rec = doJSON(e, http.MethodPost, "/api/navigate", token, command.NavigateCommand{Route: "no-such-page"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodGet, "/api/session", token, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, session.RouteHome, sess.Route)
}

func TestLogoutRevokesToken(t *testing.T) {
	e := newTestServer(t)
	token := loginAs(t, e, "john@example.com", "password123")

	rec := doJSON(e, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/feed", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRateLimit(t *testing.T) {
	userRepo := memory.NewUserRepository(memory.SeedUsers()...)
	postRepo := memory.NewPostRepository()
	jwtService := infrastructure.NewJWTService("test-secret", time.Hour)
	sessions := session.NewRegistry()
	logger := zap.NewNop()

	limiter := infrastructure.NewRateLimiter(1, 2)
	t.Cleanup(limiter.Stop)

	e := echo.New()
	h := NewHandler(
		services.NewUserService(userRepo, jwtService, sessions, logger),
		services.NewPostService(postRepo, userRepo, logger),
		logger)
	h.Register(e,
		middleware.Auth(jwtService, sessions),
		middleware.RateLimit(limiter))

	body := command.LoginUserCommand{Email: "john@example.com", Password: "wrong"}
	assert.Equal(t, http.StatusUnauthorized, doJSON(e, http.MethodPost, "/api/auth/login", "", body).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(e, http.MethodPost, "/api/auth/login", "", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, doJSON(e, http.MethodPost, "/api/auth/login", "", body).Code)
}
