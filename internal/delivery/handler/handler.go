package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"linkedpro/internal/application/command"
	"linkedpro/internal/application/interfaces"
	"linkedpro/internal/application/query"
	"linkedpro/internal/delivery/middleware"
	"linkedpro/internal/domain"
	"linkedpro/internal/session"
)

// Handler is the HTTP view boundary: it decodes user intents into commands,
// dispatches them to the services and encodes the results.
type Handler struct {
	users  interfaces.UserService
	posts  interfaces.PostService
	logger *zap.Logger
}

func NewHandler(users interfaces.UserService, posts interfaces.PostService, logger *zap.Logger) *Handler {
	return &Handler{users: users, posts: posts, logger: logger}
}

// Register wires every route. Credential endpoints sit behind the rate
// limiter; everything else requires a live session.
func (h *Handler) Register(e *echo.Echo, auth echo.MiddlewareFunc, loginLimit echo.MiddlewareFunc) {
	api := e.Group("/api")
	api.POST("/auth/register", h.RegisterUser, loginLimit)
	api.POST("/auth/login", h.Login, loginLimit)

	authed := api.Group("", auth)
	authed.POST("/auth/logout", h.Logout)
	authed.GET("/session", h.Session)
	authed.POST("/navigate", h.Navigate)
	authed.GET("/feed", h.Feed)
	authed.POST("/posts", h.CreatePost)
	authed.POST("/posts/:id/like", h.ToggleLike)
	authed.GET("/profile/:id", h.Profile)
	authed.PUT("/profile", h.UpdateProfile)
}

func (h *Handler) RegisterUser(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return h.respondError(c, domain.NewValidationError("invalid request body"))
	}

	result, err := h.users.Register(&cmd)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return h.respondError(c, domain.NewValidationError("invalid request body"))
	}

	result, err := h.users.Login(&cmd)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Logout(c echo.Context) error {
	h.users.Logout(middleware.CurrentTokenID(c))
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Session(c echo.Context) error {
	result, err := h.users.FindUserByID(middleware.CurrentUserID(c))
	if err != nil {
		return h.respondError(c, err)
	}

	route, contextID := middleware.CurrentSession(c).Route()
	return c.JSON(http.StatusOK, query.SessionQueryResult{
		User:      result.User,
		Route:     route,
		ContextID: contextID,
	})
}

func (h *Handler) Navigate(c echo.Context) error {
	var cmd command.NavigateCommand
	if err := c.Bind(&cmd); err != nil {
		return h.respondError(c, domain.NewValidationError("invalid request body"))
	}

	// Viewing a profile with no explicit target means your own.
	if cmd.Route == session.RouteProfile && cmd.ContextID == 0 {
		cmd.ContextID = middleware.CurrentUserID(c)
	}

	sess := middleware.CurrentSession(c)
	sess.SetRoute(cmd.Route, cmd.ContextID)

	route, contextID := sess.Route()
	return c.JSON(http.StatusOK, command.NavigateCommand{Route: route, ContextID: contextID})
}

func (h *Handler) Feed(c echo.Context) error {
	result, err := h.posts.Feed(middleware.CurrentUserID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) CreatePost(c echo.Context) error {
	var cmd command.CreatePostCommand
	if err := c.Bind(&cmd); err != nil {
		return h.respondError(c, domain.NewValidationError("invalid request body"))
	}

	result, err := h.posts.CreatePost(middleware.CurrentUserID(c), &cmd)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) ToggleLike(c echo.Context) error {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.respondError(c, domain.NewValidationError("invalid post id"))
	}

	result, err := h.posts.ToggleLike(postID, middleware.CurrentUserID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Profile(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.respondError(c, domain.NewValidationError("invalid user id"))
	}

	result, err := h.posts.Profile(middleware.CurrentUserID(c), userID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var cmd command.UpdateProfileCommand
	if err := c.Bind(&cmd); err != nil {
		return h.respondError(c, domain.NewValidationError("invalid request body"))
	}

	result, err := h.users.UpdateProfile(middleware.CurrentUserID(c), &cmd)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
