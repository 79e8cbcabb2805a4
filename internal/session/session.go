package session

import (
	"sync"

	"linkedpro/internal/domain/entities"
	"linkedpro/internal/domain/repositories"
)

// Route tokens the client can navigate to.
const (
	RouteLogin       = "login"
	RouteHome        = "home"
	RouteCreatePost  = "create-post"
	RouteProfile     = "profile"
	RouteEditProfile = "edit-profile"
)

var knownRoutes = map[string]bool{
	RouteLogin:       true,
	RouteHome:        true,
	RouteCreatePost:  true,
	RouteProfile:     true,
	RouteEditProfile: true,
}

// Session tracks one authenticated client: the current identity and the
// current navigation route. The identity is held as a bare user id and
// always re-resolved through the identity store, so profile edits are
// visible everywhere immediately.
type Session struct {
	mu        sync.Mutex
	userID    int
	route     string
	contextID int
}

func New() *Session {
	return &Session{route: RouteLogin}
}

// Login sets the current identity and lands the client on the home route.
func (s *Session) Login(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.route = RouteHome
	s.contextID = 0
}

// Logout clears the identity and forces the unauthenticated entry route.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = 0
	s.route = RouteLogin
	s.contextID = 0
}

// SetRoute records the current route and optional context (for example
// which profile is being viewed). Unknown tokens fall back to home.
func (s *Session) SetRoute(route string, contextID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !knownRoutes[route] {
		route = RouteHome
	}
	s.route = route
	s.contextID = contextID
}

// Route returns the current route token and context id.
func (s *Session) Route() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route, s.contextID
}

// UserID returns the current identity's id, or 0 when logged out.
func (s *Session) UserID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// CurrentUser resolves the live identity record, or nil when logged out
// or the id no longer resolves.
func (s *Session) CurrentUser(users repositories.UserRepository) *entities.User {
	id := s.UserID()
	if id == 0 {
		return nil
	}
	return users.FindByID(id)
}
