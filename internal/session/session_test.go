package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedpro/internal/infrastructure/memory"
)

func TestSessionLoginLogout(t *testing.T) {
	s := New()
	route, _ := s.Route()
	assert.Equal(t, RouteLogin, route)
	assert.Equal(t, 0, s.UserID())

	s.Login(1)
	assert.Equal(t, 1, s.UserID())
	route, _ = s.Route()
	assert.Equal(t, RouteHome, route)

	s.Logout()
	assert.Equal(t, 0, s.UserID())
	route, _ = s.Route()
	assert.Equal(t, RouteLogin, route)
}

func TestSetRouteFallsBackToHome(t *testing.T) {
	s := New()
	s.Login(1)

	s.SetRoute(RouteProfile, 3)
	route, contextID := s.Route()
	assert.Equal(t, RouteProfile, route)
	assert.Equal(t, 3, contextID)

	s.SetRoute("no-such-page", 0)
	route, _ = s.Route()
	assert.Equal(t, RouteHome, route)
}

func TestCurrentUserResolvesLiveRecord(t *testing.T) {
	users := memory.NewUserRepository(memory.SeedUsers()...)
	s := New()
	s.Login(1)

	current := s.CurrentUser(users)
	require.NotNil(t, current)
	assert.Equal(t, "John Doe", current.Name)

	// A profile edit is visible through the session immediately: the
	// session holds an id, never a detached copy.
	john := users.FindByID(1)
	john.UpdateProfile("Johnny Doe", "johnny@example.com", john.Bio)
	users.Update(john)

	current = s.CurrentUser(users)
	require.NotNil(t, current)
	assert.Equal(t, "Johnny Doe", current.Name)

	s.Logout()
	assert.Nil(t, s.CurrentUser(users))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	s := r.Start("token-1", 2)
	assert.Equal(t, 2, s.UserID())
	assert.Equal(t, 1, r.Len())
	assert.Same(t, s, r.Get("token-1"))
	assert.Nil(t, r.Get("token-2"))

	r.End("token-1")
	assert.Nil(t, r.Get("token-1"))
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, s.UserID())
}
