package session

import "sync"

// Registry maps live token ids (the jti claim) to sessions. Logout removes
// the entry, which revokes the token even before it expires.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Start creates a session for the token id with the given identity.
func (r *Registry) Start(tokenID string, userID int) *Session {
	s := New()
	s.Login(userID)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[tokenID] = s
	return s
}

// Get returns the session for the token id, or nil when revoked or unknown.
func (r *Registry) Get(tokenID string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[tokenID]
}

// End logs the session out and removes it from the registry.
func (r *Registry) End(tokenID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[tokenID]; ok {
		s.Logout()
		delete(r.sessions, tokenID)
	}
}

// Len reports how many sessions are live.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
