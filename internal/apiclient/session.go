package apiclient

import (
	"sync"

	"github.com/muhu-travel/backoffice-api/internal/access"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

// Session is the authenticated state of one Client. It is created by Login or
// Register and stays valid until Logout or until the server answers 401 or 403.
type Session struct {
	mu    sync.RWMutex
	token string
	user  domain.User
	valid bool
}

func newSession(token string, user domain.User) *Session {
	return &Session{
		token: token,
		user:  user,
		valid: true,
	}
}

func (s *Session) Valid() bool {
	if s == nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.valid
}

func (s *Session) Token() (string, bool) {
	if s == nil {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.valid
}

func (s *Session) User() (domain.User, bool) {
	if s == nil {
		return domain.User{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user, s.valid
}

// Can reports whether the session's role may perform action on resource.
// An invalid session can do nothing.
func (s *Session) Can(action access.Action, resource access.Resource) bool {
	user, ok := s.User()
	if !ok {
		return false
	}

	return access.Decide(user.Role, action, resource).Allowed()
}

// Affordances lists the actions to offer for resource, in create/read/update/delete order.
func (s *Session) Affordances(resource access.Resource) []access.Action {
	user, ok := s.User()
	if !ok {
		return []access.Action{}
	}

	return access.Actions(user.Role, resource)
}

func (s *Session) Invalidate() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.valid = false
}
