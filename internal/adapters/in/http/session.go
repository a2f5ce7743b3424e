package http

import (
	"sync"
	"time"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"

	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// Session represents an authenticated browser session.
// PartnerID is set only for PARTNER-role sessions.
type Session struct {
	AccountID kernel.ID
	Username  string
	Role      kernel.Role
	PartnerID *kernel.ID
	ExpiresAt time.Time
}

// Actor converts the session identity into a domain actor.
// Sessions that carry neither a manager role nor a partner identity are
// rejected rather than granted any privileges.
func (s Session) Actor() (kernel.Actor, error) {
	switch {
	case s.Role == kernel.RolePartner && s.PartnerID != nil:
		return kernel.NewPartnerActor(*s.PartnerID)
	case s.Role == kernel.RoleManager:
		return kernel.NewManagerActor(), nil
	default:
		return kernel.Actor{}, errs.NewAuthError("session carries no usable identity")
	}
}

// SessionStore keeps active sessions in memory keyed by opaque tokens.
// Tokens are random UUIDs and expire after the configured TTL; a periodic
// cleanup job removes expired entries.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

// NewSessionStore creates a session store with the given session lifetime.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

// Create registers a new session and returns its opaque token.
func (s *SessionStore) Create(accountID kernel.ID, username string, role kernel.Role, partnerID *kernel.ID) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = Session{
		AccountID: accountID,
		Username:  username,
		Role:      role,
		PartnerID: partnerID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	return token
}

// Get returns the session behind a token. Expired sessions are treated
// as absent.
func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(session.ExpiresAt) {
		return Session{}, false
	}

	return session, true
}

// Delete removes a session, ending it immediately.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// RemoveExpired drops all expired sessions and reports how many were removed.
func (s *SessionStore) RemoveExpired() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}

	return removed
}
