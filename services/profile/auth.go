package profile

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Login state lives in the key/value store under fixed keys, alongside the
// wishlists.
const (
	loginFlagKey = "isLoggedIn"
	usernameKey  = "username"
	sessionKey   = "session_id"
)

// Session describes the current login.
type Session struct {
	Username  string `json:"username"`
	SessionID string `json:"sessionId"`
}

// Login checks that username exists in the content store and persists the
// login state. There is no password; login is a name lookup.
func (s *Service) Login(ctx context.Context, username string) (*Session, error) {
	if username == "" {
		return nil, ErrUserNotFound
	}

	var user struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := s.content.Query(ctx, userExistsQuery, map[string]string{"username": username}, &user); err != nil {
		return nil, fmt.Errorf("look up user %q: %w", username, err)
	}
	if user.ID == "" {
		return nil, ErrUserNotFound
	}

	session := &Session{
		Username:  user.Name,
		SessionID: uuid.NewString(),
	}
	if err := s.kv.Set(loginFlagKey, "true"); err != nil {
		return nil, fmt.Errorf("persist login flag: %w", err)
	}
	if err := s.kv.Set(usernameKey, session.Username); err != nil {
		return nil, fmt.Errorf("persist username: %w", err)
	}
	if err := s.kv.Set(sessionKey, session.SessionID); err != nil {
		return nil, fmt.Errorf("persist session id: %w", err)
	}

	log.Printf("[profile] user %q logged in", session.Username)
	return session, nil
}

// Logout clears the persisted login state.
func (s *Service) Logout() error {
	for _, key := range []string{loginFlagKey, usernameKey, sessionKey} {
		if err := s.kv.Remove(key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}

// Session returns the persisted login, if any.
func (s *Service) Session() (*Session, bool) {
	if flag, ok := s.kv.Get(loginFlagKey); !ok || flag != "true" {
		return nil, false
	}
	username, ok := s.kv.Get(usernameKey)
	if !ok || username == "" {
		return nil, false
	}
	sessionID, _ := s.kv.Get(sessionKey)
	return &Session{Username: username, SessionID: sessionID}, true
}
