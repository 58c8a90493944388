// Package session implements the admin auth gate and the per-session view
// router. The gate is a two-state machine (locked/unlocked) keyed on a
// shared secret. The secret ships in configuration with a well-known
// default and is visible to anyone who can read the deployment; it is a
// cosmetic gate for a personal site, not a security boundary.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"devfolio/models"
)

var (
	// ErrUnknownSession is returned for tokens this process never issued
	// (or that belonged to a previous process; sessions are not persisted).
	ErrUnknownSession = errors.New("unknown session")
	// ErrInvalidPassword is returned on a failed login attempt. The
	// session stays locked and its error flag is set.
	ErrInvalidPassword = errors.New("invalid password")
)

// Session is one browser session's transient state.
type Session struct {
	Token         string
	View          models.View
	Authenticated bool
	LoginError    bool
}

// Manager owns all live sessions. State is in-memory only and dies with
// the process, matching the reset-on-reload behavior of the frontend.
type Manager struct {
	mu       sync.Mutex
	password string
	sessions map[string]*Session
}

// NewManager creates a manager that unlocks sessions against password.
func NewManager(password string) *Manager {
	return &Manager{
		password: password,
		sessions: make(map[string]*Session),
	}
}

// Begin starts a fresh session: view home, gate locked.
func (m *Manager) Begin() (Session, error) {
	token, err := newToken()
	if err != nil {
		return Session{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess := &Session{Token: token, View: models.ViewHome}
	m.sessions[token] = sess
	return *sess, nil
}

// Get returns a copy of the session for token.
func (m *Manager) Get(token string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// Login attempts the locked -> unlocked transition. A mismatch leaves the
// gate locked and sets the error flag; the flag is cleared again at the
// start of every attempt. There is no lockout and no rate limit.
func (m *Manager) Login(token, password string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return Session{}, ErrUnknownSession
	}

	sess.LoginError = false
	if password != m.password {
		sess.LoginError = true
		return *sess, ErrInvalidPassword
	}

	sess.Authenticated = true
	return *sess, nil
}

// Logout fires unlocked -> locked and routes the session back home. It is
// idempotent: logging out a locked session just resets it.
func (m *Manager) Logout(token string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return Session{}, ErrUnknownSession
	}

	sess.Authenticated = false
	sess.LoginError = false
	sess.View = models.ViewHome
	return *sess, nil
}

// Navigate switches the session to another view. Reaching admin is allowed
// while locked (that is how the hidden entry paths land here), but the
// caller must render the login form until the gate opens.
func (m *Manager) Navigate(token string, view models.View) (Session, error) {
	switch view {
	case models.ViewHome, models.ViewPortfolio, models.ViewAdmin:
	default:
		return Session{}, fmt.Errorf("unknown view %q", view)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return Session{}, ErrUnknownSession
	}

	sess.View = view
	return *sess, nil
}

// Response shapes a session for the wire. RequiresLogin tells the
// frontend to show the login form instead of the admin content.
func Response(sess Session, includeToken bool) models.SessionResponse {
	resp := models.SessionResponse{
		View:          sess.View,
		Authenticated: sess.Authenticated,
		LoginError:    sess.LoginError,
		RequiresLogin: sess.View == models.ViewAdmin && !sess.Authenticated,
	}
	if includeToken {
		resp.Token = sess.Token
	}
	return resp
}

// newToken returns a URL-safe random session token with 256 bits of entropy.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
