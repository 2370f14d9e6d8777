// Package session holds the authenticated identity for the running client.
// The cart is entirely gated on it: no identity, no cart.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

// Authenticator is the login surface of the backend.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.Credentials, error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface. It
// also breaks the construction cycle between the HTTP client (which needs
// the session's token) and the session (which needs the client to log in).
type AuthenticatorFunc func(ctx context.Context, email, password string) (*domain.Credentials, error)

func (f AuthenticatorFunc) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	return f(ctx, email, password)
}

// Manager owns the current identity and bearer token. Listeners registered
// with OnChange fire on every transition: none→some, some→none, and
// some→different identity.
type Manager struct {
	mu        sync.RWMutex
	auth      Authenticator
	current   *domain.Identity
	token     string
	expiresAt time.Time
	listeners []func(*domain.Identity)
}

func NewManager(auth Authenticator) *Manager {
	return &Manager{auth: auth}
}

// Login authenticates and installs the returned identity.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	creds, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	identity := &domain.Identity{
		UserID: creds.UserID,
		Email:  email,
		Role:   creds.Role,
	}
	m.install(identity, creds.Token)
	return identity, nil
}

// Logout discards the identity and token.
func (m *Manager) Logout() {
	m.install(nil, "")
}

// Set installs an identity directly, bypassing the backend. Used by tests
// and by tooling that already holds a token.
func (m *Manager) Set(identity *domain.Identity, token string) {
	m.install(identity, token)
}

func (m *Manager) install(identity *domain.Identity, token string) {
	m.mu.Lock()
	m.current = identity
	m.token = token
	m.expiresAt = tokenExpiry(token)
	listeners := make([]func(*domain.Identity), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	// Fired outside the lock so listeners may read the session back.
	for _, fn := range listeners {
		fn(identity)
	}
}

// Current returns the active identity, or nil for anonymous.
func (m *Manager) Current() *domain.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	identity := *m.current
	return &identity
}

// Token returns the bearer token for outgoing requests, "" when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Expired reports whether the token carried an exp claim that has passed.
// Tokens without a readable expiry never report expired.
func (m *Manager) Expired() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.expiresAt.IsZero() && time.Now().After(m.expiresAt)
}

// OnChange registers a listener for identity transitions.
func (m *Manager) OnChange(fn func(*domain.Identity)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// tokenExpiry reads the exp claim without verifying the signature: the
// client holds no key, it only needs to know when to ask for a fresh login.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
