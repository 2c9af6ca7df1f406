package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"fitcoach/client/internal/api"
	"fitcoach/client/internal/domain"
)

// State is the authentication state the rest of the client keys off.
type State int

const (
	Anonymous State = iota
	User
	Admin
)

func (s State) String() string {
	switch s {
	case User:
		return "user"
	case Admin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Backend is the slice of the API client the session manager depends on.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// Manager holds the one process-wide session: the bearer token, its decoded
// claims, and the authenticated Identity. It is the single source of truth for
// who is logged in and what role they hold. Claims are non-nil exactly when
// the token is non-empty.
type Manager struct {
	backend Backend
	store   *KeyStore
	logger  *zap.Logger

	mu       sync.RWMutex
	token    string
	claims   *Claims
	identity *domain.User
}

// NewManager creates a session manager over the given backend and durable store.
func NewManager(backend Backend, store *KeyStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{backend: backend, store: store, logger: logger}
}

// Login exchanges credentials for a session. On success the token is decoded,
// persisted, and the returned profile becomes the held Identity. On any
// failure the existing session is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.backend.Login(ctx, email, password)
	if err != nil {
		return err
	}
	claims, err := DecodeClaims(resp.Token)
	if err != nil {
		m.logger.Warn("login token rejected", zap.Error(err))
		return err
	}
	if err := m.store.Set(KeyToken, resp.Token); err != nil {
		m.logger.Warn("failed to persist token", zap.Error(err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user := resp.User
	m.token = resp.Token
	m.claims = claims
	m.identity = &user
	m.logger.Info("session established",
		zap.String("subject", claims.NameID),
		zap.String("role", string(claims.Role)))
	return nil
}

// Rehydrate restores a session from the persisted token at process start. Any
// failure along the way (absent token, decode failure, expired or rejected
// token, network error) falls back silently to the anonymous state and wipes
// the persisted token.
func (m *Manager) Rehydrate(ctx context.Context) error {
	token, err := m.store.Get(KeyToken)
	if err != nil || token == "" {
		return nil
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		m.logger.Info("persisted token rejected, clearing session", zap.Error(err))
		m.Logout()
		return nil
	}
	id, _ := claims.SubjectID()
	user, err := m.backend.GetUser(ctx, id)
	if err != nil {
		m.logger.Info("stale session cleared", zap.Error(err))
		m.Logout()
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.claims = claims
	m.identity = user
	m.logger.Info("session rehydrated",
		zap.String("subject", claims.NameID),
		zap.String("role", string(claims.Role)))
	return nil
}

// Logout clears the in-memory session and the persisted token. Idempotent.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.claims = nil
	m.identity = nil
	m.mu.Unlock()
	if err := m.store.Delete(KeyToken); err != nil {
		m.logger.Warn("failed to wipe persisted token", zap.Error(err))
	}
}

// Reload replaces the held Identity wholesale with the canonical object a
// mutation returned. Callers never merge partial fields into the old snapshot.
func (m *Manager) Reload(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return
	}
	m.identity = user
}

// Token returns the current bearer token, or "" for an anonymous session.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Claims returns the decoded claims, or nil for an anonymous session.
func (m *Manager) Claims() *Claims {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.claims
}

// Identity returns the held profile snapshot, or nil for an anonymous session.
func (m *Manager) Identity() *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity
}

// State derives the authentication state from the held claims.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch {
	case m.claims == nil:
		return Anonymous
	case m.claims.IsAdmin():
		return Admin
	default:
		return User
	}
}

// IsAdmin reports whether the current session holds the admin role.
func (m *Manager) IsAdmin() bool {
	return m.State() == Admin
}

// Theme returns the persisted theme preference, or "" when none is set.
func (m *Manager) Theme() string {
	theme, err := m.store.Get(KeyTheme)
	if err != nil {
		return ""
	}
	return theme
}

// SetTheme persists the theme preference independently of the session.
func (m *Manager) SetTheme(theme string) error {
	return m.store.Set(KeyTheme, theme)
}
