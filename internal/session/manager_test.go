package session

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitcoach/client/internal/api"
	"fitcoach/client/internal/domain"
)

type mockBackend struct {
	loginFunc   func(ctx context.Context, email, password string) (*api.LoginResponse, error)
	getUserFunc func(ctx context.Context, id int64) (*domain.User, error)
}

func (m *mockBackend) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockBackend) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return m.getUserFunc(ctx, id)
}

func newTestManager(t *testing.T, backend Backend) (*Manager, *KeyStore) {
	t.Helper()
	store, err := NewKeyStore(t.TempDir())
	require.NoError(t, err)
	return NewManager(backend, store, nil), store
}

// assertInvariant checks that claims are held exactly when a token is held.
func assertInvariant(t *testing.T, m *Manager) {
	t.Helper()
	if m.Token() == "" {
		assert.Nil(t, m.Claims())
	} else {
		assert.NotNil(t, m.Claims())
	}
}

func TestManager_LoginSuccess(t *testing.T) {
	token := signToken(t, validClaims("Trainee"))
	backend := &mockBackend{
		loginFunc: func(ctx context.Context, email, password string) (*api.LoginResponse, error) {
			assert.Equal(t, "trainee@example.com", email)
			return &api.LoginResponse{Token: token, User: domain.User{ID: 42, FirstName: "Dana"}}, nil
		},
	}
	m, store := newTestManager(t, backend)

	require.NoError(t, m.Login(context.Background(), "trainee@example.com", "hunter2"))

	assert.Equal(t, token, m.Token())
	require.NotNil(t, m.Claims())
	assert.Equal(t, domain.Role("Trainee"), m.Claims().Role)
	require.NotNil(t, m.Identity())
	assert.Equal(t, "Dana", m.Identity().FirstName)
	assert.Equal(t, User, m.State())
	assertInvariant(t, m)

	persisted, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, token, persisted)
}

func TestManager_LoginAdminRole(t *testing.T) {
	token := signToken(t, validClaims("Admin"))
	backend := &mockBackend{
		loginFunc: func(ctx context.Context, email, password string) (*api.LoginResponse, error) {
			return &api.LoginResponse{Token: token, User: domain.User{ID: 1}}, nil
		},
	}
	m, _ := newTestManager(t, backend)

	require.NoError(t, m.Login(context.Background(), "coach@example.com", "pw"))
	assert.Equal(t, Admin, m.State())
	assert.True(t, m.IsAdmin())
}

func TestManager_LoginInvalidCredentials(t *testing.T) {
	backend := &mockBackend{
		loginFunc: func(ctx context.Context, email, password string) (*api.LoginResponse, error) {
			return nil, &api.RemoteError{Status: http.StatusUnauthorized, Category: api.CategoryValidation, Message: "Invalid email or password"}
		},
	}
	m, store := newTestManager(t, backend)

	err := m.Login(context.Background(), "trainee@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())

	// The failed attempt leaves no session behind.
	assert.Equal(t, Anonymous, m.State())
	assert.Nil(t, m.Identity())
	assertInvariant(t, m)
	persisted, _ := store.Get(KeyToken)
	assert.Empty(t, persisted)
}

func TestManager_LoginUndecodableToken(t *testing.T) {
	backend := &mockBackend{
		loginFunc: func(ctx context.Context, email, password string) (*api.LoginResponse, error) {
			return &api.LoginResponse{Token: "garbage", User: domain.User{ID: 42}}, nil
		},
	}
	m, _ := newTestManager(t, backend)

	err := m.Login(context.Background(), "trainee@example.com", "pw")
	assert.ErrorIs(t, err, ErrTokenDecode)
	assert.Equal(t, Anonymous, m.State())
	assertInvariant(t, m)
}

func TestManager_RehydrateSuccess(t *testing.T) {
	token := signToken(t, validClaims("Trainee"))
	backend := &mockBackend{
		getUserFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			assert.Equal(t, int64(42), id)
			return &domain.User{ID: 42, FirstName: "Dana"}, nil
		},
	}
	m, store := newTestManager(t, backend)
	require.NoError(t, store.Set(KeyToken, token))

	require.NoError(t, m.Rehydrate(context.Background()))
	assert.Equal(t, User, m.State())
	require.NotNil(t, m.Identity())
	assert.Equal(t, "Dana", m.Identity().FirstName)
	assertInvariant(t, m)
}

func TestManager_RehydrateNoToken(t *testing.T) {
	m, _ := newTestManager(t, &mockBackend{})
	require.NoError(t, m.Rehydrate(context.Background()))
	assert.Equal(t, Anonymous, m.State())
	assertInvariant(t, m)
}

func TestManager_RehydrateRejectedToken(t *testing.T) {
	token := signToken(t, validClaims("Trainee"))
	backend := &mockBackend{
		getUserFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, &api.RemoteError{Status: http.StatusUnauthorized, Category: api.CategoryValidation, Message: "Token has expired"}
		},
	}
	m, store := newTestManager(t, backend)
	require.NoError(t, store.Set(KeyToken, token))

	// The 401 is swallowed: the user just lands in the anonymous state.
	require.NoError(t, m.Rehydrate(context.Background()))
	assert.Equal(t, Anonymous, m.State())
	assert.Empty(t, m.Token())
	assertInvariant(t, m)

	persisted, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.Empty(t, persisted, "persisted token must be wiped")
}

func TestManager_RehydrateUndecodableToken(t *testing.T) {
	m, store := newTestManager(t, &mockBackend{})
	require.NoError(t, store.Set(KeyToken, "corrupted"))

	require.NoError(t, m.Rehydrate(context.Background()))
	assert.Equal(t, Anonymous, m.State())
	persisted, _ := store.Get(KeyToken)
	assert.Empty(t, persisted)
	assertInvariant(t, m)
}

func TestManager_LogoutIdempotent(t *testing.T) {
	token := signToken(t, validClaims("Trainee"))
	backend := &mockBackend{
		loginFunc: func(ctx context.Context, email, password string) (*api.LoginResponse, error) {
			return &api.LoginResponse{Token: token, User: domain.User{ID: 42}}, nil
		},
	}
	m, store := newTestManager(t, backend)
	require.NoError(t, m.Login(context.Background(), "a@b.c", "pw"))

	m.Logout()
	assert.Equal(t, Anonymous, m.State())
	assert.Nil(t, m.Identity())
	assertInvariant(t, m)
	persisted, _ := store.Get(KeyToken)
	assert.Empty(t, persisted)

	m.Logout()
	assert.Equal(t, Anonymous, m.State())
	assertInvariant(t, m)
}

func TestManager_ReloadReplacesIdentityWholesale(t *testing.T) {
	token := signToken(t, validClaims("Trainee"))
	backend := &mockBackend{
		loginFunc: func(ctx context.Context, email, password string) (*api.LoginResponse, error) {
			return &api.LoginResponse{Token: token, User: domain.User{ID: 42, City: "Haifa"}}, nil
		},
	}
	m, _ := newTestManager(t, backend)
	require.NoError(t, m.Login(context.Background(), "a@b.c", "pw"))

	m.Reload(&domain.User{ID: 42, City: "Tel Aviv"})
	assert.Equal(t, "Tel Aviv", m.Identity().City)
}

func TestManager_ReloadIgnoredWhenAnonymous(t *testing.T) {
	m, _ := newTestManager(t, &mockBackend{})
	m.Reload(&domain.User{ID: 42})
	assert.Nil(t, m.Identity())
	assertInvariant(t, m)
}

func TestManager_ThemePreference(t *testing.T) {
	m, _ := newTestManager(t, &mockBackend{})
	assert.Empty(t, m.Theme())
	require.NoError(t, m.SetTheme("dark"))
	assert.Equal(t, "dark", m.Theme())

	// Theme survives logout; only the token key is wiped.
	m.Logout()
	assert.Equal(t, "dark", m.Theme())
}
