package state

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"fitcoach/client/internal/api"
	"fitcoach/client/internal/domain"
	"fitcoach/client/internal/session"
)

// recorder captures notifications so tests can assert on what the user saw.
type recorder struct {
	successes []string
	errors    []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Error(msg string)   { r.errors = append(r.errors, msg) }

func (r *recorder) count(msg string) int {
	n := 0
	for _, s := range r.successes {
		if s == msg {
			n++
		}
	}
	return n
}

type stubSessionBackend struct {
	token string
	user  domain.User
}

func (s *stubSessionBackend) Login(context.Context, string, string) (*api.LoginResponse, error) {
	return &api.LoginResponse{Token: s.token, User: s.user}, nil
}

func (s *stubSessionBackend) GetUser(context.Context, int64) (*domain.User, error) {
	user := s.user
	return &user, nil
}

// newSession returns a logged-in session manager holding the given identity.
func newSession(t *testing.T, role string, identity domain.User) *session.Manager {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"nameid": "42",
		"role":   role,
		"exp":    now.Add(time.Hour).Unix(),
		"iat":    now.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	store, err := session.NewKeyStore(t.TempDir())
	require.NoError(t, err)
	mgr := session.NewManager(&stubSessionBackend{token: token, user: identity}, store, nil)
	require.NoError(t, mgr.Login(context.Background(), "t@example.com", "pw"))
	return mgr
}
