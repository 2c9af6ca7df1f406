package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitcoach/client/internal/domain"
)

// signToken builds a backend-shaped token. The signing key is irrelevant to
// the client, which never verifies signatures.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func validClaims(role string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"nameid": "42",
		"role":   role,
		"email":  "trainee@example.com",
		"iss":    "fitcoach-api",
		"aud":    "fitcoach-clients",
		"iat":    now.Unix(),
		"nbf":    now.Unix(),
		"exp":    now.Add(time.Hour).Unix(),
	}
}

func TestDecodeClaims_Valid(t *testing.T) {
	claims, err := DecodeClaims(signToken(t, validClaims("Admin")))
	require.NoError(t, err)

	id, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "trainee@example.com", claims.Email)
}

func TestDecodeClaims_TraineeRoleIsNotAdmin(t *testing.T) {
	claims, err := DecodeClaims(signToken(t, validClaims("Trainee")))
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin())
}

func TestDecodeClaims_Garbage(t *testing.T) {
	_, err := DecodeClaims("not-a-token")
	assert.ErrorIs(t, err, ErrTokenDecode)
}

func TestDecodeClaims_MissingRole(t *testing.T) {
	payload := validClaims("Admin")
	delete(payload, "role")
	_, err := DecodeClaims(signToken(t, payload))
	assert.ErrorIs(t, err, ErrTokenDecode)
}

func TestDecodeClaims_NonNumericSubject(t *testing.T) {
	payload := validClaims("Admin")
	payload["nameid"] = "not-a-number"
	_, err := DecodeClaims(signToken(t, payload))
	assert.ErrorIs(t, err, ErrTokenDecode)
}

func TestDecodeClaims_Expired(t *testing.T) {
	payload := validClaims("Trainee")
	payload["exp"] = time.Now().Add(-time.Minute).Unix()
	_, err := DecodeClaims(signToken(t, payload))
	assert.ErrorIs(t, err, ErrTokenDecode)
}

func TestDecodeClaims_MissingExpiry(t *testing.T) {
	payload := validClaims("Trainee")
	delete(payload, "exp")
	_, err := DecodeClaims(signToken(t, payload))
	assert.ErrorIs(t, err, ErrTokenDecode)
}
