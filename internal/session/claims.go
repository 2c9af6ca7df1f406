package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"fitcoach/client/internal/domain"
)

// ErrTokenDecode means a token could not be parsed into acceptable claims.
// During rehydration this is treated as an implicit logout, not a fatal error.
var ErrTokenDecode = errors.New("failed to decode authentication token")

// Claims is the decoded token payload. The client does not verify the
// signature; the backend is the verifier, and these fields are trusted only
// because the backend issued them.
type Claims struct {
	NameID string      `json:"nameid"`
	Role   domain.Role `json:"role"`
	Email  string      `json:"email"`
	jwt.RegisteredClaims
}

// SubjectID returns the account id the token was issued for.
func (c *Claims) SubjectID() (int64, error) {
	return strconv.ParseInt(c.NameID, 10, 64)
}

// IsAdmin reports whether the token carries the admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}

// DecodeClaims parses a token without signature verification and validates the
// fields the client actually relies on: a numeric subject, a role, and an
// expiry that has not passed.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenDecode, err)
	}
	if claims.NameID == "" || claims.Role == "" {
		return nil, fmt.Errorf("%w: missing subject or role claim", ErrTokenDecode)
	}
	if _, err := claims.SubjectID(); err != nil {
		return nil, fmt.Errorf("%w: subject is not an account id", ErrTokenDecode)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: token has expired", ErrTokenDecode)
	}
	return claims, nil
}
