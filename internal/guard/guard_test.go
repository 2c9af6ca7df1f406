package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitcoach/client/internal/session"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		state    session.State
		zone     Zone
		allowed  bool
		redirect Zone
	}{
		{"anonymous reaches public", session.Anonymous, ZonePublic, true, ZonePublic},
		{"anonymous blocked from user", session.Anonymous, ZoneUser, false, ZonePublic},
		{"anonymous blocked from admin", session.Anonymous, ZoneAdmin, false, ZonePublic},

		{"user redirected from public", session.User, ZonePublic, false, ZoneUser},
		{"user reaches user", session.User, ZoneUser, true, ZoneUser},
		{"user blocked from admin", session.User, ZoneAdmin, false, ZoneUser},

		{"admin redirected from public", session.Admin, ZonePublic, false, ZoneAdmin},
		{"admin redirected from user", session.Admin, ZoneUser, false, ZoneAdmin},
		{"admin reaches admin", session.Admin, ZoneAdmin, true, ZoneAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Resolve(tt.state, tt.zone)
			assert.Equal(t, tt.allowed, decision.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.redirect, decision.Redirect)
			}
		})
	}
}

func TestResolve_NoPrivilegedZoneForLowerStates(t *testing.T) {
	// An anonymous session must never resolve into the user or admin subtree,
	// and a user session must never resolve into the admin subtree.
	for _, zone := range []Zone{ZoneUser, ZoneAdmin} {
		assert.False(t, Resolve(session.Anonymous, zone).Allowed)
	}
	assert.False(t, Resolve(session.User, ZoneAdmin).Allowed)
}
