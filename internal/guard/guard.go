// Package guard gates navigation subtrees by session state. It holds no state
// of its own: every decision is a pure function of the current session and the
// requested zone.
package guard

import "fitcoach/client/internal/session"

// Zone is a navigation subtree of the client.
type Zone int

const (
	// ZonePublic holds the landing, login, and register screens.
	ZonePublic Zone = iota
	// ZoneUser holds the trainee-facing screens.
	ZoneUser
	// ZoneAdmin holds the coach-facing management screens.
	ZoneAdmin
)

func (z Zone) String() string {
	switch z {
	case ZoneUser:
		return "user"
	case ZoneAdmin:
		return "admin"
	default:
		return "public"
	}
}

// Decision is the outcome of a navigation request. When Allowed is false,
// Redirect names the zone the caller must land in instead.
type Decision struct {
	Allowed  bool
	Redirect Zone
}

// Resolve decides whether a session in the given state may enter zone.
//
// Anonymous sessions reach only the public zone. User sessions reach only the
// user zone; attempts at the public or admin zones land at the user home.
// Admin sessions reach only the admin zone; an admin session never exposes
// public or user-facing screens.
func Resolve(state session.State, zone Zone) Decision {
	var home Zone
	switch state {
	case session.User:
		home = ZoneUser
	case session.Admin:
		home = ZoneAdmin
	default:
		home = ZonePublic
	}
	if zone == home {
		return Decision{Allowed: true}
	}
	return Decision{Redirect: home}
}
