package domain

import "time"

// SessionTTL is the lifetime of a freshly issued session.
const SessionTTL = 24 * time.Hour

// Session is proof that a principal logged in. The store holds at most one.
type Session struct {
	UserID    string    `json:"userId"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session's expiry is strictly before now.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// Access is the outcome of a role guard. When Allowed is false, Redirect names
// the page the caller should be sent to and Denied tells a missing session
// apart from a role mismatch.
type Access struct {
	Allowed  bool   `json:"allowed"`
	Denied   bool   `json:"denied,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

const (
	PathLogin     = "/login"
	PathAdmin     = "/admin"
	PathDashboard = "/dashboard"
)

// HomePath returns the landing page for a role.
func HomePath(r Role) string {
	if r == RoleAdmin {
		return PathAdmin
	}
	return PathDashboard
}
