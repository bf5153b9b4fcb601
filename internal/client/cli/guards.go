package cli

import "github.com/mkorolev/focusdeck/internal/client/models"

// Decision is the outcome of a route guard check.
type Decision int

const (
	// Allow admits the caller.
	Allow Decision = iota
	// Wait means the session is still being restored; the caller should be
	// held in a neutral state rather than admitted or turned away.
	Wait
	// Deny turns the caller away.
	Deny
)

// sessionState is the slice of the session store the guards need.
type sessionState interface {
	IsAuthenticated() bool
	Verifying() bool
	Current() (*models.User, string)
}

// publicOnly admits only anonymous visitors. Authenticated users are denied
// (they belong on the signed-in surface). While the saved session is being
// verified the outcome is unknown, so callers wait.
func publicOnly(s sessionState) Decision {
	if s.Verifying() {
		return Wait
	}
	if s.IsAuthenticated() {
		return Deny
	}
	return Allow
}

// requireAuth admits only authenticated users, holding callers while the
// saved session is still being verified.
func requireAuth(s sessionState) Decision {
	if s.Verifying() {
		return Wait
	}
	if !s.IsAuthenticated() {
		return Deny
	}
	return Allow
}

// requireAdmin admits only authenticated admins. It checks the restored
// user directly and does not hold callers during session restore, so an
// admin arriving before restore completes is denied rather than held.
func requireAdmin(s sessionState) Decision {
	user, _ := s.Current()
	if user == nil || !user.IsAdmin {
		return Deny
	}
	return Allow
}
