package auth

import "time"

const (
	// MaxFailedLogins is the consecutive-failure count at which an account
	// locks.
	MaxFailedLogins = 5

	// LockoutWindow is how long authentication is refused outright after the
	// account locks. Expiry is computed from the last failure timestamp;
	// there is no background reset.
	LockoutWindow = 30 * time.Minute
)

// Client-facing lockout wording.
const (
	LockedMessage     = "Account temporarily locked. Try again in 30 minutes."
	JustLockedMessage = "Too many failed attempts. Account locked for 30 minutes."
)

// Locked reports whether an account is inside its lockout window: the failed
// count reached the limit and the last failure is recent enough. A stale
// counter does not lock; the next attempt is evaluated as if open, so the
// lock expires implicitly without a reset step.
func Locked(failedCount int, lastFailedAt *time.Time, now time.Time) bool {
	if failedCount < MaxFailedLogins || lastFailedAt == nil {
		return false
	}
	return now.Sub(*lastFailedAt) < LockoutWindow
}
