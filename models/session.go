package models

import "time"

// Session represents the single authenticated identity of the running
// process. It is a value type carried explicitly by callers rather than
// an ambient global, so every authorization-sensitive operation receives
// the session it should act on.
//
// Session holds a copy of the Account taken at login (or restore) time.
// The copy is NOT refreshed when the underlying account is later mutated:
// a deactivated or deleted account keeps its stale session alive until
// logout. This mirrors the legacy data format's behavior and is preserved
// deliberately.
// Only the Account snapshot is persisted (as a bare Account JSON object,
// matching the legacy session pointer layout); LoggedInAt is process-local.
type Session struct {
	// Account is the snapshot of the account active at login time.
	Account Account

	// LoggedInAt is the moment the session was established in this
	// process. Restored sessions get the restore time, not the time of
	// the original login.
	LoggedInAt time.Time
}

// ID returns the identifier of the session's account snapshot.
func (s Session) ID() string {
	return s.Account.ID
}

// HasPermission reports whether the session may perform the named
// capability. The current model collapses to "is the session admin":
// no finer-grained capability registry exists yet.
func (s Session) HasPermission(capability string) bool {
	return s.Account.IsAdmin()
}
