// Package store implements the local/remote synchronization pattern shared
// by favorites, likes, reviews and comments.  Each store pairs a MySQL
// repository (the remote side) with the local mirror and a change bus:
//
//   - Reads go remote-first for authenticated users and fall back to the
//     local mirror on any remote failure; guests read the mirror directly.
//   - Writes are attempted remotely for authenticated users, and the local
//     mirror is ALWAYS updated as well, so the mirror stays a complete
//     shadow of intent; guests write the mirror only.
//   - Every successful write publishes exactly one change signal for its
//     record kind.  Consumers re-read the whole collection per signal.
//
// Remote failures are logged and swallowed whenever the mirror can serve;
// availability is preferred over consistency here, and remote/local state
// may diverge with no reconciliation pass.
package store

import (
	"errors"
	"fmt"
	"log"
	"strconv"
)

// Validation and permission sentinels shared by the stores.  Handlers match
// these with errors.Is to pick response codes.
var (
	// ErrInvalid marks input rejected before any store write happened.
	ErrInvalid = errors.New("invalid input")
	// ErrSeedRecord marks deletion attempts against seed records, which
	// lack the user-generated identifier prefix and are never deletable.
	ErrSeedRecord = errors.New("seed records cannot be deleted")
	// ErrNotOwner marks deletion attempts by someone other than the author.
	ErrNotOwner = errors.New("not the author")
)

// GuestUserID is the author id recorded for unauthenticated sessions.
const GuestUserID = "guest"

// Session identifies the caller for a single request.  A zero UserID means
// an unauthenticated guest: remote stores receive zero calls for guests.
type Session struct {
	UserID   uint64
	Username string
	PhotoURL string
}

// Authenticated reports whether the session belongs to a signed-in user.
func (s Session) Authenticated() bool { return s.UserID != 0 }

// AuthorID is the string author identifier recorded on reviews and
// comments.
func (s Session) AuthorID() string {
	if !s.Authenticated() {
		return GuestUserID
	}
	return strconv.FormatUint(s.UserID, 10)
}

// logRemoteFailure records a swallowed remote error.  Callers continue on
// the local mirror afterwards.
func logRemoteFailure(kind, op string, err error) {
	log.Printf("store: %s %s: remote failed, using local mirror: %v", kind, op, err)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
