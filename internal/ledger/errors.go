package ledger

import "errors"

// Error kinds. Every rejection wraps exactly one of these so callers can
// branch with errors.Is; a rejected operation performs no state write.
var (
	// ErrValidation - malformed input: empty or oversized content, zero
	// identity, out-of-range batch size, comment cap reached.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound - the id was never allocated.
	ErrNotFound = errors.New("not found")

	// ErrInactive - the id exists but the item has been tombstoned.
	ErrInactive = errors.New("inactive")

	// ErrStateConflict - vote/revoke state machine violation, self-vote, or
	// duplicate moderator grant/revoke.
	ErrStateConflict = errors.New("state conflict")

	// ErrUnauthorized - caller lacks the role the operation requires.
	ErrUnauthorized = errors.New("unauthorized")
)
