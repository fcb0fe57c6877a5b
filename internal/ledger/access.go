package ledger

import "fmt"

// AccessControl is the explicit role table: a fixed owner plus a moderator
// set. It is a plain value so tests can build independent instances with
// distinct role tables.
type AccessControl struct {
	owner      Identity
	moderators map[Identity]bool
}

// NewAccessControl builds a role table owned by the given identity. The
// owner starts out as a moderator.
func NewAccessControl(owner Identity) *AccessControl {
	return &AccessControl{
		owner:      owner,
		moderators: map[Identity]bool{owner: true},
	}
}

func (a *AccessControl) Owner() Identity { return a.owner }

func (a *AccessControl) IsModerator(id Identity) bool {
	return a.moderators[id]
}

// Grant adds target to the moderator set. Duplicate grants are a state
// conflict, not a no-op, so callers can tell the two apart.
func (a *AccessControl) Grant(target Identity) error {
	if target == 0 {
		return fmt.Errorf("%w: zero target identity", ErrValidation)
	}
	if a.moderators[target] {
		return fmt.Errorf("%w: %d is already a moderator", ErrStateConflict, target)
	}
	a.moderators[target] = true
	return nil
}

// Revoke removes target from the moderator set. The owner's moderator
// status is not revocable through this path.
func (a *AccessControl) Revoke(target Identity) error {
	if target == 0 {
		return fmt.Errorf("%w: zero target identity", ErrValidation)
	}
	if target == a.owner {
		return fmt.Errorf("%w: cannot revoke the owner", ErrStateConflict)
	}
	if !a.moderators[target] {
		return fmt.Errorf("%w: %d is not a moderator", ErrStateConflict, target)
	}
	delete(a.moderators, target)
	return nil
}
