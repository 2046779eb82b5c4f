package auth

import (
	"github.com/spec-kit/ticket-bot/internal/domain"
)

// IsPrivileged reports whether the actor may perform a privileged action.
// True iff the privileged role resolved and the actor currently holds it.
// An unresolvable role (nil) always denies; misconfiguration must never
// silently grant.
func IsPrivileged(actor domain.Actor, role *domain.Role) bool {
	if role == nil {
		return false
	}
	return actor.HasRole(role.ID)
}
