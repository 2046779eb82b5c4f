package domain

// Actor is the user behind an interaction. Supplied by the platform per
// event; never persisted by this system.
type Actor struct {
	ID          string
	DisplayName string
	RoleIDs     []string
}

// HasRole reports whether the actor currently holds the given role.
func (a Actor) HasRole(roleID string) bool {
	for _, id := range a.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// Role is a resolved server role.
type Role struct {
	ID   string
	Name string
}

// ChannelRef is a lightweight reference to a platform channel.
type ChannelRef struct {
	ID   string
	Name string
}

// Mention renders the platform mention syntax for the channel.
func (c ChannelRef) Mention() string {
	return "<#" + c.ID + ">"
}
