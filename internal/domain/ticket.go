package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TicketChannelPrefix is prepended to every derived ticket channel name.
const TicketChannelPrefix = "ticket-"

// TicketCodePrefix is prepended to every generated report ticket code.
const TicketCodePrefix = "T"

// TicketChannelName derives the channel name for an actor's ticket: the
// display name lowercased with spaces replaced by hyphens, under a fixed
// prefix. Punctuation and other special characters pass through unchanged,
// so distinct users can collide on the same slug.
func TicketChannelName(displayName string) string {
	base := strings.ReplaceAll(strings.ToLower(displayName), " ", "-")
	return TicketChannelPrefix + base
}

// NewTicketCode generates a ticket code from the given time. Codes are
// unique only down to the second; two submissions within the same second
// share a code.
func NewTicketCode(now time.Time) string {
	return TicketCodePrefix + strconv.FormatInt(now.Unix(), 10)
}

// TicketChannelSpec describes the restricted channel to provision for a
// channel-backed ticket. The access list is exactly: deny everyone, allow
// the owner, allow the staff role.
type TicketChannelSpec struct {
	Name        string
	Topic       string
	CategoryID  string
	OwnerID     string
	StaffRoleID string
}

// TicketChannelTopic records the owning actor in the channel's descriptive
// metadata.
func TicketChannelTopic(actor Actor) string {
	return fmt.Sprintf("Ticket for %s (%s)", actor.DisplayName, actor.ID)
}

// ClosureReason is the audit note attached to a ticket channel deletion.
func ClosureReason(actor Actor) string {
	return fmt.Sprintf("Ticket closed by %s (%s)", actor.DisplayName, actor.ID)
}
