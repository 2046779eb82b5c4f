package platform

import (
	"context"
	"errors"

	"github.com/spec-kit/ticket-bot/internal/domain"
)

// ErrForbidden marks an outbound call rejected by the platform's own
// permission model. Callers use errors.Is to map it to an actor-visible
// failure.
var ErrForbidden = errors.New("platform rejected the request: missing permissions")

// Client is the surface of the chat platform the ticket workflows depend
// on. The discordgo adapter implements it; service tests use fakes.
//
// Resolution methods return (nil, nil) when the resource does not exist,
// reserving errors for transport failures.
type Client interface {
	// ResolveRole looks up a role by identifier within a guild.
	ResolveRole(ctx context.Context, guildID, roleID string) (*domain.Role, error)

	// ResolveChannel looks up a channel by identifier.
	ResolveChannel(ctx context.Context, channelID string) (*domain.ChannelRef, error)

	// EnsureTicketCategory returns the identifier of the named category,
	// creating it when absent. Lazy and idempotent.
	EnsureTicketCategory(ctx context.Context, guildID, name string) (string, error)

	// FindTicketChannel returns the open ticket channel with the given
	// derived name inside a category, or nil when none exists.
	FindTicketChannel(ctx context.Context, guildID, categoryID, name string) (*domain.ChannelRef, error)

	// CreateTicketChannel provisions a restricted text channel with the
	// three-entry access list described by the spec value.
	CreateTicketChannel(ctx context.Context, guildID string, spec domain.TicketChannelSpec) (*domain.ChannelRef, error)

	// DeleteChannel removes a channel, recording reason as the audit note.
	DeleteChannel(ctx context.Context, channelID, reason string) error

	// PostGreeting posts the initial guidance message, carrying the
	// closure control, into a fresh ticket channel.
	PostGreeting(ctx context.Context, channelID string, actor domain.Actor) error

	// PostPanel posts the standing panel message with the entry-point
	// control.
	PostPanel(ctx context.Context, channelID string) error

	// PostNotice delivers a review notice, mentioning the notice's role
	// when set.
	PostNotice(ctx context.Context, channelID string, notice domain.ReviewNotice) error
}
