package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/auth"
	"github.com/spec-kit/ticket-bot/internal/config"
	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/events"
	"github.com/spec-kit/ticket-bot/internal/platform"
	"github.com/spec-kit/ticket-bot/pkg/util"
)

// TicketService coordinates channel-backed ticket workflows: provisioning a
// private ticket channel per actor and staff-gated closure.
type TicketService struct {
	client     platform.Client
	cfg        config.TicketConfig
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Client     platform.Client
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewTicketService constructs the service.
func NewTicketService(cfg config.TicketConfig, deps TicketDependencies) *TicketService {
	return &TicketService{
		client:     deps.Client,
		cfg:        cfg,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Open provisions a private ticket channel for the actor. Preconditions are
// checked in order, short-circuiting on the first failure: guild context,
// staff role resolution, lazy category creation, duplicate-ticket check.
// Returns a reference to the created channel.
func (s *TicketService) Open(ctx context.Context, guildID string, actor domain.Actor) (*domain.ChannelRef, error) {
	if guildID == "" {
		return nil, util.NewContextError("This only works in a server.")
	}

	role, err := s.client.ResolveRole(ctx, guildID, s.cfg.StaffRoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, util.NewConfigError("staff role", "Staff role not found. Check STAFF_ROLE_ID.")
	}

	categoryID, err := s.client.EnsureTicketCategory(ctx, guildID, s.cfg.CategoryName)
	if err != nil {
		return nil, err
	}

	name := domain.TicketChannelName(actor.DisplayName)
	existing, err := s.client.FindTicketChannel(ctx, guildID, categoryID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, util.NewDuplicateTicketError(existing.ID, "You already have a ticket: "+existing.Mention())
	}

	// The find-then-create sequence has no exclusivity guarantee: two
	// concurrent openers deriving the same name can both pass the check
	// and end up with two channels.
	channel, err := s.client.CreateTicketChannel(ctx, guildID, domain.TicketChannelSpec{
		Name:        name,
		Topic:       domain.TicketChannelTopic(actor),
		CategoryID:  categoryID,
		OwnerID:     actor.ID,
		StaffRoleID: s.cfg.StaffRoleID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.client.PostGreeting(ctx, channel.ID, actor); err != nil {
		s.logger.Warn("failed to post ticket greeting",
			zap.String("channel_id", channel.ID),
			zap.Error(err))
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:  events.EventTicketOpened,
		Actor: eventActor(actor),
		Payload: events.TicketOpenedPayload{
			ChannelID:   channel.ID,
			ChannelName: channel.Name,
			GuildID:     guildID,
		},
	})
	return channel, nil
}

// AuthorizeClose checks the closure preconditions without touching the
// channel: a guild text-channel context and the privileged role on the
// actor.
func (s *TicketService) AuthorizeClose(ctx context.Context, guildID, channelID string, actor domain.Actor) error {
	if guildID == "" || channelID == "" {
		return util.NewContextError("Can't close this here.")
	}
	role, err := s.client.ResolveRole(ctx, guildID, s.cfg.StaffRoleID)
	if err != nil {
		return err
	}
	if !auth.IsPrivileged(actor, role) {
		return util.NewPermissionError("Only staff can close tickets.")
	}
	return nil
}

// Close irreversibly deletes the ticket channel, recording the closing
// actor as the audit reason. Callers must have passed AuthorizeClose and
// acknowledged the actor first; deletion invalidates the channel context.
func (s *TicketService) Close(ctx context.Context, channelID string, actor domain.Actor) error {
	reason := domain.ClosureReason(actor)
	if err := s.client.DeleteChannel(ctx, channelID, reason); err != nil {
		return err
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:  events.EventTicketClosed,
		Actor: eventActor(actor),
		Payload: events.TicketClosedPayload{
			ChannelID: channelID,
			Reason:    reason,
		},
	})
	return nil
}
