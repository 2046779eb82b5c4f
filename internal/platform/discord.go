package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/ui"
)

// DiscordClient adapts a discordgo session to the Client interface.
type DiscordClient struct {
	session *discordgo.Session
	logger  *zap.Logger
}

// NewDiscordClient constructs the adapter.
func NewDiscordClient(session *discordgo.Session, logger *zap.Logger) *DiscordClient {
	return &DiscordClient{session: session, logger: logger}
}

// ResolveRole looks up a role by identifier within a guild.
func (c *DiscordClient) ResolveRole(ctx context.Context, guildID, roleID string) (*domain.Role, error) {
	roles, err := c.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapForbidden(err)
	}
	for _, role := range roles {
		if role.ID == roleID {
			return &domain.Role{ID: role.ID, Name: role.Name}, nil
		}
	}
	return nil, nil
}

// ResolveChannel looks up a channel by identifier.
func (c *DiscordClient) ResolveChannel(ctx context.Context, channelID string) (*domain.ChannelRef, error) {
	channel, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, wrapForbidden(err)
	}
	return &domain.ChannelRef{ID: channel.ID, Name: channel.Name}, nil
}

// EnsureTicketCategory returns the named category's identifier, creating the
// category when it does not exist yet.
func (c *DiscordClient) EnsureTicketCategory(ctx context.Context, guildID, name string) (string, error) {
	channels, err := c.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", wrapForbidden(err)
	}
	for _, channel := range channels {
		if channel.Type == discordgo.ChannelTypeGuildCategory && channel.Name == name {
			return channel.ID, nil
		}
	}
	created, err := c.session.GuildChannelCreate(guildID, name, discordgo.ChannelTypeGuildCategory, discordgo.WithContext(ctx))
	if err != nil {
		return "", wrapForbidden(err)
	}
	c.logger.Info("created ticket category", zap.String("guild_id", guildID), zap.String("category_id", created.ID))
	return created.ID, nil
}

// FindTicketChannel returns the text channel with the given name inside the
// category, or nil when none exists.
func (c *DiscordClient) FindTicketChannel(ctx context.Context, guildID, categoryID, name string) (*domain.ChannelRef, error) {
	channels, err := c.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapForbidden(err)
	}
	for _, channel := range channels {
		if channel.Type == discordgo.ChannelTypeGuildText && channel.ParentID == categoryID && channel.Name == name {
			return &domain.ChannelRef{ID: channel.ID, Name: channel.Name}, nil
		}
	}
	return nil, nil
}

// CreateTicketChannel provisions the restricted channel for a ticket. The
// access list is exactly three entries: the guild's everyone role (whose ID
// equals the guild ID) is denied view, the owner and the staff role are
// allowed view, send and history.
func (c *DiscordClient) CreateTicketChannel(ctx context.Context, guildID string, spec domain.TicketChannelSpec) (*domain.ChannelRef, error) {
	const memberAccess = discordgo.PermissionViewChannel |
		discordgo.PermissionSendMessages |
		discordgo.PermissionReadMessageHistory

	overwrites := []*discordgo.PermissionOverwrite{
		{
			ID:   guildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    spec.OwnerID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: memberAccess,
		},
		{
			ID:    spec.StaffRoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: memberAccess,
		},
	}

	channel, err := c.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 spec.Name,
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                spec.Topic,
		ParentID:             spec.CategoryID,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapForbidden(err)
	}
	return &domain.ChannelRef{ID: channel.ID, Name: channel.Name}, nil
}

// DeleteChannel removes a channel with an audit-log reason.
func (c *DiscordClient) DeleteChannel(ctx context.Context, channelID, reason string) error {
	_, err := c.session.ChannelDelete(channelID, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason))
	return wrapForbidden(err)
}

// PostGreeting posts the guidance message with the closure control into a
// fresh ticket channel.
func (c *DiscordClient) PostGreeting(ctx context.Context, channelID string, actor domain.Actor) error {
	_, err := c.session.ChannelMessageSendComplex(channelID, ui.GreetingMessage(actor), discordgo.WithContext(ctx))
	return wrapForbidden(err)
}

// PostPanel posts the standing panel message.
func (c *DiscordClient) PostPanel(ctx context.Context, channelID string) error {
	_, err := c.session.ChannelMessageSendComplex(channelID, ui.PanelMessage(), discordgo.WithContext(ctx))
	return wrapForbidden(err)
}

// PostNotice delivers a review notice embed, prefixed with a role mention
// when one is set.
func (c *DiscordClient) PostNotice(ctx context.Context, channelID string, notice domain.ReviewNotice) error {
	_, err := c.session.ChannelMessageSendComplex(channelID, ui.NoticeMessage(notice), discordgo.WithContext(ctx))
	return wrapForbidden(err)
}

func wrapForbidden(err error) error {
	if err == nil {
		return nil
	}
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %v", ErrForbidden, err)
	}
	return err
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
