package bot

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/ui"
	"github.com/spec-kit/ticket-bot/pkg/util"
)

func (g *Gateway) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		id := domain.ControlID(i.MessageComponentData().CustomID)
		handler, ok := g.components[id]
		if !ok {
			g.logger.Debug("unbound component interaction", zap.String("custom_id", string(id)))
			return
		}
		g.dispatch(s, i, id, handler)
	case discordgo.InteractionModalSubmit:
		id := domain.ControlID(i.ModalSubmitData().CustomID)
		handler, ok := g.modals[id]
		if !ok {
			g.logger.Debug("unbound modal interaction", zap.String("custom_id", string(id)))
			return
		}
		g.dispatch(s, i, id, handler)
	}
}

// dispatch runs a control handler and maps any error kind to an
// actor-visible ephemeral response. No handler error crashes the process.
func (g *Gateway) dispatch(s *discordgo.Session, i *discordgo.InteractionCreate, control domain.ControlID, handler interactionHandler) {
	correlationID := uuid.NewString()
	logger := g.logger.With(
		zap.String("control", string(control)),
		zap.String("actor_id", actorFromInteraction(i).ID),
		zap.String("correlation_id", correlationID))

	err := handler(s, i)
	if err == nil {
		g.metrics.RecordInteraction(string(control), "ok")
		logger.Info("interaction handled")
		return
	}

	workflowErr := util.ToWorkflowError(err)
	g.metrics.RecordError(string(control), string(workflowErr.Kind))
	if workflowErr.Kind == util.KindInternal {
		logger.Error("interaction failed", zap.Error(workflowErr))
	} else {
		logger.Info("interaction rejected",
			zap.String("kind", string(workflowErr.Kind)),
			zap.String("reason", workflowErr.Message))
	}
	if respondErr := g.respondEphemeral(s, i, workflowErr.UserMessage); respondErr != nil {
		logger.Warn("failed to deliver error response", zap.Error(respondErr))
	}
}

// handleOpenChannelTicket provisions a private ticket channel and
// acknowledges the actor with a reference to it.
func (g *Gateway) handleOpenChannelTicket(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	actor := actorFromInteraction(i)
	channel, err := g.tickets.Open(context.Background(), i.GuildID, actor)
	if err != nil {
		return err
	}
	return g.respondEphemeral(s, i, "Ticket created: "+channel.Mention())
}

// handleCloseTicket authorizes closure, acknowledges, then deletes the
// channel. The acknowledgment must land before the deletion: deleting the
// channel invalidates the interaction's context.
func (g *Gateway) handleCloseTicket(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	actor := actorFromInteraction(i)
	ctx := context.Background()
	if err := g.tickets.AuthorizeClose(ctx, i.GuildID, i.ChannelID, actor); err != nil {
		return err
	}
	if err := g.respondEphemeral(s, i, "Closing ticket…"); err != nil {
		g.logger.Warn("failed to acknowledge closure", zap.Error(err))
	}
	return g.tickets.Close(ctx, i.ChannelID, actor)
}

// handleOpenIntakeForm presents the structured intake modal, but only from
// the designated intake channel.
func (g *Gateway) handleOpenIntakeForm(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := g.reports.ValidateIntakeChannel(i.ChannelID); err != nil {
		return err
	}
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: ui.IntakeModal(),
	})
}

// handleIntakeSubmission forwards a submitted form to the review channel
// and acknowledges the actor with the generated ticket code.
func (g *Gateway) handleIntakeSubmission(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	values := ui.ModalValues(i.ModalSubmitData())
	report, err := g.reports.Submit(context.Background(), domain.ReportSubmission{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		Actor:     actorFromInteraction(i),
		Subject:   values[ui.FieldSubject],
		Branch:    values[ui.FieldBranch],
		Links:     values[ui.FieldLinks],
		Details:   values[ui.FieldDetails],
	})
	if err != nil {
		return err
	}
	return g.respondEphemeral(s, i,
		"Your ticket "+report.Code+" has been submitted. Staff will follow up soon.")
}

// onMessageCreate handles the privileged panel command. The administrator
// gate is the platform's own permission model; the panel-channel
// restriction renders as an informational redirect rather than a failure.
func (g *Gateway) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if strings.TrimSpace(m.Content) != g.cfg.Bot.CommandPrefix+"ticketpanel" {
		return
	}

	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		g.logger.Warn("failed to resolve command permissions",
			zap.String("user_id", m.Author.ID), zap.Error(err))
		return
	}
	if perms&discordgo.PermissionAdministrator == 0 {
		return
	}

	actor := domain.Actor{ID: m.Author.ID, DisplayName: m.Author.Username}
	if err := g.panels.Publish(context.Background(), m.ChannelID, actor); err != nil {
		workflowErr := util.ToWorkflowError(err)
		g.metrics.RecordError("ticketpanel", string(workflowErr.Kind))
		if workflowErr.Kind != util.KindWrongChannel {
			g.logger.Error("failed to publish panel", zap.Error(workflowErr))
		}
		if _, sendErr := s.ChannelMessageSend(m.ChannelID, workflowErr.UserMessage); sendErr != nil {
			g.logger.Warn("failed to deliver command response", zap.Error(sendErr))
		}
		return
	}
	g.metrics.RecordInteraction("ticketpanel", "ok")
}

// actorFromInteraction extracts the invoking actor. Guild interactions
// carry a member; direct-message interactions carry a bare user with no
// roles.
func actorFromInteraction(i *discordgo.InteractionCreate) domain.Actor {
	if i.Member != nil && i.Member.User != nil {
		return domain.Actor{
			ID:          i.Member.User.ID,
			DisplayName: i.Member.User.Username,
			RoleIDs:     i.Member.Roles,
		}
	}
	if i.User != nil {
		return domain.Actor{ID: i.User.ID, DisplayName: i.User.Username}
	}
	return domain.Actor{}
}
