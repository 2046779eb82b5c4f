package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/config"
	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/events"
	"github.com/spec-kit/ticket-bot/internal/platform"
	"github.com/spec-kit/ticket-bot/pkg/util"
)

// PanelService publishes the entry-point panel. Re-running is always
// accepted; each run posts another panel instance (no deduplication).
type PanelService struct {
	client     platform.Client
	cfg        config.TicketConfig
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// PanelDependencies bundles collaborators for the panel service.
type PanelDependencies struct {
	Client     platform.Client
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewPanelService constructs the service.
func NewPanelService(cfg config.TicketConfig, deps PanelDependencies) *PanelService {
	return &PanelService{
		client:     deps.Client,
		cfg:        cfg,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Publish posts a new panel message into the given channel. A mismatched
// channel yields a WrongChannel error the boundary renders as an
// informational redirect.
func (s *PanelService) Publish(ctx context.Context, channelID string, actor domain.Actor) error {
	if channelID != s.cfg.PanelChannelID {
		return util.NewWrongChannelError(s.cfg.PanelChannelID,
			"Use this command in <#"+s.cfg.PanelChannelID+"> only.")
	}
	if err := s.client.PostPanel(ctx, channelID); err != nil {
		return err
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventPanelPublished,
		Actor:   eventActor(actor),
		Payload: events.PanelPublishedPayload{ChannelID: channelID},
	})
	return nil
}
