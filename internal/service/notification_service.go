package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/events"
)

// NotificationService emits structured log lines for workflow events. No
// notification backend is configured; logging is the only sink, since the
// system keeps no records of its own.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketOpened, n.handleTicketOpened)
	n.dispatcher.Subscribe(events.EventTicketClosed, n.handleTicketClosed)
	n.dispatcher.Subscribe(events.EventReportSubmitted, n.handleReportSubmitted)
	n.dispatcher.Subscribe(events.EventPanelPublished, n.handlePanelPublished)
}

func (n *NotificationService) handleTicketOpened(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketOpened", zap.String("actor_id", event.Actor.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTicketClosed(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketClosed", zap.String("actor_id", event.Actor.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleReportSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ReportSubmitted", zap.String("actor_id", event.Actor.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handlePanelPublished(ctx context.Context, event events.Event) error {
	n.logger.Info("PanelPublished", zap.String("actor_id", event.Actor.ID), zap.Any("payload", event.Payload))
	return nil
}
