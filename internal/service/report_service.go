package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/config"
	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/events"
	"github.com/spec-kit/ticket-bot/internal/platform"
	"github.com/spec-kit/ticket-bot/pkg/util"
)

// ReportService coordinates form-backed ticket intake: validating a
// submission and forwarding it to the review channel. Delivery is the
// terminal state; no copy is retained.
type ReportService struct {
	client     platform.Client
	cfg        config.TicketConfig
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ReportDependencies bundles collaborators for the report service.
type ReportDependencies struct {
	Client     platform.Client
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewReportService constructs the service.
func NewReportService(cfg config.TicketConfig, deps ReportDependencies) *ReportService {
	return &ReportService{
		client:     deps.Client,
		cfg:        cfg,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// ValidateIntakeChannel rejects intake actions invoked outside the
// designated channel.
func (s *ReportService) ValidateIntakeChannel(channelID string) error {
	if channelID != s.cfg.PanelChannelID {
		return util.NewWrongChannelError(s.cfg.PanelChannelID,
			"Tickets can only be opened in <#"+s.cfg.PanelChannelID+">.")
	}
	return nil
}

// Submit validates a form submission, composes the review notice and
// delivers it. Returns the report with its generated code for the
// acknowledgment.
func (s *ReportService) Submit(ctx context.Context, sub domain.ReportSubmission) (*domain.Report, error) {
	if err := s.ValidateIntakeChannel(sub.ChannelID); err != nil {
		return nil, err
	}

	sub = sub.Normalize()
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	review, err := s.client.ResolveChannel(ctx, s.cfg.ReviewChannelID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, util.NewConfigError("review channel",
			"The ticket desk is not available right now. Please contact staff directly.")
	}

	report := domain.Report{
		Code:      domain.NewTicketCode(time.Now()),
		Subject:   sub.Subject,
		Branch:    sub.Branch,
		Links:     sub.Links,
		Details:   sub.Details,
		Submitter: sub.Actor,
	}

	// The mention is best-effort: an unresolvable staff role omits it
	// rather than failing the submission.
	mentionRoleID := ""
	if role, err := s.client.ResolveRole(ctx, sub.GuildID, s.cfg.StaffRoleID); err == nil && role != nil {
		mentionRoleID = role.ID
	}

	notice := domain.ComposeReviewNotice(report, mentionRoleID)
	if err := s.client.PostNotice(ctx, review.ID, notice); err != nil {
		if errors.Is(err, platform.ErrForbidden) {
			return nil, util.NewDeliveryForbiddenError(
				"Your ticket could not be delivered. Please contact staff directly.", err)
		}
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:  events.EventReportSubmitted,
		Actor: eventActor(sub.Actor),
		Payload: events.ReportSubmittedPayload{
			Code:    report.Code,
			Subject: report.Subject,
			Branch:  report.Branch,
		},
	})
	return &report, nil
}

func validateSubmission(sub domain.ReportSubmission) error {
	switch {
	case sub.Subject == "":
		return util.NewValidationError("subject required", "Subject is required.", nil)
	case sub.Branch == "":
		return util.NewValidationError("branch required", "Branch/Version is required.", nil)
	case sub.Details == "":
		return util.NewValidationError("details required", "Details are required.", nil)
	}
	return nil
}
