package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/config"
	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/platform"
	"github.com/spec-kit/ticket-bot/pkg/util"
)

func testReportConfig() config.TicketConfig {
	return config.TicketConfig{
		Mode:            config.ModeForm,
		StaffRoleID:     "role-staff",
		PanelChannelID:  "intake-1",
		ReviewChannelID: "review-1",
	}
}

func newReportService(client *fakeClient) *ReportService {
	return NewReportService(testReportConfig(), ReportDependencies{
		Client: client,
		Logger: zap.NewNop(),
	})
}

func validSubmission() domain.ReportSubmission {
	return domain.ReportSubmission{
		GuildID:   "guild-1",
		ChannelID: "intake-1",
		Actor:     domain.Actor{ID: "1", DisplayName: "Alice"},
		Subject:   "Login fails",
		Branch:    "main",
		Details:   "Cannot log in on mobile",
	}
}

func TestSubmitDeliversNoticeToReviewChannel(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		role:    &domain.Role{ID: "role-staff", Name: "Staff"},
		channel: &domain.ChannelRef{ID: "review-1", Name: "review"},
	}
	svc := newReportService(client)

	report, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !strings.HasPrefix(report.Code, "T") {
		t.Errorf("unexpected ticket code %q", report.Code)
	}

	if len(client.notices) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(client.notices))
	}
	posted := client.notices[0]
	if posted.ChannelID != "review-1" {
		t.Errorf("notice delivered to %q, want review-1", posted.ChannelID)
	}
	if !strings.Contains(posted.Notice.Title, report.Code) || !strings.Contains(posted.Notice.Title, "Login fails") {
		t.Errorf("title missing code or subject: %q", posted.Notice.Title)
	}
	if posted.Notice.Body != "Cannot log in on mobile" {
		t.Errorf("unexpected body %q", posted.Notice.Body)
	}

	branchOK := false
	for _, field := range posted.Notice.Fields {
		if field.Name == "Evidence Links" {
			t.Errorf("blank links rendered as field: %+v", field)
		}
		if field.Name == "Branch/Version" && field.Value == "main" {
			branchOK = true
		}
	}
	if !branchOK {
		t.Errorf("branch field missing: %+v", posted.Notice.Fields)
	}
	if posted.Notice.MentionRoleID != "role-staff" {
		t.Errorf("staff mention missing: %q", posted.Notice.MentionRoleID)
	}
}

func TestSubmitOutsideIntakeChannelRejected(t *testing.T) {
	t.Parallel()

	client := &fakeClient{channel: &domain.ChannelRef{ID: "review-1"}}
	svc := newReportService(client)

	sub := validSubmission()
	sub.ChannelID = "elsewhere"

	_, err := svc.Submit(context.Background(), sub)
	if util.KindOf(err) != util.KindWrongChannel {
		t.Fatalf("expected wrong-channel error, got %v", err)
	}
	if len(client.notices) != 0 {
		t.Errorf("notice sent despite wrong channel")
	}
}

func TestSubmitEmptyBranchRejectedBeforeComposition(t *testing.T) {
	t.Parallel()

	client := &fakeClient{channel: &domain.ChannelRef{ID: "review-1"}}
	svc := newReportService(client)

	sub := validSubmission()
	sub.Branch = "   "

	_, err := svc.Submit(context.Background(), sub)
	if util.KindOf(err) != util.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(client.notices) != 0 {
		t.Errorf("notice sent despite missing branch")
	}
}

func TestSubmitUnresolvableReviewChannelFails(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	svc := newReportService(client)

	_, err := svc.Submit(context.Background(), validSubmission())
	if util.KindOf(err) != util.KindConfig {
		t.Fatalf("expected config error, got %v", err)
	}
	workflowErr := util.ToWorkflowError(err)
	if !strings.Contains(workflowErr.UserMessage, "contact staff") {
		t.Errorf("config error must direct the actor to staff: %q", workflowErr.UserMessage)
	}
}

func TestSubmitOmitsMentionWhenRoleUnresolvable(t *testing.T) {
	t.Parallel()

	client := &fakeClient{channel: &domain.ChannelRef{ID: "review-1"}}
	svc := newReportService(client)

	_, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(client.notices) != 1 {
		t.Fatalf("expected delivery despite unresolvable role")
	}
	if client.notices[0].Notice.MentionRoleID != "" {
		t.Errorf("mention present for unresolvable role: %q", client.notices[0].Notice.MentionRoleID)
	}
}

func TestSubmitForbiddenDeliveryMapped(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		channel:   &domain.ChannelRef{ID: "review-1"},
		noticeErr: fmt.Errorf("%w: 403", platform.ErrForbidden),
	}
	svc := newReportService(client)

	_, err := svc.Submit(context.Background(), validSubmission())
	if util.KindOf(err) != util.KindDeliveryForbidden {
		t.Fatalf("expected delivery-forbidden error, got %v", err)
	}
}
