package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/pkg/util"
)

func newPanelService(client *fakeClient) *PanelService {
	return NewPanelService(testTicketConfig(), PanelDependencies{
		Client: client,
		Logger: zap.NewNop(),
	})
}

func TestPublishPostsPanel(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	svc := newPanelService(client)

	if err := svc.Publish(context.Background(), "panel-1", domain.Actor{ID: "1"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(client.panels) != 1 || client.panels[0] != "panel-1" {
		t.Errorf("panel not posted: %v", client.panels)
	}

	// Republishing is always accepted and duplicates the panel.
	if err := svc.Publish(context.Background(), "panel-1", domain.Actor{ID: "1"}); err != nil {
		t.Fatalf("second Publish: %v", err)
	}
	if len(client.panels) != 2 {
		t.Errorf("expected 2 panel instances, got %d", len(client.panels))
	}
}

func TestPublishOutsidePanelChannelRedirects(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	svc := newPanelService(client)

	err := svc.Publish(context.Background(), "elsewhere", domain.Actor{ID: "1"})
	if util.KindOf(err) != util.KindWrongChannel {
		t.Fatalf("expected wrong-channel error, got %v", err)
	}
	if len(client.panels) != 0 {
		t.Errorf("panel posted outside designated channel")
	}
}
