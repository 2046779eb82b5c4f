package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/config"
	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/observability"
)

func newTestGateway(t *testing.T, mode config.Mode) *Gateway {
	t.Helper()
	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	cfg := &config.Config{
		Bot:    config.BotConfig{Token: "test-token", CommandPrefix: "!"},
		Ticket: config.TicketConfig{Mode: mode, PanelChannelID: "panel-1"},
	}
	return NewGateway(cfg, GatewayDependencies{
		Session: session,
		Logger:  zap.NewNop(),
		Metrics: observability.NewMetrics(),
	})
}

func hasControl(ids []domain.ControlID, want domain.ControlID) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}

func TestChannelModeBindsControlsBeforeOpen(t *testing.T) {
	t.Parallel()

	g := newTestGateway(t, config.ModeChannel)
	components, modals := g.Controls()

	if !hasControl(components, domain.ControlOpenTicket) {
		t.Errorf("open control not bound: %v", components)
	}
	if !hasControl(components, domain.ControlCloseTicket) {
		t.Errorf("close control not bound: %v", components)
	}
	if len(modals) != 0 {
		t.Errorf("unexpected modal bindings in channel mode: %v", modals)
	}
}

func TestFormModeBindsControlsBeforeOpen(t *testing.T) {
	t.Parallel()

	g := newTestGateway(t, config.ModeForm)
	components, modals := g.Controls()

	if !hasControl(components, domain.ControlOpenTicket) {
		t.Errorf("open control not bound: %v", components)
	}
	if !hasControl(modals, domain.ControlIntakeForm) {
		t.Errorf("intake modal not bound: %v", modals)
	}
}

// Controls posted by a previous process lifetime must stay responsive: a
// fresh gateway (a restart) rebinds the same control identifiers without
// reposting any panel message.
func TestRestartRebindsSameControls(t *testing.T) {
	t.Parallel()

	first := newTestGateway(t, config.ModeChannel)
	second := newTestGateway(t, config.ModeChannel)

	firstComponents, _ := first.Controls()
	secondComponents, _ := second.Controls()

	if len(firstComponents) != len(secondComponents) {
		t.Fatalf("binding count changed across restart: %v vs %v", firstComponents, secondComponents)
	}
	for _, id := range firstComponents {
		if !hasControl(secondComponents, id) {
			t.Errorf("control %q lost across restart", id)
		}
	}
}

func TestGatewayNotReadyBeforeOpen(t *testing.T) {
	t.Parallel()

	g := newTestGateway(t, config.ModeChannel)
	if g.Ready() {
		t.Error("gateway reports ready before the session opened")
	}
}
