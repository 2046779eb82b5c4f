package bot

import (
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/config"
	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/observability"
	"github.com/spec-kit/ticket-bot/internal/service"
)

// interactionHandler is a pure handler for one control identifier. It never
// renders UI itself; responses go through the gateway's adapter.
type interactionHandler func(s *discordgo.Session, i *discordgo.InteractionCreate) error

// Gateway owns the platform session and dispatches inbound events to
// control handlers. Every known control identifier is bound in the dispatch
// tables before the session opens, so controls posted by a previous process
// lifetime stay responsive after a restart.
type Gateway struct {
	session *discordgo.Session
	cfg     *config.Config
	logger  *zap.Logger
	metrics *observability.Metrics

	tickets *service.TicketService
	reports *service.ReportService
	panels  *service.PanelService

	components map[domain.ControlID]interactionHandler
	modals     map[domain.ControlID]interactionHandler

	ready atomic.Bool
}

// GatewayDependencies bundles collaborators for the gateway.
type GatewayDependencies struct {
	Session *discordgo.Session
	Tickets *service.TicketService
	Reports *service.ReportService
	Panels  *service.PanelService
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// NewGateway wires the session and binds all control handlers for the
// configured mode. The session is not opened here.
func NewGateway(cfg *config.Config, deps GatewayDependencies) *Gateway {
	g := &Gateway{
		session:    deps.Session,
		cfg:        cfg,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		tickets:    deps.Tickets,
		reports:    deps.Reports,
		panels:     deps.Panels,
		components: make(map[domain.ControlID]interactionHandler),
		modals:     make(map[domain.ControlID]interactionHandler),
	}

	g.registerControls()

	g.session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	g.session.AddHandler(g.onReady)
	g.session.AddHandler(g.onInteractionCreate)
	g.session.AddHandler(g.onMessageCreate)

	return g
}

// registerControls binds every known control identifier to its handler.
// This runs before the session opens; accepting an event for an unbound
// control would silently drop it.
func (g *Gateway) registerControls() {
	switch g.cfg.Ticket.Mode {
	case config.ModeChannel:
		g.components[domain.ControlOpenTicket] = g.handleOpenChannelTicket
		g.components[domain.ControlCloseTicket] = g.handleCloseTicket
	case config.ModeForm:
		g.components[domain.ControlOpenTicket] = g.handleOpenIntakeForm
		g.modals[domain.ControlIntakeForm] = g.handleIntakeSubmission
	}
}

// Controls returns the component and modal control identifiers currently
// bound.
func (g *Gateway) Controls() (components, modals []domain.ControlID) {
	for id := range g.components {
		components = append(components, id)
	}
	for id := range g.modals {
		modals = append(modals, id)
	}
	return components, modals
}

// Open connects the session to the platform gateway.
func (g *Gateway) Open() error {
	if err := g.session.Open(); err != nil {
		return err
	}
	g.ready.Store(true)
	return nil
}

// Close disconnects the session.
func (g *Gateway) Close() {
	g.ready.Store(false)
	if err := g.session.Close(); err != nil {
		g.logger.Warn("error closing session", zap.Error(err))
	}
}

// Ready reports whether the gateway session is open.
func (g *Gateway) Ready() bool {
	return g.ready.Load()
}

func (g *Gateway) onReady(s *discordgo.Session, r *discordgo.Ready) {
	g.logger.Info("logged in",
		zap.String("username", r.User.Username),
		zap.String("user_id", r.User.ID),
		zap.String("mode", string(g.cfg.Ticket.Mode)))
}
