package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketOpened    EventType = "ticket_opened"
	EventTicketClosed    EventType = "ticket_closed"
	EventReportSubmitted EventType = "report_submitted"
	EventPanelPublished  EventType = "panel_published"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Event represents a workflow event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketOpenedPayload payload.
type TicketOpenedPayload struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	GuildID     string `json:"guild_id"`
}

// TicketClosedPayload payload.
type TicketClosedPayload struct {
	ChannelID string `json:"channel_id"`
	Reason    string `json:"reason"`
}

// ReportSubmittedPayload payload.
type ReportSubmittedPayload struct {
	Code    string `json:"code"`
	Subject string `json:"subject"`
	Branch  string `json:"branch"`
}

// PanelPublishedPayload payload.
type PanelPublishedPayload struct {
	ChannelID string `json:"channel_id"`
}
