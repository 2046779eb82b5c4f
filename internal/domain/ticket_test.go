package domain

import (
	"regexp"
	"testing"
	"time"
)

func TestTicketChannelName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		displayName string
		want        string
	}{
		{"simple", "Alice", "ticket-alice"},
		{"spaces become hyphens", "Jane Doe", "ticket-jane-doe"},
		{"punctuation passes through", "Jane O'Brien", "ticket-jane-o'brien"},
		{"already lowercase", "bob", "ticket-bob"},
		{"multiple spaces", "a b c", "ticket-a-b-c"},
		{"unicode preserved", "Zoë", "ticket-zoë"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TicketChannelName(tt.displayName)
			if got != tt.want {
				t.Errorf("TicketChannelName(%q) = %q, want %q", tt.displayName, got, tt.want)
			}
			// Pure function: same input, same output.
			if again := TicketChannelName(tt.displayName); again != got {
				t.Errorf("TicketChannelName(%q) not deterministic: %q then %q", tt.displayName, got, again)
			}
		})
	}
}

func TestNewTicketCodeFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	code := NewTicketCode(now)

	format := regexp.MustCompile(`^T\d+$`)
	if !format.MatchString(code) {
		t.Errorf("code %q does not match T<digits>", code)
	}

	// Uniqueness is not guaranteed: two calls within the same second
	// produce the same code.
	if other := NewTicketCode(now); other != code {
		t.Errorf("codes for the same second differ: %q vs %q", code, other)
	}
}

func TestTicketChannelTopicRecordsOwner(t *testing.T) {
	t.Parallel()

	actor := Actor{ID: "42", DisplayName: "Alice"}
	topic := TicketChannelTopic(actor)
	if topic != "Ticket for Alice (42)" {
		t.Errorf("unexpected topic %q", topic)
	}
}

func TestClosureReasonRecordsActor(t *testing.T) {
	t.Parallel()

	actor := Actor{ID: "7", DisplayName: "Staffer"}
	reason := ClosureReason(actor)
	if reason != "Ticket closed by Staffer (7)" {
		t.Errorf("unexpected reason %q", reason)
	}
}
