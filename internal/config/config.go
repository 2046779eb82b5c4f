package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Mode selects which intake variant the process runs.
type Mode string

const (
	// ModeChannel provisions a private ticket channel per request.
	ModeChannel Mode = "channel"
	// ModeForm captures requests through a structured form and forwards
	// them to a review channel.
	ModeForm Mode = "form"
)

// Config aggregates runtime configuration for the bot. It is loaded once at
// startup and treated as immutable; handlers never read ambient state.
type Config struct {
	App    AppConfig
	Bot    BotConfig
	Ticket TicketConfig
	Logger LoggerConfig
}

// AppConfig controls the ops HTTP surface.
type AppConfig struct {
	Name    string
	Env     string
	Host    string
	Port    string
	Version string
}

// BotConfig holds platform connection values.
type BotConfig struct {
	Token         string
	CommandPrefix string
}

// TicketConfig holds the identifiers driving the ticket workflow.
type TicketConfig struct {
	Mode            Mode
	GuildID         string
	StaffRoleID     string
	PanelChannelID  string
	ReviewChannelID string
	CategoryName    string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables. Required identifiers
// that are missing or not valid snowflakes abort startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}

	mode := Mode(getEnv("TICKET_MODE", string(ModeChannel)))
	if mode != ModeChannel && mode != ModeForm {
		return nil, fmt.Errorf("invalid TICKET_MODE %q: must be %q or %q", mode, ModeChannel, ModeForm)
	}

	staffRoleID, err := requireSnowflake("STAFF_ROLE_ID")
	if err != nil {
		return nil, err
	}
	panelChannelID, err := requireSnowflake("PANEL_CHANNEL_ID")
	if err != nil {
		return nil, err
	}

	ticket := TicketConfig{
		Mode:           mode,
		StaffRoleID:    staffRoleID,
		PanelChannelID: panelChannelID,
		CategoryName:   getEnv("TICKET_CATEGORY_NAME", "Tickets"),
	}

	switch mode {
	case ModeChannel:
		ticket.GuildID, err = requireSnowflake("GUILD_ID")
		if err != nil {
			return nil, err
		}
	case ModeForm:
		ticket.ReviewChannelID, err = requireSnowflake("REVIEW_CHANNEL_ID")
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "support-ticket-bot"),
			Env:     getEnv("APP_ENV", "development"),
			Host:    getEnv("APP_HOST", "0.0.0.0"),
			Port:    getEnv("APP_PORT", "8080"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Bot: BotConfig{
			Token:         token,
			CommandPrefix: getEnv("COMMAND_PREFIX", "!"),
		},
		Ticket: ticket,
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the ops HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

func requireSnowflake(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	if _, err := strconv.ParseUint(val, 10, 64); err != nil {
		return "", fmt.Errorf("invalid %s: %w", key, err)
	}
	return val, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
