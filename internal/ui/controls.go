// Package ui holds the declarative description of the bot's control
// surface: labels, styles, identifiers and layouts. It contains no
// workflow logic; handlers are dispatched by control identifier elsewhere.
package ui

import (
	"github.com/bwmarrin/discordgo"

	"github.com/spec-kit/ticket-bot/internal/domain"
)

// ColorBlurple is the accent color used for panel and notice embeds.
const ColorBlurple = 0x5865F2

// OpenTicketButton is the panel's entry-point control.
func OpenTicketButton() discordgo.Button {
	return discordgo.Button{
		Label:    "🎫 Open Ticket",
		Style:    discordgo.SuccessButton,
		CustomID: string(domain.ControlOpenTicket),
	}
}

// CloseTicketButton is the closure control posted inside ticket channels.
func CloseTicketButton() discordgo.Button {
	return discordgo.Button{
		Label:    "✅ Close Ticket",
		Style:    discordgo.DangerButton,
		CustomID: string(domain.ControlCloseTicket),
	}
}

// PanelMessage is the standing panel: a short embed plus the open control.
func PanelMessage() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Support Tickets",
				Description: "Press the button to open a private ticket with staff.",
				Color:       ColorBlurple,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{OpenTicketButton()},
			},
		},
	}
}

// GreetingMessage is the guidance message posted into a fresh ticket
// channel, carrying the closure control.
func GreetingMessage(actor domain.Actor) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: "Hi <@" + actor.ID + ">! 👋\n" +
			"Tell us what's wrong (steps to reproduce, screenshots, etc.).\n\n" +
			"Staff will be with you soon.\n",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{CloseTicketButton()},
			},
		},
	}
}

// NoticeMessage renders a review notice as an embed, prefixed with a role
// mention when the notice carries one.
func NoticeMessage(notice domain.ReviewNotice) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       notice.Title,
		Description: notice.Body,
		Color:       ColorBlurple,
	}
	for _, field := range notice.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}

	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
	if notice.MentionRoleID != "" {
		msg.Content = "<@&" + notice.MentionRoleID + ">"
		msg.AllowedMentions = &discordgo.MessageAllowedMentions{
			Roles: []string{notice.MentionRoleID},
		}
	}
	return msg
}
