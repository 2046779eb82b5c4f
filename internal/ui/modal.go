package ui

import (
	"github.com/bwmarrin/discordgo"

	"github.com/spec-kit/ticket-bot/internal/domain"
)

// Field identifiers of the intake modal.
const (
	FieldSubject = "subject"
	FieldBranch  = "branch"
	FieldLinks   = "links"
	FieldDetails = "details"
)

// Length limits declared on the modal fields. Enforcement is a platform
// constraint; the workflow only re-checks presence of required fields.
const (
	MaxSubjectLen = 80
	MaxBranchLen  = 80
	MaxLinksLen   = 500
	MaxDetailsLen = 1500
)

// IntakeModal is the structured ticket form.
func IntakeModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: string(domain.ControlIntakeForm),
		Title:    "Open a Support Ticket",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  FieldSubject,
						Label:     "Subject",
						Style:     discordgo.TextInputShort,
						Required:  true,
						MaxLength: MaxSubjectLen,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  FieldBranch,
						Label:     "Branch/Version",
						Style:     discordgo.TextInputShort,
						Required:  true,
						MaxLength: MaxBranchLen,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  FieldLinks,
						Label:     "Evidence Links (optional)",
						Style:     discordgo.TextInputParagraph,
						Required:  false,
						MaxLength: MaxLinksLen,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  FieldDetails,
						Label:     "Details",
						Style:     discordgo.TextInputParagraph,
						Required:  true,
						MaxLength: MaxDetailsLen,
					},
				},
			},
		},
	}
}

// ModalValues extracts the text-input values of a modal submission keyed by
// field identifier.
func ModalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			input, ok := inner.(*discordgo.TextInput)
			if !ok {
				continue
			}
			values[input.CustomID] = input.Value
		}
	}
	return values
}
