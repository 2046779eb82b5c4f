package bot

import (
	"github.com/bwmarrin/discordgo"
)

// respondEphemeral sends a private acknowledgment visible only to the
// invoking actor.
func (g *Gateway) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
