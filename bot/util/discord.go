package util

import "github.com/bwmarrin/discordgo"

// GetOptUser returns the user object of a slash command option by name.
func GetOptUser(s *discordgo.Session, i *discordgo.InteractionCreate, name string) *discordgo.User {
	for _, o := range i.ApplicationCommandData().Options {
		if o.Name == name {
			return o.UserValue(s)
		}
	}
	return nil
}

// RespondEphemeral sends an ephemeral interaction response.
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
