package commands

import (
	"github.com/bwmarrin/discordgo"

	"github.com/CRRogo/friend-cast/bot/appctx"
)

var HelpCommand = &discordgo.ApplicationCommand{
	Name:        "help",
	Description: "Show help information",
}

func HelpHandler(ctx *appctx.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := guardChannel(s, i, ctx.Config.CommandChannel); !ok {
		return err
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📘 Help",
		Description: "Available commands:",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "/help", Value: "Show this help message"},
			{Name: "/ping", Value: "Check gateway latency"},
			{Name: "/streaming [user]", Value: "Check if a user is currently streaming"},
		},
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}
