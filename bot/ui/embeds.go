package ui

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const twitchPurple = 0x9146FF

// StreamingEmbed renders a member's live stream details.
func StreamingEmbed(displayName string, user *discordgo.User, activity *discordgo.Activity) *discordgo.MessageEmbed {
	title := activity.Name
	if title == "" {
		title = "Unknown"
	}
	url := activity.URL
	if url == "" {
		url = "No URL"
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎮 %s is currently streaming!", displayName),
		Color: twitchPurple,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL(""),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Title", Value: Truncate(title, 256), Inline: true},
			{Name: "URL", Value: url, Inline: true},
		},
	}
}
