package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/CRRogo/friend-cast/bot/appctx"
	"github.com/CRRogo/friend-cast/bot/ui"
	"github.com/CRRogo/friend-cast/bot/util"
)

var StreamingCommand = &discordgo.ApplicationCommand{
	Name:        "streaming",
	Description: "Check if a user is currently streaming",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to check (defaults to you)",
			Required:    false,
		},
	},
}

func StreamingHandler(ctx *appctx.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := guardChannel(s, i, ctx.Config.CommandChannel); !ok {
		return err
	}

	target := util.GetOptUser(s, i, "user")
	if target == nil {
		target = interactionUser(i)
	}
	if target == nil {
		return util.RespondEphemeral(s, i, "Could not resolve a user from this interaction.")
	}

	name := displayName(i.Member, target)

	activity := streamingActivity(lookupPresence(s.State, i.GuildID, target.ID))
	if activity == nil {
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("❌ **%s** is not currently streaming.", name),
			},
		})
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{ui.StreamingEmbed(name, target, activity)},
		},
	})
}

// interactionUser resolves the invoking user for both guild and DM
// interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// displayName prefers the guild nickname when the invoker targeted
// themselves, then the global display name, then the username.
func displayName(m *discordgo.Member, u *discordgo.User) string {
	if m != nil && m.User != nil && m.User.ID == u.ID && m.Nick != "" {
		return m.Nick
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// lookupPresence reads the cached presence for a guild member. Nil when
// the interaction is a DM or the presence isn't cached (user offline).
func lookupPresence(st *discordgo.State, guildID, userID string) *discordgo.Presence {
	if guildID == "" {
		return nil
	}
	p, err := st.Presence(guildID, userID)
	if err != nil {
		return nil
	}
	return p
}

func streamingActivity(p *discordgo.Presence) *discordgo.Activity {
	if p == nil {
		return nil
	}
	for _, a := range p.Activities {
		if a != nil && a.Type == discordgo.ActivityTypeStreaming {
			return a
		}
	}
	return nil
}
