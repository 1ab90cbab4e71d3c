package commands

import (
	"github.com/bwmarrin/discordgo"

	"github.com/CRRogo/friend-cast/bot/util"
)

// allowedChannel reports whether the interaction may be handled given the
// configured command channel. An empty config value allows everywhere.
// The value matches either the channel id or the channel name (resolved
// from session state). DMs never match a configured channel.
func allowedChannel(st *discordgo.State, i *discordgo.InteractionCreate, configured string) bool {
	if configured == "" {
		return true
	}
	if i.GuildID == "" {
		return false
	}
	if i.ChannelID == configured {
		return true
	}
	ch, err := st.Channel(i.ChannelID)
	if err != nil {
		return false
	}
	return ch.Name == configured
}

// guardChannel rejects interactions outside the configured channel with an
// ephemeral message. Returns true when the handler should proceed.
func guardChannel(s *discordgo.Session, i *discordgo.InteractionCreate, configured string) (bool, error) {
	if allowedChannel(s.State, i, configured) {
		return true, nil
	}
	return false, util.RespondEphemeral(s, i,
		"❌ This command can only be used in the #"+configured+" channel.")
}
