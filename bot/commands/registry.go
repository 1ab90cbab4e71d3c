package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/CRRogo/friend-cast/bot/appctx"
)

type Handler func(ctx *appctx.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error

var Definitions = []*discordgo.ApplicationCommand{
	HelpCommand,
	PingCommand,
	StreamingCommand,
}

var Handlers = map[string]Handler{
	HelpCommand.Name:      HelpHandler,
	PingCommand.Name:      PingHandler,
	StreamingCommand.Name: StreamingHandler,
}

// RegisterAll syncs the command set with Discord. An empty guildID syncs
// globally; otherwise only the given guild sees the commands. Bulk
// overwrite is idempotent for an unchanged definition set.
func RegisterAll(s *discordgo.Session, guildID string) error {
	appID := s.State.User.ID
	_, err := s.ApplicationCommandBulkOverwrite(appID, guildID, Definitions)
	if err != nil {
		scope := "global"
		if guildID != "" {
			scope = "guild " + guildID
		}
		return fmt.Errorf("bulk overwrite commands (%s): %w", scope, err)
	}
	return nil
}
