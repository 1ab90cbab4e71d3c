package handlers

import (
	"github.com/bwmarrin/discordgo"

	"github.com/CRRogo/friend-cast/bot/appctx"
	"github.com/CRRogo/friend-cast/bot/commands"
)

// NewInteractionHandler dispatches slash command invocations to their
// registered handlers. Handler errors are logged and contained to the
// single interaction.
func NewInteractionHandler(ctx *appctx.Context) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {

		case discordgo.InteractionApplicationCommand:
			name := i.ApplicationCommandData().Name
			h, ok := commands.Handlers[name]
			if !ok {
				ctx.Log.WarnW("no slash handler", "command", name)
				return
			}
			if err := h(ctx, s, i); err != nil {
				ctx.Log.ErrorW("slash handler failed", "command", name, "error", err)
			}

		default:
			// ignore
		}
	}
}
