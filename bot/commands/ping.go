package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/CRRogo/friend-cast/bot/appctx"
)

var PingCommand = &discordgo.ApplicationCommand{
	Name:        "ping",
	Description: "Respond with pong and latency",
}

func PingHandler(ctx *appctx.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := guardChannel(s, i, ctx.Config.CommandChannel); !ok {
		return err
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: formatPong(s.HeartbeatLatency()),
		},
	})
}

// formatPong renders the heartbeat latency in milliseconds to one decimal
// place. The gauge is maintained by the gateway heartbeat, so a reading
// taken before the first ack can be non-positive; clamp to zero.
func formatPong(latency time.Duration) string {
	ms := latency.Seconds() * 1000
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("Pong! %.1fms", ms)
}
