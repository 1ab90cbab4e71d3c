package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/CRRogo/friend-cast/bot/appctx"
	"github.com/CRRogo/friend-cast/bot/commands"
	"github.com/CRRogo/friend-cast/bot/config"
	"github.com/CRRogo/friend-cast/bot/handlers"
	"github.com/CRRogo/friend-cast/bot/logger"
)

var Session *discordgo.Session

// Start opens the gateway session and syncs the command set. Any failure
// here (bad token, failed sync) is fatal to startup: commands are synced
// before Start returns or the process never serves.
func Start(cfg config.Config, log logger.Logger) error {
	if log == nil {
		log = logger.NewNop()
	}

	ctx := &appctx.Context{
		Config: cfg,
		Log:    log,
	}

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("discord session: %w", err)
	}

	// Presence and member intents are needed for /streaming; message
	// content is not, since no command reads message text.
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildPresences |
		discordgo.IntentsGuildMembers

	s.AddHandler(handlers.NewInteractionHandler(ctx))

	if err := s.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}

	Session = s

	if err := commands.RegisterAll(Session, cfg.GuildID); err != nil {
		_ = Session.Close()
		Session = nil
		return fmt.Errorf("register commands: %w", err)
	}

	if cfg.GuildID != "" {
		log.InfoW("slash commands synced", "scope", "guild", "guild_id", cfg.GuildID)
	} else {
		// Global propagation is eventually consistent and can take up
		// to a minute; nothing to wait on from this side.
		log.InfoW("slash commands synced", "scope", "global")
	}

	log.InfoW("bot running", "user", s.State.User.Username)
	return nil
}

func Stop() {
	if Session != nil {
		_ = Session.Close()
		Session = nil
	}
}
