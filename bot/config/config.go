package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Required bot credential.
	Token string

	// Optional: when set, slash commands are synced to this guild only
	// (instant availability, handy during development). Empty means
	// global sync, which can take up to a minute to propagate.
	GuildID string

	// Optional: channel name or id commands are restricted to.
	CommandChannel string

	// Optional: zap level, defaults to info.
	LogLevel string
}

func Load() (Config, error) {
	c := Config{
		Token:          strings.TrimSpace(os.Getenv("DISCORD_TOKEN")),
		GuildID:        strings.TrimSpace(os.Getenv("DISCORD_GUILD_ID")),
		CommandChannel: strings.TrimSpace(os.Getenv("DISCORD_COMMAND_CHANNEL")),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}

	if c.Token == "" {
		return c, fmt.Errorf("missing DISCORD_TOKEN")
	}

	if c.GuildID != "" {
		if _, err := strconv.ParseUint(c.GuildID, 10, 64); err != nil {
			return c, fmt.Errorf("DISCORD_GUILD_ID must be a numeric snowflake, got %q", c.GuildID)
		}
	}

	return c, nil
}
