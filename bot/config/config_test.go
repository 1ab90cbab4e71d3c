package config

import "testing"

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		guildID string
		wantErr bool
	}{
		{
			name:    "token only",
			token:   "abc123",
			wantErr: false,
		},
		{
			name:    "token with guild id",
			token:   "abc123",
			guildID: "999",
			wantErr: false,
		},
		{
			name:    "missing token",
			token:   "",
			wantErr: true,
		},
		{
			name:    "whitespace token",
			token:   "   ",
			wantErr: true,
		},
		{
			name:    "non-numeric guild id",
			token:   "abc123",
			guildID: "my-server",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DISCORD_TOKEN", tt.token)
			t.Setenv("DISCORD_GUILD_ID", tt.guildID)

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Token != tt.token {
				t.Errorf("Token = %q, want %q", cfg.Token, tt.token)
			}
			if cfg.GuildID != tt.guildID {
				t.Errorf("GuildID = %q, want %q", cfg.GuildID, tt.guildID)
			}
		})
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "  abc123\n")
	t.Setenv("DISCORD_GUILD_ID", " 999 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Token != "abc123" {
		t.Errorf("Token = %q, want %q", cfg.Token, "abc123")
	}
	if cfg.GuildID != "999" {
		t.Errorf("GuildID = %q, want %q", cfg.GuildID, "999")
	}
}

func TestLoadOptionalValues(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "abc123")
	t.Setenv("DISCORD_GUILD_ID", "")
	t.Setenv("DISCORD_COMMAND_CHANNEL", "crr-bot-test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GuildID != "" {
		t.Errorf("GuildID = %q, want empty", cfg.GuildID)
	}
	if cfg.CommandChannel != "crr-bot-test" {
		t.Errorf("CommandChannel = %q, want %q", cfg.CommandChannel, "crr-bot-test")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}
