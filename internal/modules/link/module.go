package link

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/link/application/usecases"
	"github.com/esigns/signbot/internal/modules/link/infrastructure"
	"github.com/esigns/signbot/internal/modules/link/presentation/discord"
)

func init() {
	bot.Register(&LinkModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*LinkModule)(nil)

// LinkModule re-hosts user images and replies with a copyable link.
type LinkModule struct {
	config    *Config
	channelID snowflake.ID
	handlers  *discord.CommandHandlers
}

// Name returns the module name.
func (m *LinkModule) Name() string {
	return "link"
}

// Commands returns the slash commands for this module.
func (m *LinkModule) Commands() []*discordgo.ApplicationCommand {
	return discord.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *LinkModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		discord.CommandLink: m.handlers.HandleLink,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *LinkModule) EventHandlers() []bot.EventHandler {
	return nil
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *LinkModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}

	var channelID snowflake.ID
	if cfg.ChannelID != "" {
		id, err := snowflake.Parse(cfg.ChannelID)
		if err != nil {
			return fmt.Errorf("invalid LINK_CHANNEL_ID: %w", err)
		}
		channelID = id
	}

	m.config = cfg
	m.channelID = channelID
	return nil
}

// Init initializes the module.
func (m *LinkModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}
	if m.channelID == 0 {
		slog.Warn("LINK_CHANNEL_ID is not set, /link will report a missing channel")
	}

	svc := usecases.NewLinkService(
		infrastructure.NewHTTPDownloader(m.config.DownloadTimeout),
		infrastructure.NewDiscordUploader(deps.Session),
		m.channelID,
	)
	m.handlers = discord.NewCommandHandlers(svc)
	return nil
}

// Shutdown cleans up module resources.
func (m *LinkModule) Shutdown() error {
	return nil
}
