package privateroom

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/privateroom/application/usecases"
	"github.com/esigns/signbot/internal/modules/privateroom/infrastructure"
	"github.com/esigns/signbot/internal/modules/privateroom/presentation/discord"
)

func init() {
	bot.Register(&PrivateRoomModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*PrivateRoomModule)(nil)

const privateRoomCooldown = 5 * time.Second

// PrivateRoomModule provides temporary premium-only text channels.
type PrivateRoomModule struct {
	config   *Config
	rooms    *usecases.RoomService
	handlers *discord.CommandHandlers
	cooldown *bot.Cooldown
}

// Name returns the module name.
func (m *PrivateRoomModule) Name() string {
	return "privateroom"
}

// Commands returns the slash commands for this module.
func (m *PrivateRoomModule) Commands() []*discordgo.ApplicationCommand {
	return discord.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *PrivateRoomModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		discord.CommandPrivateRoom: bot.WithCooldown(
			m.cooldown,
			bot.CooldownNotice("Slow down...", "You can only request a private room every 5 seconds."),
			m.handlers.HandlePrivateRoom,
		),
		discord.CommandCloseRoom: m.handlers.HandleCloseRoom,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *PrivateRoomModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{m.onGuildCreate}
}

// onGuildCreate restores the deletion timers of rooms that outlived a restart.
func (m *PrivateRoomModule) onGuildCreate(_ *discordgo.Session, g *discordgo.GuildCreate) {
	if m.rooms == nil || g.Guild == nil {
		return
	}
	guildID, err := snowflake.Parse(g.ID)
	if err != nil {
		slog.Warn("invalid guild id", "guild_id", g.ID, "error", err)
		return
	}
	if _, err := m.rooms.Restore(context.Background(), guildID); err != nil {
		slog.Error("failed to restore private rooms", "guild_id", guildID, "error", err)
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *PrivateRoomModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *PrivateRoomModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}

	m.rooms = usecases.NewRoomService(
		deps.Ledger,
		infrastructure.NewDiscordChannelManager(deps.Session),
		infrastructure.NewTimerScheduler(),
		m.config.Lifetime,
	)
	m.handlers = discord.NewCommandHandlers(m.rooms)
	m.cooldown = bot.NewCooldown(privateRoomCooldown)

	slog.Info("privateroom module initialized", "lifetime", m.rooms.Lifetime())
	return nil
}

// Shutdown cancels pending room deletions.
func (m *PrivateRoomModule) Shutdown() error {
	if m.rooms != nil {
		m.rooms.Shutdown()
	}
	return nil
}
