package keys

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/keys/application/usecases"
	"github.com/esigns/signbot/internal/modules/keys/domain"
	"github.com/esigns/signbot/internal/modules/keys/infrastructure"
	"github.com/esigns/signbot/internal/modules/keys/presentation/discord"
)

func init() {
	bot.Register(&KeysModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*KeysModule)(nil)

// KeysModule provides premium key minting and redemption.
type KeysModule struct {
	ownerID       snowflake.ID
	premiumRoleID snowflake.ID
	handlers      *discord.CommandHandlers
}

// Name returns the module name.
func (m *KeysModule) Name() string {
	return "keys"
}

// Commands returns the slash commands for this module.
func (m *KeysModule) Commands() []*discordgo.ApplicationCommand {
	return discord.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *KeysModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		discord.CommandKeygen:  m.handlers.HandleKeygen,
		discord.CommandGenkeys: m.handlers.HandleGenkeys,
		discord.CommandRedeem:  m.handlers.HandleRedeem,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *KeysModule) EventHandlers() []bot.EventHandler {
	return nil
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *KeysModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}

	ownerID, err := parseOptionalID(cfg.OwnerID)
	if err != nil {
		return fmt.Errorf("invalid OWNER_ID: %w", err)
	}
	roleID, err := parseOptionalID(cfg.PremiumRoleID)
	if err != nil {
		return fmt.Errorf("invalid PREMIUM_ROLE_ID: %w", err)
	}

	m.ownerID = ownerID
	m.premiumRoleID = roleID
	return nil
}

// Init initializes the module.
func (m *KeysModule) Init(deps bot.ModuleDependencies) error {
	if m.ownerID == 0 {
		slog.Warn("OWNER_ID is not set, key generation commands are disabled")
	}
	if m.premiumRoleID == 0 {
		slog.Warn("PREMIUM_ROLE_ID is not set, redeemed keys grant no role")
	}

	svc := usecases.NewKeyService(
		deps.Ledger,
		infrastructure.NewDiscordRoleAssigner(deps.Session),
		domain.Owner(m.ownerID),
		m.premiumRoleID,
	)
	m.handlers = discord.NewCommandHandlers(svc, bot.NewSessionMessenger(deps.Session))
	return nil
}

// Shutdown cleans up module resources.
func (m *KeysModule) Shutdown() error {
	return nil
}

func parseOptionalID(s string) (snowflake.ID, error) {
	if s == "" {
		return 0, nil
	}
	return snowflake.Parse(s)
}
