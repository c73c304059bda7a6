package fansign

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/esigns/signbot/internal/assets"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/fansign/application/usecases"
	"github.com/esigns/signbot/internal/modules/fansign/domain"
	"github.com/esigns/signbot/internal/modules/fansign/infrastructure"
	"github.com/esigns/signbot/internal/modules/fansign/presentation/discord"
	"github.com/esigns/signbot/internal/render"
)

func init() {
	bot.Register(&FansignModule{})
}

// Compile-time interface checks.
var (
	_ bot.ConfigurableModule = (*FansignModule)(nil)
	_ bot.AutocompleteModule = (*FansignModule)(nil)
	_ bot.ComponentModule    = (*FansignModule)(nil)
)

// Command cooldowns.
const (
	fansignCooldown = 3 * time.Second
	premgenCooldown = 1 * time.Second
	bulkgenCooldown = 10 * time.Second
)

// FansignModule provides the fansign generation commands.
type FansignModule struct {
	config *Config

	commandHandlers   *discord.CommandHandlers
	componentHandlers *discord.ComponentHandlers
	autocomplete      map[string]*discord.AutocompleteHandler

	generationLog *infrastructure.SQLiteGenerationLog
	presence      *infrastructure.PresenceUpdater
	sweeper       *infrastructure.Sweeper

	fansignCooldown *bot.Cooldown
	premgenCooldown *bot.Cooldown
	bulkgenCooldown *bot.Cooldown
}

// Name returns the module name.
func (m *FansignModule) Name() string {
	return "fansign"
}

// Commands returns the slash commands for this module.
func (m *FansignModule) Commands() []*discordgo.ApplicationCommand {
	return discord.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *FansignModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		discord.CommandFansign: bot.WithCooldown(
			m.fansignCooldown,
			bot.CooldownNotice(
				"You're too fast...",
				"Slow down here bud, we only allow you to generate a new one every 3 seconds.",
			),
			m.commandHandlers.HandleFansign,
		),
		discord.CommandPremgen: bot.WithCooldown(
			m.premgenCooldown,
			bot.CooldownNotice("Slow down...", "You're doing that too fast. Try again in a few seconds."),
			m.commandHandlers.HandlePremgen,
		),
		discord.CommandBulkgen: bot.WithCooldown(
			m.bulkgenCooldown,
			bot.CooldownNotice("Slow down...", "You can only run a bulk generation every 10 seconds."),
			m.commandHandlers.HandleBulkgen,
		),
	}
}

// AutocompleteHandlers returns the autocomplete handlers for this module.
func (m *FansignModule) AutocompleteHandlers() map[string]bot.InteractionHandler {
	handlers := make(map[string]bot.InteractionHandler, len(m.autocomplete))
	for name, h := range m.autocomplete {
		handlers[name] = h.Handle
	}
	return handlers
}

// ComponentHandlers returns the button handlers for this module.
func (m *FansignModule) ComponentHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		discord.DonateButtonID:     m.componentHandlers.HandleDonate,
		discord.ContributeButtonID: m.componentHandlers.HandleContribute,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *FansignModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(_ *discordgo.Session, _ *discordgo.Ready) {
			if m.presence != nil {
				m.presence.Start(context.Background())
			}
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *FansignModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	if _, _, err := cfg.premiumGate(); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *FansignModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}
	cfg := m.config

	if err := os.MkdirAll(cfg.GeneratedDir, 0o755); err != nil {
		return fmt.Errorf("failed to create generated directory: %w", err)
	}

	fonts := assets.NewFontCatalog(cfg.FontsDir)
	styles := assets.NewStyleCatalog(cfg.StylesDir)
	premiumStyles := assets.NewStyleCatalog(cfg.PremiumStylesDir)

	standardRenderers, err := loadRenderers(styles, fonts, cfg.GeneratedDir)
	if err != nil {
		return err
	}
	premiumRenderers, err := loadRenderers(premiumStyles, fonts, cfg.GeneratedDir)
	if err != nil {
		return err
	}

	m.generationLog, err = infrastructure.OpenGenerationLog(cfg.DatabasePath)
	if err != nil {
		return err
	}
	generationLog := m.generationLog

	standard := usecases.NewGenerationService(fonts, styles, standardRenderers, generationLog, usecases.GenerationOptions{
		Kind:      domain.KindStandard,
		Order:     assets.NaturalOrder,
		BlurScale: cfg.BlurScale,
	})
	premium := usecases.NewGenerationService(fonts, premiumStyles, premiumRenderers, generationLog, usecases.GenerationOptions{
		Kind:      domain.KindPremium,
		Order:     assets.NaturalOrder,
		BlurScale: cfg.PremiumBlurScale,
	})
	bulk := usecases.NewGenerationService(fonts, styles, standardRenderers, generationLog, usecases.GenerationOptions{
		Kind:  domain.KindBulk,
		Order: assets.NumericOrder,
	})

	categoryID, excludedID, err := cfg.premiumGate()
	if err != nil {
		return err
	}
	if categoryID == 0 {
		slog.Warn("PREMIUM_CATEGORY_ID is not set, /premgen is disabled everywhere")
	}
	access := usecases.NewPremiumService(
		domain.PremiumGate{CategoryID: categoryID, ExcludedChannelID: excludedID},
		infrastructure.NewDiscordChannelResolver(deps.Session),
		deps.Ledger,
	)

	messenger := bot.NewSessionMessenger(deps.Session)
	m.commandHandlers = discord.NewCommandHandlers(standard, premium, bulk, access, messenger)
	m.componentHandlers = discord.NewComponentHandlers(messenger, discord.Messages{
		Donate:     cfg.DonateMessage,
		Contribute: cfg.ContributeMessage,
	})
	m.autocomplete = map[string]*discord.AutocompleteHandler{
		discord.CommandFansign: discord.NewAutocompleteHandler(usecases.NewAutocompleteService(standard)),
		discord.CommandPremgen: discord.NewAutocompleteHandler(usecases.NewAutocompleteService(premium)),
		discord.CommandBulkgen: discord.NewAutocompleteHandler(usecases.NewAutocompleteService(bulk)),
	}

	m.fansignCooldown = bot.NewCooldown(fansignCooldown)
	m.premgenCooldown = bot.NewCooldown(premgenCooldown)
	m.bulkgenCooldown = bot.NewCooldown(bulkgenCooldown)

	if deps.Session != nil {
		m.presence = infrastructure.NewPresenceUpdater(
			deps.Session,
			usecases.NewPresenceService(generationLog, cfg.PresenceBaseline),
			cfg.PresenceInterval,
		)
	}

	if cfg.GeneratedRetention > 0 {
		m.sweeper, err = infrastructure.NewSweeper(cfg.GeneratedDir, cfg.GeneratedRetention, cfg.CleanupCron)
		if err != nil {
			return err
		}
		m.sweeper.Start(context.Background())
	}

	slog.Info("fansign module initialized",
		"standard_styles", standardRenderers.Len(),
		"premium_styles", premiumRenderers.Len(),
	)
	return nil
}

// Shutdown cleans up module resources.
func (m *FansignModule) Shutdown() error {
	if m.presence != nil {
		m.presence.Stop()
	}
	if m.sweeper != nil {
		m.sweeper.Stop()
	}
	return m.generationLog.Close()
}

// loadRenderers registers a template renderer for every style in the catalog.
// A missing style directory yields an empty registry.
func loadRenderers(styles *assets.StyleCatalog, fonts *assets.FontCatalog, outDir string) (*render.Registry, error) {
	registry := render.NewRegistry()
	if _, err := os.Stat(styles.Dir()); os.IsNotExist(err) {
		slog.Warn("style directory does not exist", "dir", styles.Dir())
		return registry, nil
	}
	if err := render.LoadTemplates(registry, styles, fonts, outDir); err != nil {
		return nil, fmt.Errorf("failed to load styles from %s: %w", styles.Dir(), err)
	}
	return registry, nil
}
