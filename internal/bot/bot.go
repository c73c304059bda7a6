package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/esigns/signbot/internal/ledger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metricsShutdownTimeout bounds how long Stop waits for the metrics server.
const metricsShutdownTimeout = 5 * time.Second

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config        *Config
	session       *discordgo.Session
	ledger        *ledger.Ledger
	metricsServer *http.Server
	modules       []Module
	handlers      map[string]InteractionHandler
	autocompletes map[string]InteractionHandler
	components    map[string]InteractionHandler
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:        cfg,
		ledger:        ledger.New(ledger.NewFileStore(cfg.KeysPath)),
		modules:       make([]Module, 0),
		handlers:      make(map[string]InteractionHandler),
		autocompletes: make(map[string]InteractionHandler),
		components:    make(map[string]InteractionHandler),
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Start initializes the bot, connects to Discord, and registers commands.
func (b *Bot) Start() error {
	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	b.session = session

	// Initialize modules
	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	// Build handler maps
	b.buildHandlerMap()

	// Register interaction handler
	b.session.AddHandler(b.handleInteraction)

	// Register module event handlers
	b.registerEventHandlers()

	// Open connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register commands
	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	b.startMetricsServer()

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
	)

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	if b.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := b.metricsServer.Shutdown(ctx); err != nil {
			slog.Warn("failed to shutdown metrics server", "error", err)
		}
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// initModules loads module configuration and initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Session: b.session,
		Config:  b.config,
		Ledger:  b.ledger,
	}

	for _, mod := range b.modules {
		if cm, ok := mod.(ConfigurableModule); ok {
			if err := cm.LoadConfig(); err != nil {
				return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
			}
		}
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// buildHandlerMap builds the command, autocomplete and component handler mappings.
func (b *Bot) buildHandlerMap() {
	for _, mod := range b.modules {
		maps.Copy(b.handlers, mod.CommandHandlers())
		if am, ok := mod.(AutocompleteModule); ok {
			maps.Copy(b.autocompletes, am.AutocompleteHandlers())
		}
		if cm, ok := mod.(ComponentModule); ok {
			maps.Copy(b.components, cm.ComponentHandlers())
		}
	}
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			b.session.AddHandler(handler)
		}
	}
}

// collectCommands gathers all commands from loaded modules.
func (b *Bot) collectCommands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	for _, mod := range b.modules {
		commands = append(commands, mod.Commands()...)
	}
	return commands
}

// registerCommands overwrites the application's commands with those of the
// loaded modules. An empty guild ID registers them globally.
func (b *Bot) registerCommands() error {
	commands := b.collectCommands()

	registered, err := b.session.ApplicationCommandBulkOverwrite(
		b.session.State.User.ID,
		b.config.GuildID,
		commands,
	)
	if err != nil {
		return fmt.Errorf("failed to register %d commands: %w", len(commands), err)
	}

	for _, cmd := range registered {
		slog.Debug("registered command", "command", cmd.Name)
	}

	return nil
}

// startMetricsServer serves Prometheus metrics when an address is configured.
func (b *Bot) startMetricsServer() {
	if b.config.MetricsAddr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	b.metricsServer = &http.Server{
		Addr:              b.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := b.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server stopped", "error", err)
		}
	}()
	slog.Info("serving metrics", "addr", b.config.MetricsAddr)
}

// handleInteraction routes incoming interactions to the appropriate handler.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	responder := NewDiscordResponder(s, i.Interaction)
	b.dispatch(s, i, responder)
}

// dispatch routes an interaction to its handler using responder for replies.
func (b *Bot) dispatch(s *discordgo.Session, i *discordgo.InteractionCreate, r Responder) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		interactionsTotal.WithLabelValues("command").Inc()
		b.dispatchCommand(s, i, r)
	case discordgo.InteractionApplicationCommandAutocomplete:
		interactionsTotal.WithLabelValues("autocomplete").Inc()
		name := i.ApplicationCommandData().Name
		handler, ok := b.autocompletes[name]
		if !ok {
			return
		}
		if err := handler(s, i, r); err != nil {
			slog.Warn("failed to handle autocomplete", "command", name, "error", err)
		}
	case discordgo.InteractionMessageComponent:
		interactionsTotal.WithLabelValues("component").Inc()
		customID := i.MessageComponentData().CustomID
		handler, ok := b.components[customID]
		if !ok {
			slog.Debug("found no handler for component", "custom_id", customID)
			return
		}
		if err := handler(s, i, r); err != nil {
			slog.Error("failed to handle component", "custom_id", customID, "error", err)
		}
	}
}

func (b *Bot) dispatchCommand(s *discordgo.Session, i *discordgo.InteractionCreate, r Responder) {
	cmdName := i.ApplicationCommandData().Name
	handler, ok := b.handlers[cmdName]
	if !ok {
		slog.Warn("found no handler for command", "command", cmdName)
		commandsTotal.WithLabelValues(cmdName, "unknown").Inc()
		b.respondWithEmbed(r, "Unknown Command", "This command is not recognized.", ColorWarning)
		return
	}

	if err := handler(s, i, r); err != nil {
		slog.Error("failed to handle command", "command", cmdName, "error", err)
		commandsTotal.WithLabelValues(cmdName, "error").Inc()
		b.respondWithEmbed(r, "Error", "An error occurred while processing your command.",
			ColorError)
		return
	}
	commandsTotal.WithLabelValues(cmdName, "ok").Inc()
}

// respondWithEmbed sends an embed response to an interaction.
func (b *Bot) respondWithEmbed(r Responder, title, description string, color int) {
	err := RespondEmbed(r, &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}, true)
	if err != nil {
		slog.Error("failed to send embed response", "error", err)
	}
}
