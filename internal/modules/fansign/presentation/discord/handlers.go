package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/fansign/application/usecases"
	"github.com/esigns/signbot/internal/modules/fansign/domain"
)

// CommandHandlers holds the fansign command handlers.
type CommandHandlers struct {
	standard  *usecases.GenerationService
	premium   *usecases.GenerationService
	bulk      *usecases.GenerationService
	access    *usecases.PremiumService
	messenger bot.DirectMessenger
}

// NewCommandHandlers creates new CommandHandlers.
func NewCommandHandlers(
	standard *usecases.GenerationService,
	premium *usecases.GenerationService,
	bulk *usecases.GenerationService,
	access *usecases.PremiumService,
	messenger bot.DirectMessenger,
) *CommandHandlers {
	return &CommandHandlers{
		standard:  standard,
		premium:   premium,
		bulk:      bulk,
		access:    access,
		messenger: messenger,
	}
}

// HandleFansign handles the /fansign command.
func (h *CommandHandlers) HandleFansign(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	return h.generateSingle(i, r, h.standard)
}

// HandlePremgen handles the /premgen command.
func (h *CommandHandlers) HandlePremgen(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	ctx := context.Background()

	userID, err := interactionUserID(i)
	if err != nil {
		return bot.RespondText(r, "Invalid user.", true)
	}
	channelID, err := snowflake.Parse(i.ChannelID)
	if err != nil {
		return bot.RespondText(r, "Invalid channel.", true)
	}

	err = h.access.CheckAccess(ctx, usecases.CheckAccessInput{UserID: userID, ChannelID: channelID})
	if err != nil {
		if msg, ok := validationMessage(err, domain.KindPremium); ok {
			return bot.RespondText(r, msg, true)
		}
		return err
	}

	return h.generateSingle(i, r, h.premium)
}

func (h *CommandHandlers) generateSingle(
	i *discordgo.InteractionCreate,
	r bot.Responder,
	svc *usecases.GenerationService,
) error {
	ctx := context.Background()
	user := bot.InteractionUser(i)

	userID, err := interactionUserID(i)
	if err != nil {
		return bot.RespondText(r, "Invalid user.", true)
	}

	options := bot.Options(i)
	input := usecases.GenerateInput{
		UserID: userID,
		Text:   bot.StringOption(options, "text"),
		Font:   bot.StringOption(options, "font"),
		Style:  bot.StringOption(options, "style"),
	}

	if err := svc.Validate(input); err != nil {
		if msg, ok := validationMessage(err, svc.Kind()); ok {
			return bot.RespondText(r, msg, true)
		}
		return err
	}

	if err := r.Defer(false); err != nil {
		return err
	}

	output, err := svc.Generate(ctx, input)
	if err != nil {
		slog.Error("failed to generate fansign",
			"kind", svc.Kind(),
			"style", input.Style,
			"user_id", user.ID,
			"error", err,
		)
		return bot.FollowupText(r, generationMessage(err), true)
	}

	params := &discordgo.WebhookParams{
		Files: []*discordgo.File{imageFile(output.Image)},
	}
	if svc.Kind() == domain.KindPremium {
		params.Content = "Enjoy your premium fansign, " + mention(user.ID) + "."
		params.Embeds = []*discordgo.MessageEmbed{
			premiumEmbed(input.Text, input.Font, input.Style, output.Image.Name),
		}
	} else {
		params.Content = "here you go " + mention(user.ID) + " brought to you by .gg/esigns"
		params.Embeds = []*discordgo.MessageEmbed{
			fansignEmbed(input.Text, input.Font, input.Style, output.Image.Name),
		}
		params.Components = fansignButtons()
	}

	return r.Followup(params)
}

// HandleBulkgen handles the /bulkgen command.
func (h *CommandHandlers) HandleBulkgen(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	ctx := context.Background()
	user := bot.InteractionUser(i)

	userID, err := interactionUserID(i)
	if err != nil {
		return bot.RespondText(r, "Invalid user.", true)
	}

	options := bot.Options(i)
	input := usecases.BulkInput{
		UserID: userID,
		Text:   bot.StringOption(options, "text"),
		Font:   bot.StringOption(options, "font"),
		Styles: make([]string, 0, domain.MaxBulkStyles),
	}
	for n := 1; n <= domain.MaxBulkStyles; n++ {
		input.Styles = append(input.Styles, bot.StringOption(options, styleSlot(n)))
	}

	if _, err := h.bulk.ValidateBulk(input); err != nil {
		if msg, ok := validationMessage(err, domain.KindBulk); ok {
			return bot.RespondEmbed(r, bot.ErrorEmbed(msg), true)
		}
		return err
	}

	if err := r.Defer(true); err != nil {
		return err
	}

	output, err := h.bulk.GenerateBulk(ctx, input)
	if err != nil {
		slog.Error("failed to generate bulk fansigns", "user_id", user.ID, "error", err)
		return bot.FollowupEmbed(r, bot.ErrorEmbed(generationMessage(err)), true)
	}

	for _, batch := range output.Batches {
		msg := &discordgo.MessageSend{
			Embeds: make([]*discordgo.MessageEmbed, 0, len(batch)),
			Files:  make([]*discordgo.File, 0, len(batch)),
		}
		for _, artifact := range batch {
			msg.Embeds = append(msg.Embeds, fansignEmbed(input.Text, input.Font, artifact.Style, artifact.Image.Name))
			msg.Files = append(msg.Files, imageFile(artifact.Image))
		}

		if err := h.messenger.SendDirect(user.ID, msg); err != nil {
			if errors.Is(err, bot.ErrDirectMessageForbidden) {
				return bot.FollowupEmbed(r, bot.ErrorEmbed("Couldn't DM you. Please enable DMs from server members."), true)
			}
			slog.Error("failed to deliver bulk fansigns", "user_id", user.ID, "error", err)
			return bot.FollowupEmbed(r, bot.ErrorEmbed("Couldn't deliver your fansigns. Please try again later."), true)
		}
	}

	return bot.FollowupText(r, "Check your DMs for your fansigns.", true)
}

func interactionUserID(i *discordgo.InteractionCreate) (snowflake.ID, error) {
	user := bot.InteractionUser(i)
	if user == nil {
		return 0, errors.New("interaction has no user")
	}
	return snowflake.Parse(user.ID)
}
