package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/ledger"
	"github.com/esigns/signbot/internal/modules/keys/application/usecases"
	"github.com/esigns/signbot/internal/modules/keys/domain"
)

// CommandHandlers holds the keys command handlers.
type CommandHandlers struct {
	keys      *usecases.KeyService
	messenger bot.DirectMessenger
}

// NewCommandHandlers creates new CommandHandlers.
func NewCommandHandlers(keys *usecases.KeyService, messenger bot.DirectMessenger) *CommandHandlers {
	return &CommandHandlers{
		keys:      keys,
		messenger: messenger,
	}
}

// HandleKeygen handles the /1keygen command.
func (h *CommandHandlers) HandleKeygen(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	userID, err := interactionUserID(i)
	if err != nil {
		return bot.RespondText(r, "Invalid user.", true)
	}

	out, err := h.keys.Generate(context.Background(), usecases.GenerateInput{RequesterID: userID, Amount: 1})
	if err != nil {
		if errors.Is(err, usecases.ErrNotOwner) {
			return bot.RespondText(r, "You are not authorized to use this command.", true)
		}
		return err
	}

	return bot.RespondEmbed(r, &discordgo.MessageEmbed{
		Color: bot.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Premium Lifetime Key",
				Value: fmt.Sprintf("`%s`\n\n"+
					"This key grants **lifetime access** to `/premgen` and premium-style fan signs.\n"+
					"Share carefully. Can only be redeemed once.", out.Keys[0]),
			},
		},
	}, false)
}

// HandleGenkeys handles the /genkeys command. Minting a large batch can
// outlast the interaction window, so the reply is deferred first.
func (h *CommandHandlers) HandleGenkeys(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	user := bot.InteractionUser(i)
	userID, err := interactionUserID(i)
	if err != nil {
		return bot.RespondText(r, "Invalid user.", true)
	}

	amount := 0
	if opt, ok := bot.Options(i)["amount"]; ok {
		amount = int(opt.IntValue())
	}

	if err := r.Defer(true); err != nil {
		return err
	}

	out, err := h.keys.Generate(context.Background(), usecases.GenerateInput{RequesterID: userID, Amount: amount})
	switch {
	case errors.Is(err, usecases.ErrNotOwner):
		return bot.FollowupText(r, "You are not authorized to use this command.", true)
	case errors.Is(err, usecases.ErrInvalidAmount):
		return bot.FollowupText(r, fmt.Sprintf(
			"You can generate between %d and %d keys at a time.", domain.MinBatch, domain.MaxBatch,
		), true)
	case err != nil:
		slog.Error("failed to generate keys", "user_id", userID, "amount", amount, "error", err)
		return bot.FollowupText(r, "Couldn't generate keys right now.", true)
	}

	err = h.messenger.SendDirect(user.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("Here are your %d premium key(s):", len(out.Keys)),
		Files: []*discordgo.File{
			{
				Name:        domain.BatchFileName,
				ContentType: "text/plain",
				Reader:      bytes.NewReader([]byte(domain.BatchFile(out.Keys))),
			},
		},
	})
	switch {
	case err == nil:
		return bot.FollowupText(r, "Keys generated and sent to your DMs.", true)
	case errors.Is(err, bot.ErrDirectMessageForbidden):
		return bot.FollowupText(r, "Failed to send DM. Please enable DMs from server members.", true)
	default:
		slog.Error("failed to deliver keys", "user_id", userID, "error", err)
		return bot.FollowupText(r, "Keys were generated but could not be sent to your DMs.", true)
	}
}

// HandleRedeem handles the /redeem command.
func (h *CommandHandlers) HandleRedeem(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	userID, err := interactionUserID(i)
	if err != nil {
		return bot.RespondText(r, "Invalid user.", true)
	}

	var guildID snowflake.ID
	if i.GuildID != "" {
		if guildID, err = snowflake.Parse(i.GuildID); err != nil {
			return bot.RespondText(r, "Invalid guild.", true)
		}
	}

	out, err := h.keys.Redeem(context.Background(), usecases.RedeemInput{
		UserID:  userID,
		GuildID: guildID,
		Key:     bot.StringOption(bot.Options(i), "key"),
	})
	switch {
	case errors.Is(err, ledger.ErrKeyNotFound):
		return bot.RespondText(r, "Invalid key.", true)
	case errors.Is(err, ledger.ErrKeyAlreadyRedeemed):
		return bot.RespondText(r, "Key already redeemed.", true)
	case err != nil:
		return err
	}

	switch {
	case out.RoleErr == nil:
		return bot.RespondText(r, "Key redeemed successfully. You now have premium access.", true)
	case errors.Is(out.RoleErr, usecases.ErrRoleNotFound):
		return bot.RespondText(r, "Key redeemed, but the premium role was not found in this server.", true)
	case errors.Is(out.RoleErr, usecases.ErrRoleForbidden):
		return bot.RespondText(r, "Key redeemed, but assigning the premium role failed. The bot may be missing permissions.", true)
	default:
		return bot.RespondText(r, "Key redeemed, but the premium role could not be assigned right now.", true)
	}
}

func interactionUserID(i *discordgo.InteractionCreate) (snowflake.ID, error) {
	user := bot.InteractionUser(i)
	if user == nil {
		return 0, errors.New("interaction has no user")
	}
	return snowflake.Parse(user.ID)
}
